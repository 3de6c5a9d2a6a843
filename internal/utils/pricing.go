package utils

import (
	"fmt"
	"time"
)

// Rental pricing. One rule, used everywhere a cost is computed:
// a rental is charged per started 24-hour day. ceil(duration / 24h),
// never less than one day. 48h exactly is two days; 48h01m is three.

// ChargeableDays returns the number of billable days for the window.
func ChargeableDays(start, end time.Time) (int32, error) {
	if !end.After(start) {
		return 0, fmt.Errorf("end %s is not after start %s", end.Format(time.RFC3339), start.Format(time.RFC3339))
	}
	d := end.Sub(start)
	days := int32(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		days++
	}
	if days < 1 {
		days = 1
	}
	return days, nil
}

// RentalCostCents computes the total cost of a rental window at the given
// daily rate.
func RentalCostCents(start, end time.Time, dailyRateCents int32) (int32, error) {
	if dailyRateCents <= 0 {
		return 0, fmt.Errorf("daily rate must be positive, got %d", dailyRateCents)
	}
	days, err := ChargeableDays(start, end)
	if err != nil {
		return 0, err
	}
	return days * dailyRateCents, nil
}
