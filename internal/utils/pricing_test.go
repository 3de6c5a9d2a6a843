package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.UTC)
}

func TestChargeableDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int32
	}{
		{"exactly two days", date(2024, 1, 1, 10, 0), date(2024, 1, 3, 10, 0), 2},
		{"partial day rounds up", date(2024, 1, 1, 10, 0), date(2024, 1, 3, 10, 1), 3},
		{"under one day is one day", date(2024, 1, 1, 10, 0), date(2024, 1, 1, 14, 0), 1},
		{"exactly one day", date(2024, 1, 1, 0, 0), date(2024, 1, 2, 0, 0), 1},
		{"across month boundary", date(2024, 1, 31, 8, 0), date(2024, 2, 2, 8, 0), 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ChargeableDays(tt.start, tt.end)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestChargeableDays_InvalidWindow(t *testing.T) {
	_, err := ChargeableDays(date(2024, 1, 3, 0, 0), date(2024, 1, 1, 0, 0))
	assert.Error(t, err)

	same := date(2024, 1, 1, 10, 0)
	_, err = ChargeableDays(same, same)
	assert.Error(t, err)
}

func TestRentalCostCents(t *testing.T) {
	// Two full days at rate 100.
	cost, err := RentalCostCents(date(2024, 1, 1, 10, 0), date(2024, 1, 3, 10, 0), 100)
	assert.NoError(t, err)
	assert.Equal(t, int32(200), cost)

	// Partial third day charges three.
	cost, err = RentalCostCents(date(2024, 1, 1, 10, 0), date(2024, 1, 3, 12, 0), 100)
	assert.NoError(t, err)
	assert.Equal(t, int32(300), cost)
}

func TestRentalCostCents_InvalidRate(t *testing.T) {
	_, err := RentalCostCents(date(2024, 1, 1, 0, 0), date(2024, 1, 2, 0, 0), 0)
	assert.Error(t, err)
}
