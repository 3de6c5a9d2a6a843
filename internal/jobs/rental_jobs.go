package jobs

import (
	"context"
	"time"

	"rentacar-backend/internal/logger"
)

// ActivateDueRentals promotes PENDING_START rentals whose start time has
// arrived to IN_PROGRESS and resyncs the affected vehicles.
func (jr *JobRunner) ActivateDueRentals() {
	jr.runWithRecovery("ActivateDueRentals", func() {
		ctx := context.Background()

		ids, err := jr.store.RentalRepository.ActivateDue(ctx, time.Now().UTC())
		if err != nil {
			logger.Error("Failed to activate due rentals", "error", err)
			return
		}

		logger.Info("Activated due rentals", "count", len(ids))

		for _, id := range ids {
			rental, err := jr.store.RentalRepository.GetByID(ctx, id)
			if err != nil {
				logger.Error("Failed to load activated rental", "rental_id", id, "error", err)
				continue
			}

			if _, err := jr.services.Maintenance.ResyncVehicleStatus(ctx, rental.VehicleID); err != nil {
				logger.Error("Failed to resync vehicle after activation",
					"rental_id", id,
					"vehicle_id", rental.VehicleID,
					"error", err)
			}
		}
	})
}
