package jobs

import (
	"context"

	"rentacar-backend/internal/logger"
)

// ResyncVehicleStatuses recomputes the status of every vehicle from its
// current rentals and maintenance windows, correcting any drift left by
// out-of-band changes.
func (jr *JobRunner) ResyncVehicleStatuses() {
	jr.runWithRecovery("ResyncVehicleStatuses", func() {
		ctx := context.Background()

		vehicles, err := jr.store.VehicleRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list vehicles for resync", "error", err)
			return
		}

		changed := 0
		for _, v := range vehicles {
			status, err := jr.services.Maintenance.ResyncVehicleStatus(ctx, v.ID)
			if err != nil {
				logger.Error("Failed to resync vehicle status", "vehicle_id", v.ID, "error", err)
				continue
			}
			if status != v.Status {
				changed++
				logger.Debug("Vehicle status corrected",
					"vehicle_id", v.ID,
					"previous", v.Status,
					"current", status)
			}
		}

		logger.Info("Vehicle status resync finished", "vehicles", len(vehicles), "changed", changed)
	})
}
