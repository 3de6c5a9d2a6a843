package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type rentalFixture struct {
	rentals      *MockRentalRepo
	vehicles     *MockVehicleRepo
	clients      *MockClientRepo
	employees    *MockEmployeeRepo
	maintenances *MockMaintenanceRepo
	email        *MockEmailService
	svc          *rentalService
}

func newRentalFixture(now time.Time) *rentalFixture {
	f := &rentalFixture{
		rentals:      new(MockRentalRepo),
		vehicles:     new(MockVehicleRepo),
		clients:      new(MockClientRepo),
		employees:    new(MockEmployeeRepo),
		maintenances: new(MockMaintenanceRepo),
		email:        new(MockEmailService),
	}
	svc := NewRentalService(f.rentals, f.vehicles, f.clients, f.employees, f.maintenances, f.email)
	f.svc = svc.(*rentalService)
	f.svc.nowFn = func() time.Time { return now }
	f.svc.sync.nowFn = f.svc.nowFn
	return f
}

func availableVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		ID:             1,
		Plate:          "AB123CD",
		OdometerKM:     50000,
		DailyRateCents: 100,
		Status:         domain.VehicleStatusAvailable,
	}
}

func TestRentalService_Create(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

	input := CreateRentalInput{VehicleID: 1, ClientID: 2, EmployeeID: 3, Start: start, End: end}

	t.Run("Success", func(t *testing.T) {
		f := newRentalFixture(now)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.clients.On("GetByID", ctx, int32(2)).Return(&domain.Client{ID: 2, Name: "Ana", Email: "ana@example.com"}, nil)
		f.employees.On("GetByID", ctx, int32(3)).Return(&domain.Employee{ID: 3}, nil)
		f.rentals.On("CountOverlappingActive", ctx, int32(1), start, end, int32(0)).Return(int32(0), nil)
		f.rentals.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		f.email.On("SendRentalConfirmation", ctx, "ana@example.com", "Ana", "AB123CD", start, end, int32(200)).Return(nil)

		rental, err := f.svc.Create(ctx, input)

		assert.NoError(t, err)
		// Two full days at 100 cents each.
		assert.Equal(t, int32(200), rental.TotalCostCents)
		assert.Equal(t, domain.RentalStatusPendingStart, rental.Status)
		// Future-dated rentals do not touch the stored vehicle status.
		f.vehicles.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
		f.rentals.AssertExpectations(t)
		f.email.AssertExpectations(t)
	})

	t.Run("PartialDayRoundsUp", func(t *testing.T) {
		f := newRentalFixture(now)
		lateEnd := end.Add(time.Hour)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.clients.On("GetByID", ctx, int32(2)).Return(&domain.Client{ID: 2}, nil)
		f.employees.On("GetByID", ctx, int32(3)).Return(&domain.Employee{ID: 3}, nil)
		f.rentals.On("CountOverlappingActive", ctx, int32(1), start, lateEnd, int32(0)).Return(int32(0), nil)
		f.rentals.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		f.email.On("SendRentalConfirmation", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		rental, err := f.svc.Create(ctx, CreateRentalInput{VehicleID: 1, ClientID: 2, EmployeeID: 3, Start: start, End: lateEnd})

		assert.NoError(t, err)
		assert.Equal(t, int32(300), rental.TotalCostCents)
	})

	t.Run("ImmediateStartIsInProgress", func(t *testing.T) {
		f := newRentalFixture(start)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.clients.On("GetByID", ctx, int32(2)).Return(&domain.Client{ID: 2}, nil)
		f.employees.On("GetByID", ctx, int32(3)).Return(&domain.Employee{ID: 3}, nil)
		f.rentals.On("CountOverlappingActive", ctx, int32(1), start, end, int32(0)).Return(int32(0), nil)
		f.rentals.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		// The resync sees the freshly inserted rental covering now and
		// marks the vehicle rented immediately.
		f.maintenances.On("CountCoveringInstant", ctx, int32(1), start).Return(int32(0), nil)
		f.rentals.On("CountOverlappingActive", ctx, int32(1), start, start, int32(0)).Return(int32(1), nil)
		f.vehicles.On("UpdateStatus", ctx, int32(1), domain.VehicleStatusRented).Return(nil)
		f.email.On("SendRentalConfirmation", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		rental, err := f.svc.Create(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusInProgress, rental.Status)
		f.vehicles.AssertCalled(t, "UpdateStatus", ctx, int32(1), domain.VehicleStatusRented)
	})

	t.Run("OverlappingRental", func(t *testing.T) {
		f := newRentalFixture(now)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.clients.On("GetByID", ctx, int32(2)).Return(&domain.Client{ID: 2}, nil)
		f.employees.On("GetByID", ctx, int32(3)).Return(&domain.Employee{ID: 3}, nil)
		f.rentals.On("CountOverlappingActive", ctx, int32(1), start, end, int32(0)).Return(int32(1), nil)

		_, err := f.svc.Create(ctx, input)

		assert.ErrorIs(t, err, ErrVehicleUnavailable)
		f.rentals.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("VehicleInMaintenance", func(t *testing.T) {
		f := newRentalFixture(now)
		vehicle := availableVehicle()
		vehicle.Status = domain.VehicleStatusInMaintenance
		f.vehicles.On("GetByID", ctx, int32(1)).Return(vehicle, nil)
		f.clients.On("GetByID", ctx, int32(2)).Return(&domain.Client{ID: 2}, nil)
		f.employees.On("GetByID", ctx, int32(3)).Return(&domain.Employee{ID: 3}, nil)

		_, err := f.svc.Create(ctx, input)

		assert.ErrorIs(t, err, ErrVehicleUnavailable)
		f.rentals.AssertNotCalled(t, "CountOverlappingActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		f := newRentalFixture(now)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.clients.On("GetByID", ctx, int32(2)).Return(&domain.Client{ID: 2}, nil)
		f.employees.On("GetByID", ctx, int32(3)).Return(&domain.Employee{ID: 3}, nil)

		_, err := f.svc.Create(ctx, CreateRentalInput{VehicleID: 1, ClientID: 2, EmployeeID: 3, Start: end, End: start})

		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("StartTooFarInPast", func(t *testing.T) {
		f := newRentalFixture(now)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.clients.On("GetByID", ctx, int32(2)).Return(&domain.Client{ID: 2}, nil)
		f.employees.On("GetByID", ctx, int32(3)).Return(&domain.Employee{ID: 3}, nil)

		past := now.Add(-time.Hour)
		_, err := f.svc.Create(ctx, CreateRentalInput{VehicleID: 1, ClientID: 2, EmployeeID: 3, Start: past, End: end})

		assert.ErrorIs(t, err, ErrInvalidWindow)
	})

	t.Run("VehicleNotFound", func(t *testing.T) {
		f := newRentalFixture(now)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(nil, repository.ErrNotFound)

		_, err := f.svc.Create(ctx, input)

		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("EmailFailureDoesNotFailCreate", func(t *testing.T) {
		f := newRentalFixture(now)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.clients.On("GetByID", ctx, int32(2)).Return(&domain.Client{ID: 2}, nil)
		f.employees.On("GetByID", ctx, int32(3)).Return(&domain.Employee{ID: 3}, nil)
		f.rentals.On("CountOverlappingActive", ctx, int32(1), start, end, int32(0)).Return(int32(0), nil)
		f.rentals.On("Create", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		f.email.On("SendRentalConfirmation", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		rental, err := f.svc.Create(ctx, input)

		assert.NoError(t, err)
		assert.NotNil(t, rental)
	})
}

func TestRentalService_Modify(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

	stored := func() *domain.Rental {
		return &domain.Rental{
			ID:             7,
			VehicleID:      1,
			ClientID:       2,
			EmployeeID:     3,
			StartTime:      start,
			EndTime:        end,
			TotalCostCents: 200,
			Status:         domain.RentalStatusPendingStart,
		}
	}

	t.Run("EmployeeOnlyChangeSkipsRecompute", func(t *testing.T) {
		f := newRentalFixture(now)
		f.rentals.On("GetByID", ctx, int32(7)).Return(stored(), nil)
		f.employees.On("GetByID", ctx, int32(9)).Return(&domain.Employee{ID: 9}, nil)
		f.rentals.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		newEmployee := int32(9)
		rental, err := f.svc.Modify(ctx, 7, ModifyRentalInput{EmployeeID: &newEmployee})

		assert.NoError(t, err)
		assert.Equal(t, int32(9), rental.EmployeeID)
		assert.Equal(t, int32(200), rental.TotalCostCents)
		f.rentals.AssertNotCalled(t, "CountOverlappingActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.vehicles.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("DateChangeRecomputesCost", func(t *testing.T) {
		f := newRentalFixture(now)
		newEnd := end.Add(24 * time.Hour)
		f.rentals.On("GetByID", ctx, int32(7)).Return(stored(), nil)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.rentals.On("CountOverlappingActive", ctx, int32(1), start, newEnd, int32(7)).Return(int32(0), nil)
		f.rentals.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)

		rental, err := f.svc.Modify(ctx, 7, ModifyRentalInput{End: &newEnd})

		assert.NoError(t, err)
		assert.Equal(t, int32(300), rental.TotalCostCents)
	})

	t.Run("VehicleChangeConflicts", func(t *testing.T) {
		f := newRentalFixture(now)
		other := availableVehicle()
		other.ID = 4
		f.rentals.On("GetByID", ctx, int32(7)).Return(stored(), nil)
		f.vehicles.On("GetByID", ctx, int32(4)).Return(other, nil)
		f.rentals.On("CountOverlappingActive", ctx, int32(4), start, end, int32(7)).Return(int32(1), nil)

		newVehicle := int32(4)
		_, err := f.svc.Modify(ctx, 7, ModifyRentalInput{VehicleID: &newVehicle})

		assert.ErrorIs(t, err, ErrVehicleUnavailable)
		f.rentals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("FinishedRentalRejected", func(t *testing.T) {
		f := newRentalFixture(now)
		finished := stored()
		finished.Status = domain.RentalStatusFinished
		f.rentals.On("GetByID", ctx, int32(7)).Return(finished, nil)

		newEmployee := int32(9)
		_, err := f.svc.Modify(ctx, 7, ModifyRentalInput{EmployeeID: &newEmployee})

		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})
}

func TestRentalService_Finalize(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)

	stored := func() *domain.Rental {
		return &domain.Rental{
			ID:             7,
			VehicleID:      1,
			ClientID:       2,
			StartTime:      start,
			EndTime:        start.Add(96 * time.Hour),
			TotalCostCents: 400,
			Status:         domain.RentalStatusInProgress,
		}
	}

	t.Run("Success", func(t *testing.T) {
		f := newRentalFixture(now)
		f.rentals.On("GetByID", ctx, int32(7)).Return(stored(), nil)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.rentals.On("Finalize", ctx, mock.AnythingOfType("*domain.Rental"), 50200.0, domain.VehicleStatusAvailable).Return(nil)
		f.clients.On("GetByID", ctx, int32(2)).Return(&domain.Client{ID: 2, Email: "ana@example.com"}, nil)
		f.email.On("SendRentalFinalized", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		rental, err := f.svc.Finalize(ctx, 7, 50200)

		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusFinished, rental.Status)
		assert.Equal(t, now, rental.EndTime)
		// Early return: 1 day 5 hours elapsed, charged as two days.
		assert.Equal(t, int32(200), rental.TotalCostCents)
	})

	t.Run("DoubleFinalizeRejected", func(t *testing.T) {
		f := newRentalFixture(now)
		finished := stored()
		finished.Status = domain.RentalStatusFinished
		f.rentals.On("GetByID", ctx, int32(7)).Return(finished, nil)

		_, err := f.svc.Finalize(ctx, 7, 50200)

		assert.ErrorIs(t, err, ErrInvalidStateTransition)
		f.rentals.AssertNotCalled(t, "Finalize", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("OdometerRollbackRejected", func(t *testing.T) {
		f := newRentalFixture(now)
		f.rentals.On("GetByID", ctx, int32(7)).Return(stored(), nil)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)

		_, err := f.svc.Finalize(ctx, 7, 49000)

		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("ReturnBeforeStartChargesOneDay", func(t *testing.T) {
		early := start.Add(-time.Hour)
		f := newRentalFixture(early)
		pending := stored()
		pending.Status = domain.RentalStatusPendingStart
		f.rentals.On("GetByID", ctx, int32(7)).Return(pending, nil)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.rentals.On("Finalize", ctx, mock.AnythingOfType("*domain.Rental"), 50000.0, domain.VehicleStatusAvailable).Return(nil)
		f.clients.On("GetByID", ctx, int32(2)).Return(&domain.Client{ID: 2}, nil)
		f.email.On("SendRentalFinalized", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		rental, err := f.svc.Finalize(ctx, 7, 50000)

		assert.NoError(t, err)
		assert.Equal(t, int32(100), rental.TotalCostCents)
	})
}

func TestRentalService_Cancel(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC)

	stored := func(status domain.RentalStatus) *domain.Rental {
		return &domain.Rental{
			ID:        7,
			VehicleID: 1,
			ClientID:  2,
			StartTime: now.Add(-24 * time.Hour),
			EndTime:   now.Add(24 * time.Hour),
			Status:    status,
		}
	}

	t.Run("Success", func(t *testing.T) {
		f := newRentalFixture(now)
		f.rentals.On("GetByID", ctx, int32(7)).Return(stored(domain.RentalStatusPendingStart), nil)
		f.rentals.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		// Resync path: no maintenance, no other active rental, back to available.
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.maintenances.On("CountCoveringInstant", ctx, int32(1), now).Return(int32(0), nil)
		f.rentals.On("CountOverlappingActive", ctx, int32(1), now, now, int32(0)).Return(int32(0), nil)
		f.vehicles.On("UpdateStatus", ctx, int32(1), domain.VehicleStatusAvailable).Return(nil)
		f.clients.On("GetByID", ctx, int32(2)).Return(&domain.Client{ID: 2}, nil)
		f.email.On("SendRentalCancelled", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		rental, err := f.svc.Cancel(ctx, 7)

		assert.NoError(t, err)
		assert.Equal(t, domain.RentalStatusCancelled, rental.Status)
		f.vehicles.AssertCalled(t, "UpdateStatus", ctx, int32(1), domain.VehicleStatusAvailable)
	})

	t.Run("MaintenanceWindowWinsAfterCancel", func(t *testing.T) {
		f := newRentalFixture(now)
		f.rentals.On("GetByID", ctx, int32(7)).Return(stored(domain.RentalStatusInProgress), nil)
		f.rentals.On("Update", ctx, mock.AnythingOfType("*domain.Rental")).Return(nil)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.maintenances.On("CountCoveringInstant", ctx, int32(1), now).Return(int32(1), nil)
		f.vehicles.On("UpdateStatus", ctx, int32(1), domain.VehicleStatusInMaintenance).Return(nil)
		f.clients.On("GetByID", ctx, int32(2)).Return(&domain.Client{ID: 2}, nil)
		f.email.On("SendRentalCancelled", ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil)

		_, err := f.svc.Cancel(ctx, 7)

		assert.NoError(t, err)
		f.vehicles.AssertCalled(t, "UpdateStatus", ctx, int32(1), domain.VehicleStatusInMaintenance)
	})

	t.Run("TerminalRentalRejected", func(t *testing.T) {
		f := newRentalFixture(now)
		f.rentals.On("GetByID", ctx, int32(7)).Return(stored(domain.RentalStatusCancelled), nil)

		_, err := f.svc.Cancel(ctx, 7)

		assert.ErrorIs(t, err, ErrInvalidStateTransition)
		f.rentals.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestRentalService_CheckAvailability(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)

	t.Run("Available", func(t *testing.T) {
		f := newRentalFixture(now)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.rentals.On("CountOverlappingActive", ctx, int32(1), start, end, int32(0)).Return(int32(0), nil)

		ok, err := f.svc.CheckAvailability(ctx, 1, start, end)

		assert.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("OverlapIsFalseNotError", func(t *testing.T) {
		f := newRentalFixture(now)
		f.vehicles.On("GetByID", ctx, int32(1)).Return(availableVehicle(), nil)
		f.rentals.On("CountOverlappingActive", ctx, int32(1), start, end, int32(0)).Return(int32(1), nil)

		ok, err := f.svc.CheckAvailability(ctx, 1, start, end)

		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("MissingVehicleIsFalseNotError", func(t *testing.T) {
		f := newRentalFixture(now)
		f.vehicles.On("GetByID", ctx, int32(99)).Return(nil, repository.ErrNotFound)

		ok, err := f.svc.CheckAvailability(ctx, 99, start, end)

		assert.NoError(t, err)
		assert.False(t, ok)
	})
}
