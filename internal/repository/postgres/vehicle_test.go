package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
	"rentacar-backend/internal/repository/postgres"
)

func testVehicle() *domain.Vehicle {
	return &domain.Vehicle{
		Detail: &domain.VehicleDetail{
			Model:      "Corolla",
			Year:       2022,
			CategoryID: 1,
		},
		Plate:          "AB123CD",
		OdometerKM:     50000,
		DailyRateCents: 4500,
		Status:         domain.VehicleStatusAvailable,
	}
}

func TestVehicleRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("InsertsDetailAndVehicleTogether", func(t *testing.T) {
		v := testVehicle()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO vehicle_details").
			WithArgs(v.Detail.Model, v.Detail.Year, v.Detail.CategoryID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectQuery("INSERT INTO vehicles").
			WithArgs(int32(10), v.Plate, v.OdometerKM, v.DailyRateCents, v.Status, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
		mock.ExpectCommit()

		err := repo.Create(ctx, v)
		assert.NoError(t, err)
		assert.Equal(t, int32(3), v.ID)
		assert.Equal(t, int32(10), v.DetailID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RollsBackWhenVehicleInsertFails", func(t *testing.T) {
		v := testVehicle()

		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO vehicle_details").
			WithArgs(v.Detail.Model, v.Detail.Year, v.Detail.CategoryID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
		mock.ExpectQuery("INSERT INTO vehicles").
			WithArgs(int32(10), v.Plate, v.OdometerKM, v.DailyRateCents, v.Status, sqlmock.AnyArg()).
			WillReturnError(errors.New("duplicate key value violates unique constraint"))
		mock.ExpectRollback()

		err := repo.Create(ctx, v)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestVehicleRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows([]string{"id", "detail_id", "plate", "odometer_km", "daily_rate_cents", "status", "created_on", "d_id", "model", "year", "category_id", "category"}).
			AddRow(3, 10, "AB123CD", 50000.0, 4500, "AVAILABLE", time.Now(), 10, "Corolla", 2022, 1, "Sedan")

		mock.ExpectQuery("SELECT (.+) FROM vehicles v").
			WithArgs(int32(3)).
			WillReturnRows(rows)

		v, err := repo.GetByID(ctx, 3)
		assert.NoError(t, err)
		assert.Equal(t, "AB123CD", v.Plate)
		assert.Equal(t, "Sedan", v.Detail.Category)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM vehicles v").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.GetByID(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestVehicleRepository_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("CascadesToDetail", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("DELETE FROM vehicles WHERE id").
			WithArgs(int32(3)).
			WillReturnRows(sqlmock.NewRows([]string{"detail_id"}).AddRow(10))
		mock.ExpectExec("DELETE FROM vehicle_details WHERE id").
			WithArgs(int32(10)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := repo.Delete(ctx, 3)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectQuery("DELETE FROM vehicles WHERE id").
			WithArgs(int32(99)).
			WillReturnRows(sqlmock.NewRows([]string{"detail_id"}))
		mock.ExpectRollback()

		err := repo.Delete(ctx, 99)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}

func TestVehicleRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewVehicleRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET status").
			WithArgs(domain.VehicleStatusRented, int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(ctx, 3, domain.VehicleStatusRented)
		assert.NoError(t, err)
	})

	t.Run("NotFound", func(t *testing.T) {
		mock.ExpectExec("UPDATE vehicles SET status").
			WithArgs(domain.VehicleStatusRented, int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(ctx, 99, domain.VehicleStatusRented)
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
