package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"

	"healthlog/internal/domain"
)

func TestGetOrCreateMethod_ExistingName(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer sqlDB.Close()
	d := New(sqlDB)

	mock.ExpectQuery("SELECT id FROM methods WHERE name").
		WithArgs("manual scale").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	id, err := d.GetOrCreateMethod(context.Background(), "manual scale")
	if err != nil {
		t.Fatalf("GetOrCreateMethod: %v", err)
	}
	if id != 3 {
		t.Fatalf("unexpected id: %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetOrCreateMethod_InsertsOnFirstUse(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer sqlDB.Close()
	d := New(sqlDB)

	mock.ExpectQuery("SELECT id FROM methods WHERE name").
		WithArgs("fitness band").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("INSERT INTO methods").
		WithArgs("fitness band", domain.DefaultMethodDescription).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(4)))

	id, err := d.GetOrCreateMethod(context.Background(), "fitness band")
	if err != nil {
		t.Fatalf("GetOrCreateMethod: %v", err)
	}
	if id != 4 {
		t.Fatalf("unexpected id: %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestGetOrCreateMethod_LostRaceFallsThrough(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer sqlDB.Close()
	d := New(sqlDB)

	// Not found, then ON CONFLICT DO NOTHING returns no row because a
	// concurrent call inserted first, then the re-select finds the winner.
	mock.ExpectQuery("SELECT id FROM methods WHERE name").
		WithArgs("fitness band").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("INSERT INTO methods").
		WithArgs("fitness band", domain.DefaultMethodDescription).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectQuery("SELECT id FROM methods WHERE name").
		WithArgs("fitness band").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(9)))

	id, err := d.GetOrCreateMethod(context.Background(), "fitness band")
	if err != nil {
		t.Fatalf("GetOrCreateMethod: %v", err)
	}
	if id != 9 {
		t.Fatalf("unexpected id: %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestDeleteMethod_MapsForeignKeyViolation(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer sqlDB.Close()
	d := New(sqlDB)

	mock.ExpectExec("DELETE FROM methods").
		WithArgs(int64(3)).
		WillReturnError(&pq.Error{Code: "23503", Constraint: "weights_method_id_fkey"})

	if err := d.DeleteMethod(context.Background(), 3); !errors.Is(err, domain.ErrMethodInUse) {
		t.Fatalf("expected ErrMethodInUse, got %v", err)
	}
}

func TestDeleteMethod_Unreferenced(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	defer sqlDB.Close()
	d := New(sqlDB)

	mock.ExpectExec("DELETE FROM methods").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := d.DeleteMethod(context.Background(), 3); err != nil {
		t.Fatalf("DeleteMethod: %v", err)
	}
}
