package app_test

import (
	"context"
	"errors"
	"testing"

	"healthlog/internal/app"
	"healthlog/internal/domain"
)

type mockMeasurementRepo struct {
	addFn    func(ctx context.Context, kind domain.Kind, date string, value float64, methodID *int64, userID int64) (int64, error)
	listFn   func(ctx context.Context, kind domain.Kind, userID int64) ([]domain.Measurement, error)
	deleteFn func(ctx context.Context, kind domain.Kind, id int64) error
}

func (m *mockMeasurementRepo) AddMeasurement(ctx context.Context, kind domain.Kind, date string, value float64, methodID *int64, userID int64) (int64, error) {
	if m.addFn != nil {
		return m.addFn(ctx, kind, date, value, methodID, userID)
	}
	return 1, nil
}

func (m *mockMeasurementRepo) ListMeasurements(ctx context.Context, kind domain.Kind, userID int64) ([]domain.Measurement, error) {
	if m.listFn != nil {
		return m.listFn(ctx, kind, userID)
	}
	return nil, nil
}

func (m *mockMeasurementRepo) DeleteMeasurement(ctx context.Context, kind domain.Kind, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, kind, id)
	}
	return nil
}

type mockMethodRepo struct {
	getOrCreateFn func(ctx context.Context, name string) (int64, error)
	listFn        func(ctx context.Context) ([]domain.Method, error)
	createFn      func(ctx context.Context, name, description string) (int64, error)
	deleteFn      func(ctx context.Context, id int64) error
}

func (m *mockMethodRepo) GetOrCreateMethod(ctx context.Context, name string) (int64, error) {
	if m.getOrCreateFn != nil {
		return m.getOrCreateFn(ctx, name)
	}
	return 1, nil
}

func (m *mockMethodRepo) ListMethods(ctx context.Context) ([]domain.Method, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

func (m *mockMethodRepo) CreateMethod(ctx context.Context, name, description string) (int64, error) {
	if m.createFn != nil {
		return m.createFn(ctx, name, description)
	}
	return 1, nil
}

func (m *mockMethodRepo) DeleteMethod(ctx context.Context, id int64) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func TestRecord_ResolvesMethodBeforeInsert(t *testing.T) {
	var resolvedName string
	var insertedMethodID *int64
	methods := &mockMethodRepo{
		getOrCreateFn: func(_ context.Context, name string) (int64, error) {
			resolvedName = name
			return 3, nil
		},
	}
	measurements := &mockMeasurementRepo{
		addFn: func(_ context.Context, kind domain.Kind, date string, value float64, methodID *int64, userID int64) (int64, error) {
			if kind != domain.KindWeight || date != "2024-01-01" || value != 72.5 || userID != 7 {
				t.Fatalf("unexpected insert: %v %s %v %d", kind, date, value, userID)
			}
			insertedMethodID = methodID
			return 11, nil
		},
	}
	svc := app.NewMeasurementService(measurements, methods)

	entry, err := svc.Record(context.Background(), 7, "weight", "2024-01-01", 72.5, "manual scale")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resolvedName != "manual scale" {
		t.Fatalf("method not resolved, got %q", resolvedName)
	}
	if insertedMethodID == nil || *insertedMethodID != 3 {
		t.Fatalf("resolved method id not passed to insert: %v", insertedMethodID)
	}
	if entry.ID != 11 || entry.Kind != domain.KindWeight {
		t.Fatalf("unexpected entry: %+v", entry)
	}
}

func TestRecord_NoMethod(t *testing.T) {
	methods := &mockMethodRepo{
		getOrCreateFn: func(_ context.Context, _ string) (int64, error) {
			t.Fatal("catalog must not be touched for untagged measurements")
			return 0, nil
		},
	}
	measurements := &mockMeasurementRepo{
		addFn: func(_ context.Context, _ domain.Kind, _ string, _ float64, methodID *int64, _ int64) (int64, error) {
			if methodID != nil {
				t.Fatalf("expected nil method id, got %v", *methodID)
			}
			return 1, nil
		},
	}
	svc := app.NewMeasurementService(measurements, methods)

	if _, err := svc.Record(context.Background(), 1, "steps", "2024-02-02", 9000, ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecord_Validation(t *testing.T) {
	svc := app.NewMeasurementService(&mockMeasurementRepo{}, &mockMethodRepo{})
	ctx := context.Background()

	tests := []struct {
		name  string
		kind  string
		date  string
		value float64
	}{
		{"unknown kind", "pressure", "2024-01-01", 10},
		{"free-form kind", "weights; --", "2024-01-01", 10},
		{"bad date", "weight", "01.01.2024", 10},
		{"negative value", "weight", "2024-01-01", -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := svc.Record(ctx, 1, tc.kind, tc.date, tc.value, ""); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestRecord_MethodResolutionFailure(t *testing.T) {
	methods := &mockMethodRepo{
		getOrCreateFn: func(_ context.Context, _ string) (int64, error) {
			return 0, errors.New("db down")
		},
	}
	measurements := &mockMeasurementRepo{
		addFn: func(_ context.Context, _ domain.Kind, _ string, _ float64, _ *int64, _ int64) (int64, error) {
			t.Fatal("insert must not run when method resolution fails")
			return 0, nil
		},
	}
	svc := app.NewMeasurementService(measurements, methods)

	if _, err := svc.Record(context.Background(), 1, "heartbeat", "2024-01-01", 60, "band"); err == nil {
		t.Fatal("expected error from method resolution")
	}
}

func TestListAndDelete_RejectUnknownKind(t *testing.T) {
	svc := app.NewMeasurementService(&mockMeasurementRepo{}, &mockMethodRepo{})
	ctx := context.Background()

	if _, err := svc.List(ctx, 1, "bogus"); !errors.Is(err, domain.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
	if err := svc.Delete(ctx, "bogus", 1); !errors.Is(err, domain.ErrUnknownKind) {
		t.Fatalf("expected ErrUnknownKind, got %v", err)
	}
}

func TestMethodService_Delete_InUse(t *testing.T) {
	methods := &mockMethodRepo{
		deleteFn: func(_ context.Context, _ int64) error {
			return domain.ErrMethodInUse
		},
	}
	svc := app.NewMethodService(methods)

	if err := svc.Delete(context.Background(), 5); !errors.Is(err, domain.ErrMethodInUse) {
		t.Fatalf("expected ErrMethodInUse, got %v", err)
	}
}

func TestMethodService_Create_RequiresName(t *testing.T) {
	svc := app.NewMethodService(&mockMethodRepo{})
	if _, err := svc.Create(context.Background(), "", "desc"); err == nil {
		t.Fatal("expected validation error")
	}
}
