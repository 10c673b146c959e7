package app

import (
	"context"
	"errors"
	"time"

	"healthlog/internal/domain"
)

// MeasurementService encapsulates the measurement-tracking use cases. A
// write first resolves the method name through the catalog, then inserts the
// row tagged with the resolved id.
type MeasurementService struct {
	measurements domain.MeasurementRepository
	methods      domain.MethodRepository
}

// NewMeasurementService creates a MeasurementService backed by the given
// repositories.
func NewMeasurementService(measurements domain.MeasurementRepository, methods domain.MethodRepository) *MeasurementService {
	return &MeasurementService{measurements: measurements, methods: methods}
}

// Record validates and stores a new measurement. The kind discriminator is
// checked against the closed set here, before it can reach the storage
// layer. An empty methodName leaves the row untagged.
func (s *MeasurementService) Record(ctx context.Context, userID int64, kindStr, date string, value float64, methodName string) (*domain.Measurement, error) {
	kind, err := domain.ParseKind(kindStr)
	if err != nil {
		return nil, err
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, errors.New("date must be formatted YYYY-MM-DD")
	}
	if value < 0 {
		return nil, errors.New("value must be >= 0")
	}

	var methodID *int64
	if methodName != "" {
		id, err := s.methods.GetOrCreateMethod(ctx, methodName)
		if err != nil {
			return nil, err
		}
		methodID = &id
	}

	id, err := s.measurements.AddMeasurement(ctx, kind, date, value, methodID, userID)
	if err != nil {
		return nil, err
	}
	return &domain.Measurement{ID: id, Kind: kind, Date: date, Value: value, MethodID: methodID, UserID: userID}, nil
}

// List returns all of a user's measurements of one kind, joined with method
// metadata.
func (s *MeasurementService) List(ctx context.Context, userID int64, kindStr string) ([]domain.Measurement, error) {
	kind, err := domain.ParseKind(kindStr)
	if err != nil {
		return nil, err
	}
	return s.measurements.ListMeasurements(ctx, kind, userID)
}

// Delete removes one measurement by id. Deleting an id that is already gone
// succeeds.
func (s *MeasurementService) Delete(ctx context.Context, kindStr string, id int64) error {
	kind, err := domain.ParseKind(kindStr)
	if err != nil {
		return err
	}
	return s.measurements.DeleteMeasurement(ctx, kind, id)
}
