package app

import (
	"context"
	"errors"

	"healthlog/internal/domain"
)

// MethodService exposes the method catalog.
type MethodService struct {
	methods domain.MethodRepository
}

// NewMethodService creates a MethodService backed by the given repository.
func NewMethodService(methods domain.MethodRepository) *MethodService {
	return &MethodService{methods: methods}
}

// List returns all methods.
func (s *MethodService) List(ctx context.Context) ([]domain.Method, error) {
	return s.methods.ListMethods(ctx)
}

// Create inserts a method and returns its id.
func (s *MethodService) Create(ctx context.Context, name, description string) (int64, error) {
	if name == "" {
		return 0, errors.New("name is required")
	}
	return s.methods.CreateMethod(ctx, name, description)
}

// Delete removes a method. Returns domain.ErrMethodInUse while measurements
// of any kind still reference it.
func (s *MethodService) Delete(ctx context.Context, id int64) error {
	return s.methods.DeleteMethod(ctx, id)
}
