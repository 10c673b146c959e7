package domain

import "context"

// Method describes how a measurement was taken, e.g. "manual scale" or
// "fitness band".
type Method struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultMethodDescription is assigned to methods created lazily through
// GetOrCreate.
const DefaultMethodDescription = "No information about this method"

// MethodRepository is the port for the method catalog.
type MethodRepository interface {
	// GetOrCreateMethod resolves a method name to its id, creating the entry
	// with DefaultMethodDescription on first use. Name uniqueness is enforced
	// by the store, so concurrent calls for the same unseen name converge on
	// a single row.
	GetOrCreateMethod(ctx context.Context, name string) (int64, error)
	ListMethods(ctx context.Context) ([]Method, error)
	CreateMethod(ctx context.Context, name, description string) (int64, error)
	// DeleteMethod removes a method. It returns ErrMethodInUse while any
	// measurement row of any kind still references it.
	DeleteMethod(ctx context.Context, id int64) error
}
