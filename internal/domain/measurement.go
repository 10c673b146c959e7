package domain

import "context"

// Kind selects one of the three parallel measurement tables. It is a closed
// enumeration: anything outside the three constants is rejected before any
// SQL is built, so a kind can never act as a free-form table identifier.
type Kind string

const (
	KindWeight    Kind = "weight"
	KindHeartbeat Kind = "heartbeat"
	KindSteps     Kind = "steps"
)

// Kinds lists every valid measurement kind.
var Kinds = []Kind{KindWeight, KindHeartbeat, KindSteps}

// ParseKind validates a kind discriminator coming from the outside.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindWeight, KindHeartbeat, KindSteps:
		return Kind(s), nil
	}
	return "", ErrUnknownKind
}

// Valid reports whether k is one of the three known kinds.
func (k Kind) Valid() bool {
	_, err := ParseKind(string(k))
	return err == nil
}

// Measurement represents a single dated reading of one kind, owned by a user
// and optionally tagged with the method that produced it. MethodName and
// MethodDescription are populated on reads via a left join against the
// method catalog.
type Measurement struct {
	ID                int64   `json:"id"`
	Kind              Kind    `json:"kind"`
	Date              string  `json:"date"`
	Value             float64 `json:"value"`
	MethodID          *int64  `json:"methodId,omitempty"`
	MethodName        *string `json:"methodName,omitempty"`
	MethodDescription *string `json:"methodDescription,omitempty"`
	UserID            int64   `json:"userId"`
}

// MeasurementRepository is the port for measurement persistence. Every
// operation targets exactly one of the three kind tables.
type MeasurementRepository interface {
	AddMeasurement(ctx context.Context, kind Kind, date string, value float64, methodID *int64, userID int64) (int64, error)
	ListMeasurements(ctx context.Context, kind Kind, userID int64) ([]Measurement, error)
	DeleteMeasurement(ctx context.Context, kind Kind, id int64) error
}
