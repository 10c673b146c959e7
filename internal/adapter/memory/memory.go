// Package memory implements in-memory repositories for development and
// testing. It mirrors the relational constraints the postgres adapter relies
// on: unique emails, unique method names, cascade-on-user-delete and
// restrict-on-method-delete.
package memory

import (
	"context"
	"sync"

	"healthlog/internal/domain"
)

// DB implements the domain repositories on in-process state.
type DB struct {
	mu           sync.Mutex
	users        []*domain.User
	methods      []domain.Method
	ads          []domain.Ad
	measurements map[domain.Kind][]domain.Measurement

	userIDCounter        int64
	methodIDCounter      int64
	adIDCounter          int64
	measurementIDCounter int64
}

// New creates a new in-memory database.
func New() *DB {
	return &DB{
		measurements: make(map[domain.Kind][]domain.Measurement),
	}
}

// Ensure interfaces are met.
var _ domain.UserRepository = (*DB)(nil)
var _ domain.MethodRepository = (*DB)(nil)
var _ domain.MeasurementRepository = (*DB)(nil)
var _ domain.AdRepository = (*DB)(nil)

// --- UserRepository ---

// GetByEmail retrieves a user by email, or nil if absent.
func (db *DB) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

// CreateUser inserts a new account, rejecting duplicate emails.
func (db *DB) CreateUser(ctx context.Context, email, name, passwordHash string, age *int, height *float64) (*domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, u := range db.users {
		if u.Email == email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	db.userIDCounter++
	u := &domain.User{
		ID:           db.userIDCounter,
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Age:          age,
		Height:       height,
	}
	db.users = append(db.users, u)
	return u, nil
}

// DeleteUser removes an account and cascades to the user's measurement rows
// across all kinds.
func (db *DB) DeleteUser(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, u := range db.users {
		if u.ID == id {
			db.users = append(db.users[:i], db.users[i+1:]...)
			break
		}
	}
	for kind, rows := range db.measurements {
		kept := rows[:0]
		for _, m := range rows {
			if m.UserID != id {
				kept = append(kept, m)
			}
		}
		db.measurements[kind] = kept
	}
	return nil
}

// ListUsers returns all accounts.
func (db *DB) ListUsers(ctx context.Context) ([]domain.User, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.User, 0, len(db.users))
	for _, u := range db.users {
		out = append(out, *u)
	}
	return out, nil
}

// --- MethodRepository ---

// GetOrCreateMethod resolves a method name, creating the entry on first use.
func (db *DB) GetOrCreateMethod(ctx context.Context, name string) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, m := range db.methods {
		if m.Name == name {
			return m.ID, nil
		}
	}
	return db.insertMethod(name, domain.DefaultMethodDescription), nil
}

// ListMethods returns all catalog entries.
func (db *DB) ListMethods(ctx context.Context) ([]domain.Method, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.Method, len(db.methods))
	copy(out, db.methods)
	return out, nil
}

// CreateMethod inserts a catalog entry.
func (db *DB) CreateMethod(ctx context.Context, name, description string) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.insertMethod(name, description), nil
}

// DeleteMethod removes a catalog entry unless measurements reference it.
func (db *DB) DeleteMethod(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, rows := range db.measurements {
		for _, m := range rows {
			if m.MethodID != nil && *m.MethodID == id {
				return domain.ErrMethodInUse
			}
		}
	}
	for i, m := range db.methods {
		if m.ID == id {
			db.methods = append(db.methods[:i], db.methods[i+1:]...)
			break
		}
	}
	return nil
}

func (db *DB) insertMethod(name, description string) int64 {
	db.methodIDCounter++
	db.methods = append(db.methods, domain.Method{
		ID:          db.methodIDCounter,
		Name:        name,
		Description: description,
	})
	return db.methodIDCounter
}

// --- MeasurementRepository ---

// AddMeasurement inserts one row into the slice selected by kind.
func (db *DB) AddMeasurement(ctx context.Context, kind domain.Kind, date string, value float64, methodID *int64, userID int64) (int64, error) {
	if !kind.Valid() {
		return 0, domain.ErrUnknownKind
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	db.measurementIDCounter++
	db.measurements[kind] = append(db.measurements[kind], domain.Measurement{
		ID:       db.measurementIDCounter,
		Kind:     kind,
		Date:     date,
		Value:    value,
		MethodID: methodID,
		UserID:   userID,
	})
	return db.measurementIDCounter, nil
}

// ListMeasurements returns a user's rows of one kind with method metadata
// attached.
func (db *DB) ListMeasurements(ctx context.Context, kind domain.Kind, userID int64) ([]domain.Measurement, error) {
	if !kind.Valid() {
		return nil, domain.ErrUnknownKind
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	var out []domain.Measurement
	for _, m := range db.measurements[kind] {
		if m.UserID != userID {
			continue
		}
		if m.MethodID != nil {
			for _, meth := range db.methods {
				if meth.ID == *m.MethodID {
					name, desc := meth.Name, meth.Description
					m.MethodName = &name
					m.MethodDescription = &desc
					break
				}
			}
		}
		out = append(out, m)
	}
	return out, nil
}

// DeleteMeasurement removes one row by id. Unknown ids are not an error.
func (db *DB) DeleteMeasurement(ctx context.Context, kind domain.Kind, id int64) error {
	if !kind.Valid() {
		return domain.ErrUnknownKind
	}

	db.mu.Lock()
	defer db.mu.Unlock()

	rows := db.measurements[kind]
	for i, m := range rows {
		if m.ID == id {
			db.measurements[kind] = append(rows[:i], rows[i+1:]...)
			return nil
		}
	}
	return nil
}

// --- AdRepository ---

// ListAds returns the full ad inventory.
func (db *DB) ListAds(ctx context.Context) ([]domain.Ad, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	out := make([]domain.Ad, len(db.ads))
	copy(out, db.ads)
	return out, nil
}

// CreateAd inserts a new ad.
func (db *DB) CreateAd(ctx context.Context, imageLink, targetLink string) (int64, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.adIDCounter++
	db.ads = append(db.ads, domain.Ad{ID: db.adIDCounter, ImageLink: imageLink, TargetLink: targetLink})
	return db.adIDCounter, nil
}

// DeleteAd removes an ad by id.
func (db *DB) DeleteAd(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, a := range db.ads {
		if a.ID == id {
			db.ads = append(db.ads[:i], db.ads[i+1:]...)
			return nil
		}
	}
	return nil
}

// IncrementAdClicks bumps the click counter for one ad.
func (db *DB) IncrementAdClicks(ctx context.Context, id int64) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i := range db.ads {
		if db.ads[i].ID == id {
			db.ads[i].Counter++
			return nil
		}
	}
	return nil
}
