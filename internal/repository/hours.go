package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"hourlog/internal/model"
)

var (
	// ErrStorage wraps every backend failure (connection, statement execution).
	ErrStorage = errors.New("storage error")
	// ErrDecode marks a stored row that does not match the Hours shape.
	ErrDecode = errors.New("stored row does not match hours schema")
	// ErrAlreadyExists is returned when an identity is already taken.
	ErrAlreadyExists = errors.New("already exists")
	// ErrInvalid is returned by Insert for input that fails validation. Nothing is stored.
	ErrInvalid = errors.New("invalid hours")
)

// HoursRepository is the storage contract for logged hours.
// Implementations must be safe for concurrent use and return copies the caller may keep.
type HoursRepository interface {
	// Insert stores a new entry with a store assigned ID and returns the stored copy.
	// Input that fails model.NewHours.Validate is rejected with ErrInvalid wrapping the field errors.
	Insert(ctx context.Context, h model.NewHours) (*model.Hours, error)

	// ByID returns the entry with the given ID, or nil without error if it does not exist.
	ByID(ctx context.Context, id uuid.UUID) (*model.Hours, error)

	// List returns a snapshot of all entries. The order is unspecified.
	List(ctx context.Context) ([]model.Hours, error)

	// Delete removes the entry with the given ID and reports whether it existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// CheckInsert validates h the way every Insert must before storing it.
func CheckInsert(h model.NewHours) error {
	if err := h.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}
