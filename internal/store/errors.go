package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a create would violate a
	// uniqueness constraint. Nothing is persisted in that case.
	ErrDuplicate = errors.New("duplicate key")

	// ErrValidation is returned when a required field is missing or
	// malformed before the record ever reaches the database.
	ErrValidation = errors.New("invalid input")
)

// mapDuplicate converts the driver's unique-violation error into
// ErrDuplicate. The pre-checks inside each create transaction catch
// duplicates that are already visible, but a concurrent insert can
// slip past them and only trip the unique index itself.
func mapDuplicate(err error, what string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w", what, ErrDuplicate)
	}
	return err
}
