package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a product or category does not exist
	ErrNotFound = errors.New("not found")
	// ErrInvalidProduct wraps product validation failures
	ErrInvalidProduct = errors.New("invalid product")
	// ErrCategoryNotFound is returned when a product references a missing category
	ErrCategoryNotFound = errors.New("category not found")
	// ErrDuplicateCategory is returned when a category name is already taken
	ErrDuplicateCategory = errors.New("category already exists")
)

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidProduct, msg)
}
