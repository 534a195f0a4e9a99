package domain

import "fmt"

// CheckSizeLimit rejects sizes above limit with ErrInvalidSize.
// A limit of zero or less means no limit.
func CheckSizeLimit(size, limit int) error {
	if limit > 0 && size > limit {
		return fmt.Errorf("size %d exceeds the limit of %d: %w", size, limit, ErrInvalidSize)
	}
	return nil
}
