package domain

import "errors"

// ErrInvalidSize is returned when a generator receives a size below its domain minimum.
var ErrInvalidSize = errors.New("invalid domain size")

// ErrUnknownDomain is returned when a domain name has no registered generator.
var ErrUnknownDomain = errors.New("unknown domain")

// ErrDuplicateProposition is reported by Instance.Validate when a name is declared twice.
var ErrDuplicateProposition = errors.New("duplicate proposition")

// ErrUndeclaredProposition is reported by Instance.Validate when an action or
// fluent refers to a name that is not part of the partition.
var ErrUndeclaredProposition = errors.New("undeclared proposition")
