// Package domain holds the value types of a URL risk evaluation: the raw and
// parsed URL, the reference lists and tunables the rules read, and the
// warnings and result the evaluator produces. Everything here is pure and
// immutable once constructed.
package domain

import "errors"

// ErrInvalidInput reports a URL that cannot be evaluated at all (empty or
// whitespace only). It is the only error an evaluation can return.
var ErrInvalidInput = errors.New("invalid input")
