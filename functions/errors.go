package functions

import "errors"

// ErrInvalidOption is returned when a decorator is configured with a value
// outside the allowed range (e.g., a negative MaxEntries).
var ErrInvalidOption = errors.New("functions: invalid option value")
