package model

import "errors"

// ErrInvalidInput reports a precondition violation detected at call time,
// such as an empty word list or a non-positive word count.
var ErrInvalidInput = errors.New("invalid input")
