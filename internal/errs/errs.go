// Package errs defines sentinel errors shared across the project.
package errs

import "errors"

// ErrNotUTF8 is returned when an input is not valid UTF-8 text.
var ErrNotUTF8 = errors.New("input is not valid utf-8")
