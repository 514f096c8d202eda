package countdown

import "github.com/chime-cli/chime/internal/apperr"

var (
	// ErrMalformedDuration reports input that does not match the S, M:S, or
	// H:M:S shapes with non-negative integer fields.
	ErrMalformedDuration = &apperr.Error{
		Message: "malformed duration: expected S, M:S, or H:M:S with numeric fields",
	}

	// ErrDurationTooLarge reports input whose total length cannot be
	// represented.
	ErrDurationTooLarge = &apperr.Error{
		Message: "duration is too large",
	}

	// ErrZeroDuration reports an attempt to start a countdown of zero
	// length.
	ErrZeroDuration = &apperr.Error{
		Message: "duration must be greater than zero",
	}
)
