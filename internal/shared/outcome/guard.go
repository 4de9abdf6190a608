package outcome

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Failure logs err with its cause and returns the generic InternalError.
// The error text never reaches the caller.
func Failure(log zerolog.Logger, location string, err error) Outcome {
	ev := log.Error().Str("location", location).Err(err)
	if cause := errors.Unwrap(err); cause != nil {
		ev = ev.Str("cause", cause.Error())
	}
	ev.Msg("operation failed")
	return InternalError()
}

// Guard converts a panic in the calling operation into InternalError.
// Use it as: defer outcome.Guard(log, location, &out).
func Guard(log zerolog.Logger, location string, out *Outcome) {
	if r := recover(); r != nil {
		*out = Failure(log, location, fmt.Errorf("panic: %v", r))
	}
}
