package flymap

import (
	"errors"
	"fmt"
)

// Sentinel errors for map validation. Every failure returned by Parse wraps
// one of these inside a *ValidationError.
var (
	ErrNegativeDroneCount  = errors.New("drone count cannot be negative")
	ErrInvalidNumber       = errors.New("invalid number")
	ErrUnknownMetadataKey  = errors.New("unknown metadata key")
	ErrUnknownZoneType     = errors.New("unknown zone type")
	ErrNotPositiveInteger  = errors.New("must be a positive integer")
	ErrMalformedMetadata   = errors.New("malformed metadata token")
	ErrSelfConnection      = errors.New("self-connection forbidden")
	ErrDuplicateConnection = errors.New("duplicate connection")
	ErrZoneRedeclared      = errors.New("zone redeclared")
	ErrUnknownZone         = errors.New("connection references unknown zone")
)

// ValidationError reports a rule violation on one line of a map file.
type ValidationError struct {
	// Line is 1-based. Zero means the failure is not tied to a single line.
	Line int
	// Text is the raw input line.
	Text string
	Err  error
}

func (e *ValidationError) Error() string {
	if e.Line == 0 {
		return e.Err.Error()
	}
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err contains at least one ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
