package powerup

import (
	"errors"
	"strconv"
)

var (
	ErrNoVariant          = &ConfigurationError{Reason: "no variant assigned"}
	ErrUnknownVariant     = errors.New("powerup: unknown variant")
	ErrUnreachableVariant = errors.New("powerup: dispatch reached an unknown variant")
	ErrNilTarget          = errors.New("powerup: nil target")
	ErrInvalidPosition    = errors.New("powerup: position is not finite")
)

// ConfigurationError reports a power-up that was ticked in a state it can
// never be constructed in.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return "powerup: misconfigured: " + e.Reason
}

// UnknownVariantError is returned by Decode for a tag outside the closed set.
type UnknownVariantError struct {
	Tag string
}

func (e *UnknownVariantError) Error() string {
	return "powerup: unknown variant " + strconv.Quote(e.Tag)
}

func (e *UnknownVariantError) Unwrap() error {
	return ErrUnknownVariant
}
