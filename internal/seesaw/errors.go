package seesaw

import "errors"

var (
	// ErrInvalidParams indicates plank or animation parameters outside their valid range.
	ErrInvalidParams = errors.New("seesaw: invalid parameters")

	// ErrMalformedState indicates a persisted entry that could not be decoded at all.
	ErrMalformedState = errors.New("seesaw: malformed persisted state")

	// ErrUnknownColor indicates a colour string that is neither hsl() nor hex.
	ErrUnknownColor = errors.New("seesaw: unrecognised colour")
)
