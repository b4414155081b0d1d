package scenario

import "errors"

// Validation and wiring failures wrap one of these sentinel errors so
// callers can classify a failure with errors.Is while the message still
// names the offending entity and field.
var (
	// ErrMalformedInput marks a missing or wrong-typed configuration field.
	ErrMalformedInput = errors.New("malformed input")

	// ErrInvalidTopology marks a structurally valid but unusable network
	// definition: subnet too small, outside the private ranges, or a
	// subnet on a Public network.
	ErrInvalidTopology = errors.New("invalid topology")

	// ErrDuplicateName marks a network or system name used more than once.
	ErrDuplicateName = errors.New("duplicate name")

	// ErrUnresolvedNetwork marks a system referencing a network that does
	// not exist in the scenario.
	ErrUnresolvedNetwork = errors.New("unresolved network reference")

	// ErrPoolExhausted marks a lease request against a network with no
	// usable addresses left.
	ErrPoolExhausted = errors.New("address pool exhausted")
)
