package nn

import "errors"

var (
	// ErrInvalidTopology is returned when a network cannot be built from the
	// declared layers: fewer than two widths, or a width below one.
	ErrInvalidTopology = errors.New("nn: invalid topology")

	// ErrPrecondition is returned when an operation is called in the wrong
	// state: ForwardPass/TrainStep before Compile, or AddLayer after it.
	ErrPrecondition = errors.New("nn: precondition violation")
)
