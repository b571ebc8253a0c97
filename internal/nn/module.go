// Package nn implements a fully-connected feed-forward network on top of
// internal/matrix, with manual backpropagation.
//
// This package provides:
//   - Module interface: forward inference plus trainable parameters
//   - Parameter: a named weight or bias matrix with its gradient
//   - FullyConnectedNetwork: dense layers with sigmoid activations
//   - MSELoss: mean squared error for monitoring training
//
// Gradients are derived by hand for the sigmoid/MSE pair; there is no
// autodiff graph.
package nn

import "github.com/born-ml/mlp/internal/matrix"

// Module is the interface optimizers and drivers program against.
//
// FullyConnectedNetwork is the only implementation.
type Module interface {
	// ForwardPass computes the output for a [batch, in] input.
	ForwardPass(input *matrix.Matrix) (*matrix.Matrix, error)

	// Backward fills the gradient of every parameter for one
	// (input, target) pair and returns the loss before any update.
	Backward(input, target *matrix.Matrix) (float32, error)

	// Parameters returns all trainable parameters.
	Parameters() []*Parameter
}

var _ Module = (*FullyConnectedNetwork)(nil)
