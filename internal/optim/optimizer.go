// Package optim implements optimization algorithms for training neural networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//
// Optimizers consume the gradients stored on nn.Parameter by
// FullyConnectedNetwork.Backward.
//
// Example usage:
//
//	optimizer := optim.NewSGD(net.Parameters(), optim.SGDConfig{
//	    LR:       0.5,
//	    Momentum: 0.9,
//	})
//
//	for epoch := range epochs {
//	    loss, err := net.Backward(input, target)
//	    if err != nil {
//	        return err
//	    }
//	    if err := optimizer.Step(); err != nil {
//	        return err
//	    }
//	    optimizer.ZeroGrad()
//	}
package optim

import (
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update model parameters based on computed gradients to
// minimize the loss function during training.
type Optimizer interface {
	// Step applies gradient updates to all parameters in place.
	//
	// Parameters without a gradient are skipped.
	Step() error

	// ZeroGrad clears all parameter gradients.
	//
	// This should be called after each Step so a gradient is never
	// applied twice.
	ZeroGrad()

	// GetLR returns the current learning rate.
	//
	// Useful for monitoring and learning rate scheduling.
	GetLR() float32
}

// Config is the base configuration for all optimizers.
type Config struct {
	LR float32 // Learning rate
}

// checkGrad verifies a parameter's gradient matches its value.
func checkGrad(param *nn.Parameter) error {
	v, g := param.Value(), param.Grad()
	if v.Rows() != g.Rows() || v.Cols() != g.Cols() {
		return fmt.Errorf("optim: gradient of %s has shape (%d,%d), want (%d,%d): %w",
			param.Name(), g.Rows(), g.Cols(), v.Rows(), v.Cols(), matrix.ErrDimensionMismatch)
	}
	return nil
}

func zeroGrad(params []*nn.Parameter) {
	for _, param := range params {
		param.ZeroGrad()
	}
}

var (
	_ Optimizer = (*SGD)(nil)
	_ Optimizer = (*Adam)(nil)
)
