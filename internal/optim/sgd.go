package optim

import (
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Without momentum one Step is equivalent to FullyConnectedNetwork.TrainStep.
type SGD struct {
	params     []*nn.Parameter
	lr         float32
	momentum   float32
	velocities map[*nn.Parameter]*matrix.Matrix
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float32 // Learning rate (default: 0.01)
	Momentum float32 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer.
//
// Example:
//
//	sgd := optim.NewSGD(net.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	// Set defaults
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter]*matrix.Matrix),
	}
}

// Step performs a single optimization step.
//
// Parameters with no gradient are skipped.
func (s *SGD) Step() error {
	for _, param := range s.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}
		if err := checkGrad(param); err != nil {
			return err
		}

		update := grad
		if s.momentum != 0 {
			var err error
			if update, err = s.velocity(param, grad); err != nil {
				return err
			}
		}

		// param -= lr * update
		updated, err := param.Value().Add(update.Scale(-s.lr))
		if err != nil {
			return err
		}
		if err := param.Value().Assign(updated); err != nil {
			return err
		}
	}
	return nil
}

// velocity advances and returns the momentum buffer of param.
func (s *SGD) velocity(param *nn.Parameter, grad *matrix.Matrix) (*matrix.Matrix, error) {
	velocity, exists := s.velocities[param]
	if !exists {
		// Initialize velocity to zeros with same shape as parameter
		velocity = matrix.NewNamed(grad.Rows(), grad.Cols(), "velocity_"+param.Name())
		s.velocities[param] = velocity
	}

	// velocity = momentum * velocity + grad
	next, err := velocity.Scale(s.momentum).Add(grad)
	if err != nil {
		return nil, err
	}
	if err := velocity.Assign(next); err != nil {
		return nil, err
	}
	return velocity, nil
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float32 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float32) {
	s.lr = lr
}
