package optim

import (
	"math"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// Adam implements the Adam optimizer with bias correction.
//
//	m = β1·m + (1−β1)·g
//	v = β2·v + (1−β2)·g²
//	param -= lr · m̂ / (√v̂ + eps)
//
// where m̂ and v̂ are m and v divided by (1 − β^t).
type Adam struct {
	params []*nn.Parameter
	lr     float32
	beta1  float32
	beta2  float32
	eps    float32
	t      int                              // Timestep for bias correction
	m      map[*nn.Parameter]*matrix.Matrix // First moment estimates
	v      map[*nn.Parameter]*matrix.Matrix // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float32    // Learning rate (default: 0.001)
	Betas [2]float32 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float32    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*nn.Parameter]*matrix.Matrix),
		v:      make(map[*nn.Parameter]*matrix.Matrix),
	}
}

// Step performs a single optimization step.
func (a *Adam) Step() error {
	a.t++

	biasCorrection1 := float32(1.0 - math.Pow(float64(a.beta1), float64(a.t)))
	biasCorrection2 := float32(1.0 - math.Pow(float64(a.beta2), float64(a.t)))

	for _, param := range a.params {
		grad := param.Grad()
		if grad == nil {
			continue
		}
		if err := checkGrad(param); err != nil {
			return err
		}

		m, ok := a.m[param]
		if !ok {
			m = matrix.New(grad.Rows(), grad.Cols())
			a.m[param] = m
		}
		v, ok := a.v[param]
		if !ok {
			v = matrix.New(grad.Rows(), grad.Cols())
			a.v[param] = v
		}

		a.updateParameter(param.Value(), grad, m, v, biasCorrection1, biasCorrection2)
	}
	return nil
}

func (a *Adam) updateParameter(value, grad, m, v *matrix.Matrix, biasCorrection1, biasCorrection2 float32) {
	for i := 0; i < value.Rows(); i++ {
		for j := 0; j < value.Cols(); j++ {
			g := grad.At(i, j)

			mij := a.beta1*m.At(i, j) + (1.0-a.beta1)*g
			vij := a.beta2*v.At(i, j) + (1.0-a.beta2)*g*g
			m.Set(i, j, mij)
			v.Set(i, j, vij)

			mHat := mij / biasCorrection1
			vHat := vij / biasCorrection2

			value.Set(i, j, value.At(i, j)-a.lr*mHat/(float32(math.Sqrt(float64(vHat)))+a.eps))
		}
	}
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() {
	zeroGrad(a.params)
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float32 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *Adam) SetLR(lr float32) {
	a.lr = lr
}
