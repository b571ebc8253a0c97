package nn

import "github.com/born-ml/mlp/internal/matrix"

// Parameter represents a trainable parameter in a neural network.
//
// Parameters are the weight and bias matrices of the dense layers. The value
// is owned by the network and mutated in place by training; the gradient is
// filled by Backward and consumed by an optimizer.
//
// Example:
//
//	for _, p := range net.Parameters() {
//	    fmt.Println(p.Name(), p.Value().Rows(), p.Value().Cols())
//	}
type Parameter struct {
	name  string         // Parameter name (e.g., "weight_0", "bias_1")
	value *matrix.Matrix // The parameter matrix
	grad  *matrix.Matrix // Loss gradient, same shape as value (nil until Backward)
}

// NewParameter creates a new trainable parameter.
//
// The value is renamed to name so that shape errors point at the parameter.
func NewParameter(name string, value *matrix.Matrix) *Parameter {
	value.SetName(name)
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the parameter matrix.
func (p *Parameter) Value() *matrix.Matrix {
	return p.value
}

// Grad returns the gradient matrix.
//
// Returns nil if no gradient has been computed yet (before Backward).
func (p *Parameter) Grad() *matrix.Matrix {
	return p.grad
}

// SetGrad sets the gradient matrix.
func (p *Parameter) SetGrad(grad *matrix.Matrix) {
	p.grad = grad
}

// ZeroGrad clears the gradient matrix.
//
// This should be called before each training iteration so a stale gradient
// is never applied twice.
func (p *Parameter) ZeroGrad() {
	p.grad = nil
}
