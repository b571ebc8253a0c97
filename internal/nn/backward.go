package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
)

// trace holds the intermediates of one training step. It is owned by the
// call that builds it and dropped on return.
type trace struct {
	ins  []*matrix.Matrix // ins[i]: pre-activation of layer i
	outs []*matrix.Matrix // outs[0]: input; outs[i+1] = sigmoid(ins[i])
}

// Backward runs a forward pass on input, backpropagates the error against
// target and stores the loss gradient of every parameter with SetGrad.
// Parameters are not modified.
//
// With δ denoting the error signal of a layer:
//
//	δ_last = (target − a_last) ⊙ σ'(z_last)
//	δ_i    = σ'(z_i) ⊙ (δ_{i+1} · W_{i+1}ᵀ)
//	∂L/∂W_i = −a_iᵀ · δ_i
//	∂L/∂b_i = −Σ_batch δ_i
//
// which are the gradients of L = ½·Σ(target − a_last)². All error signals
// use the weights as they were before the call.
//
// Returns the mean squared error of the forward pass.
func (n *FullyConnectedNetwork) Backward(input, target *matrix.Matrix) (float32, error) {
	if !n.compiled {
		return 0, fmt.Errorf("%w: Backward before Compile", ErrPrecondition)
	}
	if err := n.checkTrainingPair(input, target); err != nil {
		return 0, err
	}

	tr, err := n.forwardTrace(input)
	if err != nil {
		return 0, err
	}

	deltas, err := n.errorSignals(tr, target)
	if err != nil {
		return 0, err
	}

	for i, delta := range deltas {
		change, err := tr.outs[i].Transpose().Mul(delta)
		if err != nil {
			return 0, err
		}
		n.weights[i].SetGrad(change.Scale(-1).SetName("grad_" + n.weights[i].Name()))
		n.biases[i].SetGrad(delta.SumRows().Scale(-1).SetName("grad_" + n.biases[i].Name()))
	}

	return MSELoss(tr.outs[len(tr.outs)-1], target)
}

// TrainStep performs one step of gradient descent on a single sample or
// mini-batch:
//
//	W_i += learningRate · a_iᵀ · δ_i
//	b_i += learningRate · Σ_batch δ_i
//
// input is [batch, dims[0]] and target is [batch, dims[last]]. On error no
// parameter is modified.
func (n *FullyConnectedNetwork) TrainStep(input, target *matrix.Matrix, learningRate float32) error {
	if _, err := n.Backward(input, target); err != nil {
		return err
	}

	for _, p := range n.Parameters() {
		updated, err := p.Value().Add(p.Grad().Scale(-learningRate))
		if err != nil {
			return err
		}
		if err := p.Value().Assign(updated); err != nil {
			return err
		}
		p.ZeroGrad()
	}
	return nil
}

// forwardTrace is ForwardPass keeping every layer's pre- and
// post-activation.
func (n *FullyConnectedNetwork) forwardTrace(input *matrix.Matrix) (*trace, error) {
	layers := len(n.weights)
	tr := &trace{
		ins:  make([]*matrix.Matrix, layers),
		outs: make([]*matrix.Matrix, layers+1),
	}
	tr.outs[0] = input

	for i := 0; i < layers; i++ {
		z, err := n.preActivation(tr.outs[i], i)
		if err != nil {
			return nil, err
		}
		tr.ins[i] = z
		tr.outs[i+1] = z.Sigmoid()
	}
	return tr, nil
}

// errorSignals computes δ_i for every layer, last to first.
func (n *FullyConnectedNetwork) errorSignals(tr *trace, target *matrix.Matrix) ([]*matrix.Matrix, error) {
	last := len(n.weights) - 1
	deltas := make([]*matrix.Matrix, last+1)

	residual, err := target.Sub(tr.outs[last+1])
	if err != nil {
		return nil, err
	}
	deltas[last], err = residual.Hadamard(tr.ins[last].SigmoidDerivative())
	if err != nil {
		return nil, err
	}

	for i := last - 1; i >= 0; i-- {
		back, err := deltas[i+1].Mul(n.weights[i+1].Value().Transpose())
		if err != nil {
			return nil, err
		}
		deltas[i], err = tr.ins[i].SigmoidDerivative().Hadamard(back)
		if err != nil {
			return nil, err
		}
	}
	return deltas, nil
}

func (n *FullyConnectedNetwork) checkTrainingPair(input, target *matrix.Matrix) error {
	if err := n.checkInput("train step", input); err != nil {
		return err
	}
	lastW := n.weights[len(n.weights)-1].Value()
	if target.Cols() != lastW.Cols() {
		return widthMismatch("train step target", target, lastW)
	}
	if target.Rows() != input.Rows() {
		return widthMismatch("train step batch", input, target)
	}
	return nil
}
