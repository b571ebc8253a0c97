package nn

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/born-ml/mlp/internal/matrix"
)

// Config holds construction options for a FullyConnectedNetwork.
//
// The zero value is usable: weights in [-1, 1), seed 0, default logger.
type Config struct {
	InitLow  float32      // Lower bound of the uniform weight init (default: -1)
	InitHigh float32      // Upper bound of the uniform weight init (default: 1)
	Seed     int64        // Seed for the init source when Rand is nil
	Rand     *rand.Rand   // Random source for weight init (default: seeded from Seed)
	Logger   *slog.Logger // Logger for lifecycle events (default: slog.Default())
}

// FullyConnectedNetwork is a linear stack of dense layers with sigmoid
// activations.
//
// Lifecycle: declare widths with AddLayer, allocate parameters with Compile,
// then call ForwardPass and TrainStep. Parameters are allocated once and
// updated in place for the lifetime of the network.
//
// Layer i maps a [batch, dims[i]] activation to [batch, dims[i+1]]:
//
//	a_{i+1} = sigmoid(a_i · W_i + b_i)
//
// where W_i has shape [dims[i], dims[i+1]] and b_i has shape [1, dims[i+1]].
//
// A network is not safe for concurrent use; TrainStep calls must be
// sequential.
//
// Example:
//
//	net := nn.NewFullyConnectedNetwork(nn.Config{Seed: 42})
//	_ = net.AddLayer(2)
//	_ = net.AddLayer(3)
//	_ = net.AddLayer(1)
//	if err := net.Compile(); err != nil {
//	    return err
//	}
//	out, err := net.ForwardPass(input) // [batch, 1]
type FullyConnectedNetwork struct {
	layerDims []int
	weights   []*Parameter // [dims[i], dims[i+1]]
	biases    []*Parameter // [1, dims[i+1]]
	compiled  bool

	initLow  float32
	initHigh float32
	rng      *rand.Rand
	logger   *slog.Logger
}

// NewFullyConnectedNetwork creates an empty, uncompiled network.
func NewFullyConnectedNetwork(cfg Config) *FullyConnectedNetwork {
	if cfg.InitLow == 0 && cfg.InitHigh == 0 {
		cfg.InitLow, cfg.InitHigh = -1, 1
	}
	if cfg.Rand == nil {
		//nolint:gosec // Using math/rand for weight initialization (not security-critical)
		cfg.Rand = rand.New(rand.NewSource(cfg.Seed))
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &FullyConnectedNetwork{
		initLow:  cfg.InitLow,
		initHigh: cfg.InitHigh,
		rng:      cfg.Rand,
		logger:   cfg.Logger,
	}
}

// AddLayer appends a layer of the given width.
//
// The first call declares the input width, the last the output width.
func (n *FullyConnectedNetwork) AddLayer(width int) error {
	if n.compiled {
		return fmt.Errorf("%w: AddLayer(%d) after Compile", ErrPrecondition, width)
	}
	if width < 1 {
		return fmt.Errorf("%w: layer width must be positive, got %d", ErrInvalidTopology, width)
	}
	n.layerDims = append(n.layerDims, width)
	return nil
}

// Compile allocates one weight and one bias per adjacent pair of layers.
//
// Weights are drawn uniformly from the configured range, biases start at
// zero. Calling Compile again is a logged no-op.
func (n *FullyConnectedNetwork) Compile() error {
	if n.compiled {
		n.logger.Warn("attempt to compile neural net multiple times")
		return nil
	}
	if len(n.layerDims) < 2 {
		return fmt.Errorf("%w: need at least 2 layers to compile, got %d", ErrInvalidTopology, len(n.layerDims))
	}

	layers := len(n.layerDims) - 1
	n.weights = make([]*Parameter, layers)
	n.biases = make([]*Parameter, layers)
	for i := 0; i < layers; i++ {
		w := matrix.New(n.layerDims[i], n.layerDims[i+1]).SetUniform(n.rng, n.initLow, n.initHigh)
		b := matrix.New(1, n.layerDims[i+1])
		n.weights[i] = NewParameter(fmt.Sprintf("weight_%d", i), w)
		n.biases[i] = NewParameter(fmt.Sprintf("bias_%d", i), b)
	}
	n.compiled = true

	n.logger.Info("compiled neural net",
		slog.Any("layers", n.layerDims),
		slog.Int("trainable_params", n.NumParameters()))
	return nil
}

// ForwardPass runs input through every layer and returns the final
// activation. input is [batch, dims[0]]; the result is [batch, dims[last]].
//
// The network is not modified.
func (n *FullyConnectedNetwork) ForwardPass(input *matrix.Matrix) (*matrix.Matrix, error) {
	if !n.compiled {
		return nil, fmt.Errorf("%w: ForwardPass before Compile", ErrPrecondition)
	}
	if err := n.checkInput("forward pass", input); err != nil {
		return nil, err
	}

	current := input
	for i := range n.weights {
		z, err := n.preActivation(current, i)
		if err != nil {
			return nil, err
		}
		current = z.Sigmoid()
	}
	return current, nil
}

// Loss returns the mean squared error between ForwardPass(input) and target.
func (n *FullyConnectedNetwork) Loss(input, target *matrix.Matrix) (float32, error) {
	out, err := n.ForwardPass(input)
	if err != nil {
		return 0, err
	}
	return MSELoss(out, target)
}

// Parameters returns the trainable parameters in layer order:
// weight_0, bias_0, weight_1, bias_1, ...
//
// Returns nil before Compile.
func (n *FullyConnectedNetwork) Parameters() []*Parameter {
	if !n.compiled {
		return nil
	}
	params := make([]*Parameter, 0, 2*len(n.weights))
	for i := range n.weights {
		params = append(params, n.weights[i], n.biases[i])
	}
	return params
}

// NumParameters returns the number of trainable scalars.
func (n *FullyConnectedNetwork) NumParameters() int {
	total := 0
	for i := range n.weights {
		total += n.weights[i].Value().Len() + n.biases[i].Value().Len()
	}
	return total
}

// LayerDims returns a copy of the declared layer widths.
func (n *FullyConnectedNetwork) LayerDims() []int {
	dims := make([]int, len(n.layerDims))
	copy(dims, n.layerDims)
	return dims
}

// Compiled reports whether Compile has succeeded.
func (n *FullyConnectedNetwork) Compiled() bool {
	return n.compiled
}

// Weights returns deep copies of the weight matrices.
func (n *FullyConnectedNetwork) Weights() []*matrix.Matrix {
	return cloneValues(n.weights)
}

// Biases returns deep copies of the bias matrices.
func (n *FullyConnectedNetwork) Biases() []*matrix.Matrix {
	return cloneValues(n.biases)
}

// preActivation computes a · W_i + b_i with the bias broadcast over rows.
func (n *FullyConnectedNetwork) preActivation(a *matrix.Matrix, i int) (*matrix.Matrix, error) {
	z, err := a.Mul(n.weights[i].Value())
	if err != nil {
		return nil, err
	}
	return z.AddRow(n.biases[i].Value())
}

func (n *FullyConnectedNetwork) checkInput(op string, input *matrix.Matrix) error {
	if input.Cols() != n.layerDims[0] {
		return widthMismatch(op+" input", input, n.weights[0].Value())
	}
	return nil
}

func widthMismatch(op string, a, b *matrix.Matrix) error {
	return &matrix.ShapeError{
		Op:    op,
		Left:  matrix.Operand{Name: a.Name(), Rows: a.Rows(), Cols: a.Cols()},
		Right: matrix.Operand{Name: b.Name(), Rows: b.Rows(), Cols: b.Cols()},
		Err:   matrix.ErrDimensionMismatch,
	}
}

func cloneValues(params []*Parameter) []*matrix.Matrix {
	out := make([]*matrix.Matrix, len(params))
	for i, p := range params {
		out[i] = p.Value().Clone().SetName(p.Name())
	}
	return out
}
