package nn

import "github.com/born-ml/mlp/internal/matrix"

// MSELoss computes Mean Squared Error loss.
//
// Loss = mean((predictions - targets)²)
//
// Returns matrix.ErrDimensionMismatch when the shapes differ.
//
// Example:
//
//	out, _ := net.ForwardPass(input)
//	loss, err := nn.MSELoss(out, target)
func MSELoss(predictions, targets *matrix.Matrix) (float32, error) {
	// Compute difference: (predictions - targets)
	diff, err := predictions.Sub(targets)
	if err != nil {
		return 0, err
	}

	// Square: (predictions - targets)²
	squared, err := diff.Hadamard(diff)
	if err != nil {
		return 0, err
	}

	// Mean: sum / num_elements
	var sum float32
	for _, v := range squared.Data() {
		sum += v
	}
	return sum / float32(squared.Len()), nil
}
