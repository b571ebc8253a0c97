// Package main provides the mlp command-line driver.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/born-ml/mlp/matrix"
	"github.com/born-ml/mlp/nn"
)

const version = "v0.0.1-dev"

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	switch args[0] {
	case "version":
		fmt.Fprintf(stdout, "mlp %s\n", version)
		return nil
	case "demo":
		return runDemo(args[1:], stdout, stderr)
	case "xor":
		return runXOR(args[1:], stdout, stderr)
	default:
		usage(stdout)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "mlp - dense matrices and a fully connected network")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version")
	fmt.Fprintln(w, "  demo       Multiply two matrices and show a shape error")
	fmt.Fprintln(w, "  xor        Train a [2,3,1] network on XOR")
}

// newLogger builds a text logger on w, at debug level when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// runDemo multiplies a 3×4 and a 4×3 matrix of ones, then attempts an
// undefined product to show the error path.
func runDemo(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := newLogger(stderr, *verbose)

	a := matrix.NewNamed(3, 4, "A").SetOnes()
	fmt.Fprintln(stdout, a)
	b := matrix.NewNamed(4, 3, "B").SetOnes()
	fmt.Fprintln(stdout, b)

	c, err := a.Mul(b)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, c)

	if _, err := a.Mul(a); err != nil {
		logger.Error("matrix product failed", slog.Any("err", err))
	}
	return nil
}

// runXOR trains a network on the four XOR samples one at a time.
func runXOR(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("xor", flag.ContinueOnError)
	fs.SetOutput(stderr)
	epochs := fs.Int("epochs", 10000, "Number of passes over the four samples")
	lr := fs.Float64("lr", 0.5, "Learning rate")
	seed := fs.Int64("seed", 42, "Seed for weight initialization")
	hidden := fs.Int("hidden", 3, "Hidden layer width")
	verbose := fs.Bool("v", false, "Enable debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	logger := newLogger(stderr, *verbose)

	net := nn.NewFullyConnectedNetwork(nn.Config{Seed: *seed, Logger: logger})
	for _, width := range []int{2, *hidden, 1} {
		if err := net.AddLayer(width); err != nil {
			return err
		}
	}
	if err := net.Compile(); err != nil {
		return err
	}

	inputs, targets, err := xorSamples()
	if err != nil {
		return err
	}

	for epoch := 0; epoch < *epochs; epoch++ {
		for i := range inputs {
			if err := net.TrainStep(inputs[i], targets[i], float32(*lr)); err != nil {
				return fmt.Errorf("epoch %d: %w", epoch, err)
			}
		}
		if *verbose && epoch%1000 == 0 {
			var total float32
			for i := range inputs {
				loss, err := net.Loss(inputs[i], targets[i])
				if err != nil {
					return err
				}
				total += loss
			}
			logger.Debug("epoch", slog.Int("epoch", epoch), slog.Float64("loss", float64(total/4)))
		}
	}

	for i := range inputs {
		out, err := net.ForwardPass(inputs[i])
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%g XOR %g = %.4f (want %g)\n",
			inputs[i].At(0, 0), inputs[i].At(0, 1), out.At(0, 0), targets[i].At(0, 0))
	}
	return nil
}

func xorSamples() ([]*matrix.Matrix, []*matrix.Matrix, error) {
	in := [][]float32{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	out := []float32{0, 1, 1, 0}

	inputs := make([]*matrix.Matrix, len(in))
	targets := make([]*matrix.Matrix, len(in))
	for i := range in {
		x, err := matrix.FromSlice(1, 2, in[i])
		if err != nil {
			return nil, nil, err
		}
		y, err := matrix.FromSlice(1, 1, out[i:i+1])
		if err != nil {
			return nil, nil, err
		}
		inputs[i] = x.SetName(fmt.Sprintf("x_%d", i))
		targets[i] = y.SetName(fmt.Sprintf("y_%d", i))
	}
	return inputs, targets, nil
}
