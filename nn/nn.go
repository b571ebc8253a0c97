// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// Module interface defines what optimizers and drivers need from a network.
type Module = nn.Module

// Parameter represents a trainable parameter in a neural network.
type Parameter = nn.Parameter

// NewParameter creates a new parameter with the given name and value.
func NewParameter(name string, value *matrix.Matrix) *Parameter {
	return nn.NewParameter(name, value)
}

// Networks

// Config holds construction options for a FullyConnectedNetwork.
type Config = nn.Config

// FullyConnectedNetwork is a linear stack of dense sigmoid layers.
type FullyConnectedNetwork = nn.FullyConnectedNetwork

// NewFullyConnectedNetwork creates an empty, uncompiled network.
//
// Example:
//
//	net := nn.NewFullyConnectedNetwork(nn.Config{Seed: 42})
func NewFullyConnectedNetwork(cfg Config) *FullyConnectedNetwork {
	return nn.NewFullyConnectedNetwork(cfg)
}

// Loss Functions

// MSELoss computes mean((predictions - targets)²).
func MSELoss(predictions, targets *matrix.Matrix) (float32, error) {
	return nn.MSELoss(predictions, targets)
}

// Errors
var (
	// ErrInvalidTopology is returned by Compile with fewer than two layers.
	ErrInvalidTopology = nn.ErrInvalidTopology

	// ErrPrecondition is returned when an operation is called in the wrong state.
	ErrPrecondition = nn.ErrPrecondition
)
