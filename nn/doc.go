// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a fully-connected feed-forward network.
//
// # Overview
//
// This package contains:
//   - FullyConnectedNetwork: dense layers with sigmoid activations
//   - Parameter: named weight/bias matrix with gradient
//   - MSELoss: mean squared error
//   - Module: interface consumed by optimizers
//
// # Basic Usage
//
//	net := nn.NewFullyConnectedNetwork(nn.Config{Seed: 42})
//	for _, width := range []int{2, 3, 1} {
//	    if err := net.AddLayer(width); err != nil {
//	        log.Fatal(err)
//	    }
//	}
//	if err := net.Compile(); err != nil {
//	    log.Fatal(err)
//	}
//
//	// Forward pass
//	output, err := net.ForwardPass(input)
//
//	// One step of gradient descent
//	err = net.TrainStep(input, target, 0.1)
//
// # Lifecycle
//
// AddLayer is only valid before Compile; ForwardPass, Backward and TrainStep
// only after it. Violations return ErrPrecondition. Compile with fewer than
// two layers returns ErrInvalidTopology. Compiling twice is a logged no-op.
//
// # Parameter Management
//
// Access parameters for optimization:
//
//	for _, param := range net.Parameters() {
//	    fmt.Println(param.Name(), param.Value().Rows(), param.Value().Cols())
//	}
package nn
