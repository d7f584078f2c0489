package net

import (
	"fmt"

	"neuroprimer/internal/layer"
	"neuroprimer/internal/loss"
	"neuroprimer/internal/opt"
)

// Sequential is a high-level wrapper around Network with a Keras-like API.
type Sequential struct {
	*Network
}

// NewSequential creates a new Sequential model.
func NewSequential(layers ...layer.Layer) *Sequential {
	return &Sequential{
		Network: &Network{layers: layers},
	}
}

// Compile configures the model for training.
func (s *Sequential) Compile(optimizer opt.Optimizer, lossFn loss.Loss) {
	s.opt = optimizer
	s.loss = lossFn
}

// Predict performs a forward pass and returns the output.
func (s *Sequential) Predict(x []float64) []float64 {
	return s.Forward(x)
}

// Fit trains the model sample-by-sample for the given number of epochs,
// invoking callbacks around each epoch. Returns the last epoch's average
// loss. Training stops early when a callback requests it.
func (s *Sequential) Fit(x, y [][]float64, epochs int, callbacks ...Callback) float64 {
	for _, cb := range callbacks {
		cb.OnTrainBegin(s.Network)
	}

	var avgLoss float64
	for epoch := 1; epoch <= epochs; epoch++ {
		for _, cb := range callbacks {
			cb.OnEpochBegin(epoch, s.Network)
		}

		var totalLoss float64
		for i := range x {
			totalLoss += s.Train(x[i], y[i])
		}
		avgLoss = totalLoss / float64(len(x))

		for _, cb := range callbacks {
			cb.OnEpochEnd(epoch, avgLoss, s.Network)
		}

		stop := false
		for _, cb := range callbacks {
			if st, ok := cb.(stopper); ok && st.ShouldStop() {
				stop = true
			}
		}
		if stop {
			break
		}
	}

	for _, cb := range callbacks {
		cb.OnTrainEnd(s.Network)
	}
	return avgLoss
}

// Summary prints a summary of the network architecture.
func (s *Sequential) Summary() {
	fmt.Println("Model: Sequential")
	fmt.Printf("%-20s %-15s %-10s\n", "Layer (type)", "Output Shape", "Param #")

	totalParams := 0
	for i, l := range s.layers {
		name := fmt.Sprintf("%T_%d", l, i)
		outShape := "?"
		if d, ok := l.(*layer.Dense); ok {
			outShape = fmt.Sprintf("(%d)", d.OutSize())
		}
		params := len(l.Params())
		totalParams += params
		fmt.Printf("%-20s %-15s %-10d\n", name, outShape, params)
	}
	fmt.Printf("Total params: %d\n", totalParams)
}
