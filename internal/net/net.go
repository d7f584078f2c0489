// Package net provides core neural network types and the training loop.
// Everything here is strictly sequential: no goroutines, no shared state
// beyond the network's own parameters.
package net

import (
	"neuroprimer/internal/layer"
	"neuroprimer/internal/loss"
	"neuroprimer/internal/opt"
)

// Network is a stack of layers trained against a loss with an optimizer.
type Network struct {
	layers []layer.Layer
	loss   loss.Loss
	opt    opt.Optimizer
}

// New creates a new network from the given layers.
func New(layers []layer.Layer, l loss.Loss, optimizer opt.Optimizer) *Network {
	return &Network{
		layers: layers,
		loss:   l,
		opt:    optimizer,
	}
}

// Forward performs a forward pass through all layers.
func (n *Network) Forward(x []float64) []float64 {
	curr := x
	for i := range n.layers {
		curr = n.layers[i].Forward(curr)
	}
	return curr
}

// Backward performs a backward pass through all layers.
func (n *Network) Backward(grad []float64) []float64 {
	curr := grad
	for i := len(n.layers) - 1; i >= 0; i-- {
		curr = n.layers[i].Backward(curr)
	}
	return curr
}

// Step applies one optimization step to every layer using the gradients
// left by the last Backward call.
func (n *Network) Step() {
	for _, l := range n.layers {
		updated := n.opt.Step(l.Params(), l.Gradients())
		l.SetParams(updated)
	}
}

// Train performs forward, loss, backward and one optimizer step on a
// single sample. Returns the sample's loss before the update.
func (n *Network) Train(x, y []float64) float64 {
	yPred := n.Forward(x)
	l := n.loss.Forward(yPred, y)

	grad := n.loss.Backward(yPred, y)
	n.Backward(grad)
	n.Step()

	return l
}

// TrainBatch runs forward and backward over the whole batch, averages the
// per-sample gradients, and applies a single optimizer step. Samples are
// processed in order.
func (n *Network) TrainBatch(batchX, batchY [][]float64) float64 {
	batchSize := len(batchX)
	if batchSize == 0 {
		return 0
	}

	var totalLoss float64
	accum := make([][]float64, len(n.layers))

	for i := 0; i < batchSize; i++ {
		yPred := n.Forward(batchX[i])
		totalLoss += n.loss.Forward(yPred, batchY[i])

		grad := n.loss.Backward(yPred, batchY[i])
		n.Backward(grad)

		for li, l := range n.layers {
			g := l.Gradients()
			if accum[li] == nil {
				accum[li] = make([]float64, len(g))
			}
			for j := range g {
				accum[li][j] += g[j]
			}
		}
	}

	for li, l := range n.layers {
		for j := range accum[li] {
			accum[li][j] /= float64(batchSize)
		}
		updated := n.opt.Step(l.Params(), accum[li])
		l.SetParams(updated)
	}

	return totalLoss / float64(batchSize)
}

// Evaluate computes the average loss over a dataset without updating
// parameters.
func (n *Network) Evaluate(x, y [][]float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var totalLoss float64
	for i := range x {
		pred := n.Forward(x[i])
		totalLoss += n.loss.Forward(pred, y[i])
	}
	return totalLoss / float64(len(x))
}

// Params returns all network parameters flattened (copy).
func (n *Network) Params() []float64 {
	var params []float64
	for _, l := range n.layers {
		params = append(params, l.Params()...)
	}
	return params
}

// Layers returns the network's layers slice.
func (n *Network) Layers() []layer.Layer {
	return n.layers
}
