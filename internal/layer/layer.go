// Package layer provides neural network layer implementations.
package layer

import (
	"math"
	"math/rand"

	"neuroprimer/internal/activations"
)

// Layer is a neural network layer.
type Layer interface {
	Forward(x []float64) []float64
	Backward(grad []float64) []float64
	Params() []float64
	SetParams([]float64)
	Gradients() []float64
}

// Dense is a fully connected layer. Weights are stored row-major in one
// contiguous slice: the weight for output o, input i sits at
// weights[o*in + i]. Buffers are pre-allocated so Forward and Backward do
// not allocate.
type Dense struct {
	weights []float64
	biases  []float64
	act     activations.Activation
	inSize  int
	outSize int

	inputBuf  []float64
	preActBuf []float64
	outputBuf []float64
	gradWBuf  []float64
	gradBBuf  []float64
	gradInBuf []float64
	dzBuf     []float64
}

// NewDense creates a dense layer with Xavier-initialized weights drawn
// from the given source of randomness. The generator is explicit so runs
// are reproducible from a seed.
func NewDense(in, out int, act activations.Activation, rng *rand.Rand) *Dense {
	weights := make([]float64, out*in)
	biases := make([]float64, out)

	scale := math.Sqrt(2.0 / (float64(in) + float64(out)))
	for i := range weights {
		weights[i] = rng.Float64()*2*scale - scale
	}
	for i := range biases {
		biases[i] = rng.Float64()*0.2 - 0.1
	}

	return &Dense{
		weights:   weights,
		biases:    biases,
		act:       act,
		inSize:    in,
		outSize:   out,
		inputBuf:  make([]float64, in),
		preActBuf: make([]float64, out),
		outputBuf: make([]float64, out),
		gradWBuf:  make([]float64, out*in),
		gradBBuf:  make([]float64, out),
		gradInBuf: make([]float64, in),
		dzBuf:     make([]float64, out),
	}
}

// Forward computes act(Wx + b). The input is copied into an internal
// buffer because Backward needs it.
func (d *Dense) Forward(x []float64) []float64 {
	copy(d.inputBuf, x)

	for o := 0; o < d.outSize; o++ {
		sum := d.biases[o]
		wBase := o * d.inSize
		for i := 0; i < d.inSize; i++ {
			sum += d.weights[wBase+i] * d.inputBuf[i]
		}
		d.preActBuf[o] = sum
		d.outputBuf[o] = d.act.Activate(sum)
	}

	return d.outputBuf[:d.outSize]
}

// Backward computes the gradients for weights, biases and input from the
// gradient w.r.t. this layer's output, using the chain rule:
//
//	dz[o]      = grad[o] * act'(z[o])
//	dW[o][i]   = dz[o] * x[i]
//	db[o]      = dz[o]
//	dx[i]      = sum_o dz[o] * W[o][i]
func (d *Dense) Backward(grad []float64) []float64 {
	for o := 0; o < d.outSize; o++ {
		d.dzBuf[o] = grad[o] * d.act.Derivative(d.preActBuf[o])
		d.gradBBuf[o] = d.dzBuf[o]
	}

	for o := 0; o < d.outSize; o++ {
		wBase := o * d.inSize
		for i := 0; i < d.inSize; i++ {
			d.gradWBuf[wBase+i] = d.dzBuf[o] * d.inputBuf[i]
		}
	}

	for i := 0; i < d.inSize; i++ {
		sum := 0.0
		for o := 0; o < d.outSize; o++ {
			sum += d.dzBuf[o] * d.weights[o*d.inSize+i]
		}
		d.gradInBuf[i] = sum
	}

	return d.gradInBuf[:d.inSize]
}

// Params returns weights followed by biases as one flattened copy.
func (d *Dense) Params() []float64 {
	params := make([]float64, 0, len(d.weights)+len(d.biases))
	params = append(params, d.weights...)
	params = append(params, d.biases...)
	return params
}

// SetParams updates weights and biases from a flattened slice.
func (d *Dense) SetParams(params []float64) {
	copy(d.weights, params[:len(d.weights)])
	copy(d.biases, params[len(d.weights):])
}

// Gradients returns weight gradients followed by bias gradients as one
// flattened copy. Valid after Backward.
func (d *Dense) Gradients() []float64 {
	gradients := make([]float64, 0, len(d.gradWBuf)+len(d.gradBBuf))
	gradients = append(gradients, d.gradWBuf...)
	gradients = append(gradients, d.gradBBuf...)
	return gradients
}

// InSize returns the input size of the layer.
func (d *Dense) InSize() int {
	return d.inSize
}

// OutSize returns the output size of the layer.
func (d *Dense) OutSize() int {
	return d.outSize
}

// Activation returns the activation function used by this layer.
func (d *Dense) Activation() activations.Activation {
	return d.act
}
