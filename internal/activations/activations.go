// Package activations provides scalar activation functions with derivatives.
package activations

import "math"

// Activation is an activation function with derivative.
type Activation interface {
	// Activate computes f(x)
	Activate(x float64) float64

	// Derivative computes f'(x)
	Derivative(x float64) float64
}

// Step is the Heaviside threshold used by the classical perceptron.
// It outputs 1 if the input is >= 0, else 0.
type Step struct{}

// Activate computes 1 if x >= 0, else 0
func (Step) Activate(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return 0
}

// Derivative returns 0. Step units are trained by the perceptron rule,
// not by gradients.
func (Step) Derivative(x float64) float64 {
	return 0
}

// Sigmoid activation function.
type Sigmoid struct{}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Activate computes sigmoid(x)
func (Sigmoid) Activate(x float64) float64 {
	return sigmoid(x)
}

// Derivative computes sigmoid(x) * (1 - sigmoid(x))
func (Sigmoid) Derivative(x float64) float64 {
	s := sigmoid(x)
	return s * (1 - s)
}

// ReLU activation function.
type ReLU struct{}

// Activate computes max(0, x)
func (ReLU) Activate(x float64) float64 {
	if x > 0 {
		return x
	}
	return 0
}

// Derivative returns 1 if x > 0, else 0
func (ReLU) Derivative(x float64) float64 {
	if x > 0 {
		return 1
	}
	return 0
}

// Tanh activation function.
type Tanh struct{}

// Activate computes tanh(x)
func (Tanh) Activate(x float64) float64 {
	return math.Tanh(x)
}

// Derivative computes 1 - tanh(x)^2
func (Tanh) Derivative(x float64) float64 {
	t := math.Tanh(x)
	return 1 - t*t
}

// Linear is the identity activation.
type Linear struct{}

// Activate returns x unchanged
func (Linear) Activate(x float64) float64 {
	return x
}

// Derivative returns 1
func (Linear) Derivative(x float64) float64 {
	return 1
}
