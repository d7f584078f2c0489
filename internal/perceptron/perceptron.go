// Package perceptron implements the classical perceptron learning rule:
// a linear binary classifier updated by an error-driven rule rather than
// by general gradient descent.
package perceptron

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// ErrShapeMismatch is returned when a point and the weight vector have
// different dimensionality.
var ErrShapeMismatch = errors.New("point and weight dimensions differ")

// ErrZeroDivisor is returned when the boundary line is undefined because
// the second weight component is zero.
var ErrZeroDivisor = errors.New("boundary line undefined: second weight component is zero")

// Point is a fixed-length feature vector.
type Point = []float64

// Sample is a labeled point. Label is binary: 0 or 1.
type Sample struct {
	Point Point
	Label float64
}

// Dataset is an ordered sequence of samples. Order is preserved and
// iterated sequentially each epoch.
type Dataset []Sample

// Perceptron is a single linear threshold unit. Weights and Bias are owned
// by the perceptron and mutated in place across training steps.
type Perceptron struct {
	Weights []float64
	Bias    float64
}

// New creates a perceptron with weights and bias drawn uniformly from
// [-1, 1) using the given source of randomness. The generator is explicit
// so runs are reproducible from a seed.
func New(dim int, rng *rand.Rand) *Perceptron {
	weights := make([]float64, dim)
	for i := range weights {
		weights[i] = rng.Float64()*2 - 1
	}
	return &Perceptron{
		Weights: weights,
		Bias:    rng.Float64()*2 - 1,
	}
}

// NewFromWeights creates a perceptron with explicit initial values.
// The weights slice is copied.
func NewFromWeights(weights []float64, bias float64) *Perceptron {
	w := make([]float64, len(weights))
	copy(w, weights)
	return &Perceptron{Weights: w, Bias: bias}
}

// Predict computes dot(point, weights) + bias through the step function:
// 1 if the sum is >= 0, else 0. It has no side effects and fails only when
// the point's dimensionality does not match the weights.
func (p *Perceptron) Predict(point Point) (float64, error) {
	if len(point) != len(p.Weights) {
		return 0, fmt.Errorf("%w: point has %d, weights have %d",
			ErrShapeMismatch, len(point), len(p.Weights))
	}
	sum := floats.Dot(point, p.Weights) + p.Bias
	if sum >= 0 {
		return 1, nil
	}
	return 0, nil
}

// Step performs one full in-order pass over the dataset, applying the
// perceptron rule to every misclassified sample:
//
//	w[i] += (label - predicted) * lr * point[i]
//	bias += (label - predicted) * lr
//
// label - predicted is 1 for a false negative, -1 for a false positive and
// 0 when the prediction is already correct. The result depends only on the
// dataset order, the current weights and bias, and the learning rate.
func (p *Perceptron) Step(data Dataset, lr float64) error {
	for _, s := range data {
		predicted, err := p.Predict(s.Point)
		if err != nil {
			return err
		}
		diff := s.Label - predicted
		if diff == 0 {
			continue
		}
		floats.AddScaled(p.Weights, diff*lr, s.Point)
		p.Bias += diff * lr
	}
	return nil
}
