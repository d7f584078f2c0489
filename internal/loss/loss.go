// Package loss provides loss functions with gradients.
package loss

import "math"

// Loss is a loss function with derivative.
type Loss interface {
	// Forward computes the loss between predicted and true values.
	Forward(yPred, yTrue []float64) float64

	// Backward computes the gradient of the loss w.r.t. prediction.
	Backward(yPred, yTrue []float64) []float64
}

// MSE (Mean Squared Error) loss.
type MSE struct{}

// Forward computes mean squared error: (1/n) * sum((y_pred - y_true)^2)
func (MSE) Forward(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("MSE: prediction and target must have same length")
	}

	var sum float64
	for i := 0; i < n; i++ {
		diff := yPred[i] - yTrue[i]
		sum += diff * diff
	}
	return sum / float64(n)
}

// Backward computes gradient: dL/dy_pred = (2/n) * (y_pred - y_true)
func (MSE) Backward(yPred, yTrue []float64) []float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("MSE: prediction and target must have same length")
	}

	grad := make([]float64, n)
	factor := 2.0 / float64(n)
	for i := 0; i < n; i++ {
		grad[i] = factor * (yPred[i] - yTrue[i])
	}
	return grad
}

// BCE (Binary Cross Entropy) loss. Expects predictions in (0, 1), as
// produced by a sigmoid output.
type BCE struct{}

// eps keeps log and the gradient denominator away from 0.
const eps = 1e-10

func clip(x float64) float64 {
	if x < eps {
		return eps
	}
	if x > 1-eps {
		return 1 - eps
	}
	return x
}

// Forward computes -(1/n) * sum(y*log(p) + (1-y)*log(1-p))
func (BCE) Forward(yPred, yTrue []float64) float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("BCE: prediction and target must have same length")
	}

	var sum float64
	for i := 0; i < n; i++ {
		p := clip(yPred[i])
		sum -= yTrue[i]*math.Log(p) + (1-yTrue[i])*math.Log(1-p)
	}
	return sum / float64(n)
}

// Backward computes gradient: dL/dp = (1/n) * (p - y) / (p * (1 - p))
func (BCE) Backward(yPred, yTrue []float64) []float64 {
	n := len(yPred)
	if n != len(yTrue) {
		panic("BCE: prediction and target must have same length")
	}

	grad := make([]float64, n)
	for i := 0; i < n; i++ {
		p := clip(yPred[i])
		grad[i] = (p - yTrue[i]) / (p * (1 - p) * float64(n))
	}
	return grad
}
