// Package opt provides optimization algorithms.
package opt

// Optimizer updates network parameters based on gradients.
type Optimizer interface {
	// Step computes updated parameters: params - lr * gradients
	// Returns a new slice with updated values
	Step(params, gradients []float64) []float64

	// StepInPlace updates params in-place: params = params - lr * gradients
	StepInPlace(params, gradients []float64)

	// LR returns the current learning rate.
	LR() float64

	// SetLR replaces the learning rate. Used by schedulers.
	SetLR(lr float64)
}

// SGD (Stochastic Gradient Descent) optimizer.
type SGD struct {
	LearningRate float64
}

// NewSGD creates an SGD optimizer with the given learning rate.
func NewSGD(lr float64) *SGD {
	return &SGD{LearningRate: lr}
}

// Step computes updated parameters: params - lr * gradients
func (s *SGD) Step(params, gradients []float64) []float64 {
	result := make([]float64, len(params))
	for i := range params {
		result[i] = params[i] - s.LearningRate*gradients[i]
	}
	return result
}

// StepInPlace updates params in-place: params = params - lr * gradients
func (s *SGD) StepInPlace(params, gradients []float64) {
	for i := range params {
		params[i] -= s.LearningRate * gradients[i]
	}
}

// LR returns the current learning rate.
func (s *SGD) LR() float64 {
	return s.LearningRate
}

// SetLR replaces the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.LearningRate = lr
}
