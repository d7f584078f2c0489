// Package neuroprimer re-exports the high-level API: the perceptron rule,
// dense layers trained by gradient descent, and the sequential training
// loop.
package neuroprimer

import (
	"math/rand"

	"neuroprimer/internal/activations"
	"neuroprimer/internal/dataset"
	"neuroprimer/internal/layer"
	"neuroprimer/internal/loss"
	"neuroprimer/internal/net"
	"neuroprimer/internal/opt"
	"neuroprimer/internal/perceptron"
)

// Re-export common types for easier access
type (
	Model        = net.Sequential
	Layer        = layer.Layer
	Optimizer    = opt.Optimizer
	Loss         = loss.Loss
	Callback     = net.Callback
	Perceptron   = perceptron.Perceptron
	Sample       = perceptron.Sample
	BoundaryLine = perceptron.BoundaryLine
	EpochResult  = perceptron.EpochResult
	Dataset      = dataset.Dataset
)

// Perceptron errors
var (
	ErrShapeMismatch = perceptron.ErrShapeMismatch
	ErrZeroDivisor   = perceptron.ErrZeroDivisor
)

// Model creation
func NewSequential(layers ...Layer) *Model {
	return net.NewSequential(layers...)
}

// Perceptron creation
func NewPerceptron(dim int, rng *rand.Rand) *Perceptron {
	return perceptron.New(dim, rng)
}

func NewPerceptronFromWeights(weights []float64, bias float64) *Perceptron {
	return perceptron.NewFromWeights(weights, bias)
}

// Activations
var (
	Step    = activations.Step{}
	ReLU    = activations.ReLU{}
	Sigmoid = activations.Sigmoid{}
	Tanh    = activations.Tanh{}
	Linear  = activations.Linear{}
)

// Layers
func Dense(in, out int, act activations.Activation, rng *rand.Rand) Layer {
	return layer.NewDense(in, out, act, rng)
}

// Optimizers
func SGD(lr float64) Optimizer {
	return opt.NewSGD(lr)
}

func StepLR(optimizer Optimizer, stepSize int, gamma float64) *opt.StepLR {
	return opt.NewStepLR(optimizer, stepSize, gamma)
}

// Losses
var (
	MSE = loss.MSE{}
	BCE = loss.BCE{}
)

// Callbacks
func Logger(interval int) net.Logger {
	return net.Logger{Interval: interval}
}

func EarlyStopping(patience int, threshold float64) *net.EarlyStopping {
	return net.NewEarlyStopping(patience, threshold)
}

func ModelCheckpoint(filename string) *net.ModelCheckpoint {
	return net.NewModelCheckpoint(filename)
}

func SchedulerCallback(scheduler opt.Scheduler) *net.SchedulerCallback {
	return net.NewSchedulerCallback(scheduler)
}

// Datasets
func TwoBlobs(n int, sep, spread float64, rng *rand.Rand) *Dataset {
	return dataset.TwoBlobs(n, sep, spread, rng)
}

func HalfPlane(n int, slope, intercept, bound float64, rng *rand.Rand) *Dataset {
	return dataset.HalfPlane(n, slope, intercept, bound, rng)
}

func LoadCSV(filename string, labelCol int, hasHeader bool) (*Dataset, error) {
	return dataset.LoadCSV(filename, labelCol, hasHeader)
}

// Model persistence
func Load(filename string) (*Model, error) {
	n, err := net.Load(filename)
	if err != nil {
		return nil, err
	}
	return &net.Sequential{Network: n}, nil
}
