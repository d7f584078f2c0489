// Command logistic trains the gradient-descent counterpart of the
// perceptron demo: a single sigmoid unit with binary cross entropy on the
// same kind of 2D two-class data.
package main

import (
	"fmt"
	"math/rand"

	"neuroprimer/internal/activations"
	"neuroprimer/internal/dataset"
	"neuroprimer/internal/layer"
	"neuroprimer/internal/loss"
	"neuroprimer/internal/net"
	"neuroprimer/internal/opt"
)

const (
	seed      = 7
	numPoints = 200
	numEpochs = 100
)

func main() {
	fmt.Println("=== Logistic Regression Example ===")

	rng := rand.New(rand.NewSource(seed))
	data := dataset.TwoBlobs(numPoints, 2, 0.8, rng)
	data.ZScore()

	x := data.Points
	y := make([][]float64, data.Len())
	for i, label := range data.Labels {
		y[i] = []float64{label}
	}

	model := net.NewSequential(
		layer.NewDense(2, 1, activations.Sigmoid{}, rng),
	)

	sgd := opt.NewSGD(0.5)
	model.Compile(sgd, loss.BCE{})
	model.Summary()

	sched := opt.NewStepLR(sgd, 25, 0.5)
	finalLoss := model.Fit(x, y, numEpochs,
		net.Logger{Interval: 10},
		net.NewSchedulerCallback(sched),
	)

	correct := 0
	for i := range x {
		pred := model.Predict(x[i])
		predicted := 0.0
		if pred[0] >= 0.5 {
			predicted = 1
		}
		if predicted == data.Labels[i] {
			correct++
		}
	}

	fmt.Printf("\nFinal loss: %.6f (lr decayed to %.4f)\n", finalLoss, sgd.LR())
	fmt.Printf("Training accuracy: %d/%d (%.1f%%)\n",
		correct, len(x), 100*float64(correct)/float64(len(x)))
}
