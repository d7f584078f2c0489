// Command perceptron trains a single linear threshold unit with the
// classical perceptron rule on a separable 2D point set and reports the
// separating line after every epoch.
package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"neuroprimer/internal/dataset"
	"neuroprimer/internal/perceptron"
)

const (
	seed         = 42
	numPoints    = 200
	numEpochs    = 25
	learningRate = 0.1
)

func main() {
	fmt.Println("=== Perceptron Rule Example ===")

	// Points labeled by the line y = x + 0.5, so a separating line exists.
	rng := rand.New(rand.NewSource(seed))
	data := dataset.HalfPlane(numPoints, 1, 0.5, 5, rng)
	samples := data.Samples()

	p := perceptron.New(2, rng)
	fmt.Printf("Initial weights: [%.4f %.4f], bias: %.4f\n",
		p.Weights[0], p.Weights[1], p.Bias)
	fmt.Printf("Training on %d points for %d epochs (lr=%.2f)\n\n",
		numPoints, numEpochs, learningRate)

	results, err := p.Train(samples, learningRate, numEpochs)
	if err != nil {
		fmt.Printf("Training failed: %v\n", err)
		os.Exit(1)
	}

	for _, r := range results {
		if errors.Is(r.Err, perceptron.ErrZeroDivisor) {
			fmt.Printf("Epoch %2d: boundary undefined (vertical separator)\n", r.Epoch)
			continue
		}
		fmt.Printf("Epoch %2d: y = %.4f*x + %.4f\n", r.Epoch, r.Line.Slope, r.Line.Intercept)
	}

	correct := 0
	for _, s := range samples {
		predicted, err := p.Predict(s.Point)
		if err != nil {
			fmt.Printf("Prediction failed: %v\n", err)
			os.Exit(1)
		}
		if predicted == s.Label {
			correct++
		}
	}

	fmt.Printf("\nFinal weights: [%.4f %.4f], bias: %.4f\n",
		p.Weights[0], p.Weights[1], p.Bias)
	fmt.Printf("Training accuracy: %d/%d (%.1f%%)\n",
		correct, len(samples), 100*float64(correct)/float64(len(samples)))
}
