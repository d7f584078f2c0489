// Command xor trains a small multi-layer network on XOR, a problem a
// single-layer perceptron cannot solve, then round-trips the trained model
// through disk.
package main

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"neuroprimer/internal/activations"
	"neuroprimer/internal/layer"
	"neuroprimer/internal/loss"
	"neuroprimer/internal/net"
	"neuroprimer/internal/opt"
)

func main() {
	fmt.Println("=== XOR Training Example ===")

	rng := rand.New(rand.NewSource(42))

	// 2 inputs -> 3 hidden -> 1 output
	network := net.New(
		[]layer.Layer{
			layer.NewDense(2, 3, activations.Tanh{}, rng),
			layer.NewDense(3, 1, activations.Sigmoid{}, rng),
		},
		loss.MSE{},
		opt.NewSGD(0.5),
	)

	trainX := [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	trainY := [][]float64{{0}, {1}, {1}, {0}}

	for epoch := 0; epoch < 5000; epoch++ {
		totalLoss := 0.0
		for i := range trainX {
			totalLoss += network.Train(trainX[i], trainY[i])
		}
		if epoch%500 == 0 {
			fmt.Printf("Epoch %d, Loss: %.6f\n", epoch, totalLoss/float64(len(trainX)))
		}
	}

	fmt.Println("\nTesting trained network:")
	for i := range trainX {
		pred := network.Forward(trainX[i])
		fmt.Printf("Input: %v, Predicted: %.4f, Target: %v\n",
			trainX[i], pred[0], trainY[i][0])
	}

	fmt.Println("\nSaving network to disk...")
	if err := network.Save("xor_network.bin"); err != nil {
		fmt.Printf("Error saving network: %v\n", err)
		os.Exit(1)
	}

	loaded, err := net.Load("xor_network.bin")
	if err != nil {
		fmt.Printf("Error loading network: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Verifying loaded network:")
	allMatch := true
	for i := range trainX {
		original := network.Forward(trainX[i])
		reloaded := loaded.Forward(trainX[i])
		if math.Abs(original[0]-reloaded[0]) > 1e-9 {
			allMatch = false
			fmt.Printf("Input: %v, Original: %.6f, Loaded: %.6f [MISMATCH]\n",
				trainX[i], original[0], reloaded[0])
		}
	}

	if allMatch {
		fmt.Println("All predictions match between original and loaded network.")
	} else {
		os.Exit(1)
	}
}
