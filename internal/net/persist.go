package net

import (
	"encoding/gob"
	"fmt"
	"io"
	"math/rand"
	"os"

	"neuroprimer/internal/activations"
	"neuroprimer/internal/layer"
	"neuroprimer/internal/loss"
	"neuroprimer/internal/opt"
)

// layerConfig holds what is needed to reconstruct a Dense layer.
type layerConfig struct {
	In         int
	Out        int
	Activation string
	Params     []float64
}

// netConfig is the gob representation of a network.
type netConfig struct {
	Layers       []layerConfig
	Loss         string
	LearningRate float64
}

// Save writes the network to a file using gob encoding. Only Dense layers
// are supported.
func (n *Network) Save(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	return n.Encode(file)
}

// Encode writes the network to an io.Writer using gob encoding.
func (n *Network) Encode(w io.Writer) error {
	cfg := netConfig{
		Loss:         lossName(n.loss),
		LearningRate: n.opt.LR(),
	}

	for _, l := range n.layers {
		dense, ok := l.(*layer.Dense)
		if !ok {
			return fmt.Errorf("unsupported layer type %T", l)
		}
		cfg.Layers = append(cfg.Layers, layerConfig{
			In:         dense.InSize(),
			Out:        dense.OutSize(),
			Activation: activationName(dense.Activation()),
			Params:     dense.Params(),
		})
	}

	if err := gob.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode network: %w", err)
	}
	return nil
}

// Load reads a network from a file written by Save.
func Load(filename string) (*Network, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}

// Decode reads a network from an io.Reader written by Encode.
func Decode(r io.Reader) (*Network, error) {
	var cfg netConfig
	if err := gob.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode network: %w", err)
	}

	layers := make([]layer.Layer, 0, len(cfg.Layers))
	for i, lc := range cfg.Layers {
		act, err := activationByName(lc.Activation)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		// Initial values do not matter, SetParams overwrites them.
		dense := layer.NewDense(lc.In, lc.Out, act, rand.New(rand.NewSource(0)))
		dense.SetParams(lc.Params)
		layers = append(layers, dense)
	}

	lossFn, err := lossByName(cfg.Loss)
	if err != nil {
		return nil, err
	}

	return New(layers, lossFn, opt.NewSGD(cfg.LearningRate)), nil
}

func activationName(act activations.Activation) string {
	switch act.(type) {
	case activations.Step:
		return "Step"
	case activations.Sigmoid:
		return "Sigmoid"
	case activations.ReLU:
		return "ReLU"
	case activations.Tanh:
		return "Tanh"
	case activations.Linear:
		return "Linear"
	default:
		return "Linear"
	}
}

func activationByName(name string) (activations.Activation, error) {
	switch name {
	case "Step":
		return activations.Step{}, nil
	case "Sigmoid":
		return activations.Sigmoid{}, nil
	case "ReLU":
		return activations.ReLU{}, nil
	case "Tanh":
		return activations.Tanh{}, nil
	case "Linear":
		return activations.Linear{}, nil
	default:
		return nil, fmt.Errorf("unknown activation %q", name)
	}
}

func lossName(l loss.Loss) string {
	switch l.(type) {
	case loss.BCE:
		return "BCE"
	default:
		return "MSE"
	}
}

func lossByName(name string) (loss.Loss, error) {
	switch name {
	case "BCE":
		return loss.BCE{}, nil
	case "MSE":
		return loss.MSE{}, nil
	default:
		return nil, fmt.Errorf("unknown loss %q", name)
	}
}
