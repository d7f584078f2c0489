package net

import (
	"fmt"
	"math"

	"neuroprimer/internal/opt"
)

// Callback observes the training loop.
type Callback interface {
	OnTrainBegin(n *Network)
	OnTrainEnd(n *Network)
	OnEpochBegin(epoch int, n *Network)
	OnEpochEnd(epoch int, loss float64, n *Network)
}

// BaseCallback provides default empty implementations for Callback.
type BaseCallback struct{}

func (BaseCallback) OnTrainBegin(n *Network) {}
func (BaseCallback) OnTrainEnd(n *Network)   {}

func (BaseCallback) OnEpochBegin(epoch int, n *Network)             {}
func (BaseCallback) OnEpochEnd(epoch int, loss float64, n *Network) {}

// stopper is implemented by callbacks that can halt training early.
type stopper interface {
	ShouldStop() bool
}

// Logger logs training progress to the console.
type Logger struct {
	BaseCallback
	Interval int
}

func (c Logger) OnEpochEnd(epoch int, loss float64, n *Network) {
	if c.Interval > 0 && epoch%c.Interval == 0 {
		fmt.Printf("Epoch %d: loss = %.6f\n", epoch, loss)
	}
}

// EarlyStopping halts training when the loss has stopped improving.
type EarlyStopping struct {
	BaseCallback
	Patience  int
	Threshold float64

	bestLoss     float64
	numBadEpochs int
	stopped      bool
}

// NewEarlyStopping creates an EarlyStopping callback. Training stops after
// patience consecutive epochs without an improvement larger than threshold.
func NewEarlyStopping(patience int, threshold float64) *EarlyStopping {
	return &EarlyStopping{
		Patience:  patience,
		Threshold: threshold,
		bestLoss:  math.MaxFloat64,
	}
}

func (c *EarlyStopping) OnEpochEnd(epoch int, loss float64, n *Network) {
	if loss < c.bestLoss-c.Threshold {
		c.bestLoss = loss
		c.numBadEpochs = 0
	} else {
		c.numBadEpochs++
	}

	if c.numBadEpochs >= c.Patience {
		fmt.Printf("Early stopping at epoch %d: loss %.6f did not improve for %d epochs\n",
			epoch, loss, c.Patience)
		c.stopped = true
	}
}

// ShouldStop reports whether the patience budget is exhausted.
func (c *EarlyStopping) ShouldStop() bool {
	return c.stopped
}

// SchedulerCallback advances a learning rate schedule after each epoch.
type SchedulerCallback struct {
	BaseCallback
	scheduler opt.Scheduler
}

// NewSchedulerCallback wraps a scheduler as a training callback.
func NewSchedulerCallback(scheduler opt.Scheduler) *SchedulerCallback {
	return &SchedulerCallback{scheduler: scheduler}
}

func (c *SchedulerCallback) OnEpochEnd(epoch int, loss float64, n *Network) {
	c.scheduler.Step()
}

// ModelCheckpoint saves the network after every epoch that improves on the
// best loss seen so far.
type ModelCheckpoint struct {
	BaseCallback
	Filename string

	bestLoss float64
}

// NewModelCheckpoint creates a ModelCheckpoint callback writing to filename.
func NewModelCheckpoint(filename string) *ModelCheckpoint {
	return &ModelCheckpoint{
		Filename: filename,
		bestLoss: math.MaxFloat64,
	}
}

func (c *ModelCheckpoint) OnEpochEnd(epoch int, loss float64, n *Network) {
	if loss < c.bestLoss {
		c.bestLoss = loss
		if err := n.Save(c.Filename); err != nil {
			fmt.Printf("Error saving checkpoint: %v\n", err)
		}
	}
}
