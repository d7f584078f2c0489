package opt

// Scheduler adjusts an optimizer's learning rate over epochs.
type Scheduler interface {
	// Step advances the schedule by one epoch.
	Step()

	// LR returns the learning rate currently in effect.
	LR() float64
}

// StepLR decays the learning rate by gamma every stepSize epochs.
type StepLR struct {
	optimizer Optimizer
	stepSize  int
	gamma     float64
	lastEpoch int
}

// NewStepLR creates a StepLR schedule over the given optimizer.
func NewStepLR(optimizer Optimizer, stepSize int, gamma float64) *StepLR {
	return &StepLR{
		optimizer: optimizer,
		stepSize:  stepSize,
		gamma:     gamma,
	}
}

// Step advances the schedule by one epoch, decaying the optimizer's
// learning rate on every stepSize-th call.
func (s *StepLR) Step() {
	s.lastEpoch++
	if s.stepSize > 0 && s.lastEpoch%s.stepSize == 0 {
		s.optimizer.SetLR(s.optimizer.LR() * s.gamma)
	}
}

// LR returns the learning rate currently in effect.
func (s *StepLR) LR() float64 {
	return s.optimizer.LR()
}
