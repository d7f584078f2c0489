package perceptron

// BoundaryLine is the 2D separating line w0*x + w1*y + b = 0 expressed as
// slope and intercept. It is re-derived from the current weights and bias
// after each epoch for reporting only; it has no effect on training.
type BoundaryLine struct {
	Slope     float64
	Intercept float64
}

// EpochResult is a snapshot of one epoch's derived boundary line.
// Err is ErrZeroDivisor when the line could not be derived for that epoch;
// training itself is unaffected.
type EpochResult struct {
	Epoch int
	Line  BoundaryLine
	Err   error
}

// Boundary derives the separating line from the current weights and bias:
// slope = -w0/w1, intercept = -bias/w1. It fails with ErrZeroDivisor when
// the second weight component is exactly zero.
func (p *Perceptron) Boundary() (BoundaryLine, error) {
	if len(p.Weights) != 2 {
		return BoundaryLine{}, ErrShapeMismatch
	}
	if p.Weights[1] == 0 {
		return BoundaryLine{}, ErrZeroDivisor
	}
	return BoundaryLine{
		Slope:     -p.Weights[0] / p.Weights[1],
		Intercept: -p.Bias / p.Weights[1],
	}, nil
}

// Epochs is a one-shot iterator over training epochs. Each call to Next
// runs exactly one full pass over the dataset and yields that epoch's
// boundary line snapshot. The sequence is finite and non-restartable.
type Epochs struct {
	p         *Perceptron
	data      Dataset
	lr        float64
	epoch     int
	remaining int
	err       error
}

// Epochs prepares numEpochs sequential training passes over data.
// Nothing runs until Next is called, so a zero-epoch run never observes
// the initial weights.
func (p *Perceptron) Epochs(data Dataset, lr float64, numEpochs int) *Epochs {
	return &Epochs{p: p, data: data, lr: lr, remaining: numEpochs}
}

// Next runs the next epoch and returns its result. It returns ok=false
// once all epochs have run or after a structural error; per-epoch line
// derivation failures are reported in the result and do not stop
// iteration.
func (e *Epochs) Next() (EpochResult, bool) {
	if e.err != nil || e.remaining <= 0 {
		return EpochResult{}, false
	}
	if err := e.p.Step(e.data, e.lr); err != nil {
		e.err = err
		return EpochResult{}, false
	}
	e.remaining--
	e.epoch++
	line, err := e.p.Boundary()
	return EpochResult{Epoch: e.epoch, Line: line, Err: err}, true
}

// Err returns the structural error that stopped iteration early, if any.
// Per-epoch boundary derivation failures are not structural and are never
// reported here.
func (e *Epochs) Err() error {
	return e.err
}

// Train runs numEpochs passes over data and collects one result per
// completed epoch. A dimensionality mismatch aborts training and is
// returned alongside the epochs that did complete.
func (p *Perceptron) Train(data Dataset, lr float64, numEpochs int) ([]EpochResult, error) {
	results := make([]EpochResult, 0, numEpochs)
	it := p.Epochs(data, lr, numEpochs)
	for {
		r, ok := it.Next()
		if !ok {
			break
		}
		results = append(results, r)
	}
	return results, it.Err()
}

// Lines extracts the boundary lines of the epochs whose derivation
// succeeded, preserving epoch order.
func Lines(results []EpochResult) []BoundaryLine {
	lines := make([]BoundaryLine, 0, len(results))
	for _, r := range results {
		if r.Err == nil {
			lines = append(lines, r.Line)
		}
	}
	return lines
}
