// Package perceptron provides unit tests for the perceptron learning rule.
package perceptron

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

const tol = 1e-12

// TestPredictStepThreshold tests that the step function thresholds at zero,
// with the boundary value itself classified as 1.
func TestPredictStepThreshold(t *testing.T) {
	p := NewFromWeights([]float64{1, 1}, 0)

	cases := []struct {
		point Point
		want  float64
	}{
		{Point{1, 1}, 1},
		{Point{-1, -1}, 0},
		{Point{0, 0}, 1}, // sum is exactly zero
		{Point{0.5, -0.5}, 1},
		{Point{-2, 1.9}, 0},
	}

	for _, c := range cases {
		got, err := p.Predict(c.point)
		if err != nil {
			t.Fatalf("Predict(%v) returned error: %v", c.point, err)
		}
		if got != c.want {
			t.Errorf("Predict(%v) = %v, want %v", c.point, got, c.want)
		}
	}
}

// TestPredictShapeMismatch tests that a point of the wrong dimensionality
// fails with ErrShapeMismatch.
func TestPredictShapeMismatch(t *testing.T) {
	p := NewFromWeights([]float64{0.5, -0.5}, 0.1)

	_, err := p.Predict(Point{1, 2, 3})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Predict with 3D point = %v, want ErrShapeMismatch", err)
	}

	_, err = p.Predict(Point{1})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Predict with 1D point = %v, want ErrShapeMismatch", err)
	}
}

// TestStepFixedPoint tests that a dataset the perceptron already classifies
// correctly leaves weights and bias unchanged.
func TestStepFixedPoint(t *testing.T) {
	p := NewFromWeights([]float64{1, 0}, 0)

	// x >= 0 labeled 1, x < 0 labeled 0: consistent with the weights.
	data := Dataset{
		{Point{2, 5}, 1},
		{Point{-3, 1}, 0},
		{Point{0, -7}, 1},
		{Point{-0.5, 0.5}, 0},
	}

	if err := p.Step(data, 0.1); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}

	if p.Weights[0] != 1 || p.Weights[1] != 0 || p.Bias != 0 {
		t.Errorf("Step changed a fixed point: weights=%v bias=%v", p.Weights, p.Bias)
	}
}

// TestStepFalseNegative tests that a single sample with label=1 and
// prediction 0 increases weights by point*lr and bias by lr.
func TestStepFalseNegative(t *testing.T) {
	p := NewFromWeights([]float64{-1, -1}, -1)
	data := Dataset{{Point{0.5, 0.25}, 1}} // predicts 0

	if err := p.Step(data, 0.1); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}

	wantW := []float64{-1 + 0.5*0.1, -1 + 0.25*0.1}
	for i := range wantW {
		if math.Abs(p.Weights[i]-wantW[i]) > tol {
			t.Errorf("weights[%d] = %v, want %v", i, p.Weights[i], wantW[i])
		}
	}
	if math.Abs(p.Bias-(-1+0.1)) > tol {
		t.Errorf("bias = %v, want %v", p.Bias, -1+0.1)
	}
}

// TestStepFalsePositive tests the symmetric decrease for label=0 with
// prediction 1.
func TestStepFalsePositive(t *testing.T) {
	p := NewFromWeights([]float64{1, 1}, 1)
	data := Dataset{{Point{0.5, 0.25}, 0}} // predicts 1

	if err := p.Step(data, 0.1); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}

	wantW := []float64{1 - 0.5*0.1, 1 - 0.25*0.1}
	for i := range wantW {
		if math.Abs(p.Weights[i]-wantW[i]) > tol {
			t.Errorf("weights[%d] = %v, want %v", i, p.Weights[i], wantW[i])
		}
	}
	if math.Abs(p.Bias-(1-0.1)) > tol {
		t.Errorf("bias = %v, want %v", p.Bias, 1-0.1)
	}
}

// TestStepConcreteScenario tests the two-sample walkthrough: the first
// sample is already correct, the second is a false positive.
func TestStepConcreteScenario(t *testing.T) {
	p := NewFromWeights([]float64{0, 0}, 0)
	data := Dataset{
		{Point{1, 1}, 1},
		{Point{-1, -1}, 0},
	}

	if err := p.Step(data, 0.1); err != nil {
		t.Fatalf("Step returned error: %v", err)
	}

	// First sample: step(0)=1 matches label, no change.
	// Second sample: step(0)=1, label 0, so weights += -0.1*(-1,-1).
	if math.Abs(p.Weights[0]-0.1) > tol || math.Abs(p.Weights[1]-0.1) > tol {
		t.Errorf("weights = %v, want [0.1 0.1]", p.Weights)
	}
	if math.Abs(p.Bias-0.1) > tol {
		t.Errorf("bias = %v, want 0.1", p.Bias)
	}
}

// TestStepDeterminism tests that two independent runs from identical state
// produce bit-identical results.
func TestStepDeterminism(t *testing.T) {
	data := Dataset{
		{Point{0.3, -1.2}, 1},
		{Point{2.5, 0.7}, 0},
		{Point{-0.4, 0.1}, 1},
	}

	a := NewFromWeights([]float64{0.2, -0.3}, 0.05)
	b := NewFromWeights([]float64{0.2, -0.3}, 0.05)

	for epoch := 0; epoch < 10; epoch++ {
		if err := a.Step(data, 0.01); err != nil {
			t.Fatalf("Step returned error: %v", err)
		}
		if err := b.Step(data, 0.01); err != nil {
			t.Fatalf("Step returned error: %v", err)
		}
	}

	for i := range a.Weights {
		if a.Weights[i] != b.Weights[i] {
			t.Errorf("weights[%d] differ: %v vs %v", i, a.Weights[i], b.Weights[i])
		}
	}
	if a.Bias != b.Bias {
		t.Errorf("bias differs: %v vs %v", a.Bias, b.Bias)
	}
}

// TestStepShapeMismatchAborts tests that a malformed sample aborts the pass.
func TestStepShapeMismatchAborts(t *testing.T) {
	p := NewFromWeights([]float64{0, 0}, 0)
	data := Dataset{
		{Point{1, 1}, 1},
		{Point{1, 2, 3}, 0},
	}

	err := p.Step(data, 0.1)
	if !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("Step = %v, want ErrShapeMismatch", err)
	}
}

// TestBoundary tests the slope/intercept derivation.
func TestBoundary(t *testing.T) {
	p := NewFromWeights([]float64{2, 4}, 1)

	line, err := p.Boundary()
	if err != nil {
		t.Fatalf("Boundary returned error: %v", err)
	}
	if math.Abs(line.Slope-(-0.5)) > tol {
		t.Errorf("slope = %v, want -0.5", line.Slope)
	}
	if math.Abs(line.Intercept-(-0.25)) > tol {
		t.Errorf("intercept = %v, want -0.25", line.Intercept)
	}
}

// TestBoundaryZeroDivisor tests that a zero second weight fails with
// ErrZeroDivisor.
func TestBoundaryZeroDivisor(t *testing.T) {
	p := NewFromWeights([]float64{1, 0}, 0.5)

	_, err := p.Boundary()
	if !errors.Is(err, ErrZeroDivisor) {
		t.Errorf("Boundary = %v, want ErrZeroDivisor", err)
	}
}

// TestTrainZeroEpochs tests that zero epochs yields an empty sequence and
// leaves the initial state untouched.
func TestTrainZeroEpochs(t *testing.T) {
	p := NewFromWeights([]float64{0.7, -0.2}, 0.3)
	data := Dataset{{Point{1, 1}, 0}}

	results, err := p.Train(data, 0.1, 0)
	if err != nil {
		t.Fatalf("Train returned error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
	if p.Weights[0] != 0.7 || p.Weights[1] != -0.2 || p.Bias != 0.3 {
		t.Errorf("zero-epoch Train mutated state: weights=%v bias=%v", p.Weights, p.Bias)
	}
}

// TestTrainReportsOneLinePerEpoch tests that Train yields exactly one
// snapshot per epoch in order.
func TestTrainReportsOneLinePerEpoch(t *testing.T) {
	p := NewFromWeights([]float64{0.5, 0.5}, 0)
	data := Dataset{
		{Point{1, 2}, 1},
		{Point{-1, -2}, 0},
	}

	results, err := p.Train(data, 0.1, 5)
	if err != nil {
		t.Fatalf("Train returned error: %v", err)
	}
	if len(results) != 5 {
		t.Fatalf("len(results) = %d, want 5", len(results))
	}
	for i, r := range results {
		if r.Epoch != i+1 {
			t.Errorf("results[%d].Epoch = %d, want %d", i, r.Epoch, i+1)
		}
	}
}

// TestTrainSkipsFailedLines tests that a zero second weight only loses that
// epoch's line while training continues.
func TestTrainSkipsFailedLines(t *testing.T) {
	// Start with w1 = 0 and a dataset the perceptron already classifies
	// correctly, so epoch 1 has no derivable line and no update happens.
	p := NewFromWeights([]float64{1, 0}, 0)
	fixed := Dataset{{Point{1, 1}, 1}}

	results, err := p.Train(fixed, 0.1, 3)
	if err != nil {
		t.Fatalf("Train returned error: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	for i, r := range results {
		if !errors.Is(r.Err, ErrZeroDivisor) {
			t.Errorf("results[%d].Err = %v, want ErrZeroDivisor", i, r.Err)
		}
	}
	if len(Lines(results)) != 0 {
		t.Errorf("Lines = %v, want none", Lines(results))
	}
}

// TestTrainConvergesOnSeparableSet tests that the rule separates an easy
// 2D set and reports a usable boundary.
func TestTrainConvergesOnSeparableSet(t *testing.T) {
	p := NewFromWeights([]float64{0, 0}, 0)

	// Class 1 above the line y = x, class 0 below.
	data := Dataset{
		{Point{1, 2}, 1},
		{Point{2, 1}, 0},
		{Point{0.3, 0.5}, 1},
		{Point{0.5, 0.3}, 0},
		{Point{-1, 0}, 1},
		{Point{0, -1}, 0},
		{Point{3, 4}, 1},
		{Point{4, 3}, 0},
	}

	results, err := p.Train(data, 0.1, 500)
	if err != nil {
		t.Fatalf("Train returned error: %v", err)
	}
	if len(results) != 500 {
		t.Fatalf("len(results) = %d, want 500", len(results))
	}

	for _, s := range data {
		got, err := p.Predict(s.Point)
		if err != nil {
			t.Fatalf("Predict returned error: %v", err)
		}
		if got != s.Label {
			t.Errorf("Predict(%v) = %v, want %v", s.Point, got, s.Label)
		}
	}
}

// TestEpochsNonRestartable tests that the iterator is exhausted after its
// final epoch.
func TestEpochsNonRestartable(t *testing.T) {
	p := NewFromWeights([]float64{0.5, 0.5}, 0)
	data := Dataset{{Point{1, 1}, 1}}

	it := p.Epochs(data, 0.1, 2)
	n := 0
	for {
		_, ok := it.Next()
		if !ok {
			break
		}
		n++
	}
	if n != 2 {
		t.Fatalf("iterator yielded %d epochs, want 2", n)
	}
	if _, ok := it.Next(); ok {
		t.Error("exhausted iterator yielded another epoch")
	}
}

// TestNewSeededReproducible tests that initialization from the same seed
// produces identical parameters.
func TestNewSeededReproducible(t *testing.T) {
	a := New(2, rand.New(rand.NewSource(42)))
	b := New(2, rand.New(rand.NewSource(42)))

	if a.Weights[0] != b.Weights[0] || a.Weights[1] != b.Weights[1] || a.Bias != b.Bias {
		t.Errorf("same seed gave different parameters: %v/%v vs %v/%v",
			a.Weights, a.Bias, b.Weights, b.Bias)
	}
}

// TestNewFromWeightsCopies tests that the caller's slice is not aliased.
func TestNewFromWeightsCopies(t *testing.T) {
	w := []float64{1, 2}
	p := NewFromWeights(w, 0)
	w[0] = 99

	if p.Weights[0] != 1 {
		t.Error("NewFromWeights aliased the caller's slice")
	}
}
