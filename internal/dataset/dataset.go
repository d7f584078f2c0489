// Package dataset provides ordered, labeled 2D point sets for the demos
// and tests: seeded synthetic generators, normalization and a CSV loader.
package dataset

import (
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"neuroprimer/internal/perceptron"
)

// Dataset is an ordered collection of points with binary labels. Iteration
// order is the record order; nothing here shuffles.
type Dataset struct {
	Points [][]float64
	Labels []float64
}

// Len returns the number of records.
func (d *Dataset) Len() int {
	return len(d.Points)
}

// Samples bridges to the perceptron package's sample type, preserving
// order. Points are shared, not copied.
func (d *Dataset) Samples() perceptron.Dataset {
	samples := make(perceptron.Dataset, len(d.Points))
	for i, p := range d.Points {
		samples[i] = perceptron.Sample{Point: p, Label: d.Labels[i]}
	}
	return samples
}

// TwoBlobs generates n points split between two Gaussian clusters:
// label 0 around (-sep, -sep) and label 1 around (sep, sep), with the
// given spread. Classes alternate so neither dominates a prefix of the
// record order.
func TwoBlobs(n int, sep, spread float64, rng *rand.Rand) *Dataset {
	d := &Dataset{
		Points: make([][]float64, n),
		Labels: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		center := sep
		label := 1.0
		if i%2 == 0 {
			center = -sep
			label = 0
		}
		d.Points[i] = []float64{
			center + rng.NormFloat64()*spread,
			center + rng.NormFloat64()*spread,
		}
		d.Labels[i] = label
	}
	return d
}

// HalfPlane generates n points uniform in [-bound, bound]^2, labeled 1
// when the point lies on or above the line y = slope*x + intercept. The
// labeling is exact, so the set is always linearly separable.
func HalfPlane(n int, slope, intercept, bound float64, rng *rand.Rand) *Dataset {
	d := &Dataset{
		Points: make([][]float64, n),
		Labels: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		x := rng.Float64()*2*bound - bound
		y := rng.Float64()*2*bound - bound
		d.Points[i] = []float64{x, y}
		if y >= slope*x+intercept {
			d.Labels[i] = 1
		}
	}
	return d
}

// ZScore standardizes each feature column to zero mean and unit standard
// deviation, in place. Columns with zero deviation are only centered.
func (d *Dataset) ZScore() {
	if len(d.Points) == 0 {
		return
	}
	numFeatures := len(d.Points[0])
	col := make([]float64, len(d.Points))

	for j := 0; j < numFeatures; j++ {
		for i, p := range d.Points {
			col[i] = p[j]
		}
		mean, std := stat.MeanStdDev(col, nil)
		for _, p := range d.Points {
			p[j] -= mean
			if std != 0 {
				p[j] /= std
			}
		}
	}
}

// MinMax rescales each feature column to [0, 1], in place. Constant
// columns become 0.
func (d *Dataset) MinMax() {
	if len(d.Points) == 0 {
		return
	}
	numFeatures := len(d.Points[0])

	for j := 0; j < numFeatures; j++ {
		lo, hi := d.Points[0][j], d.Points[0][j]
		for _, p := range d.Points {
			if p[j] < lo {
				lo = p[j]
			}
			if p[j] > hi {
				hi = p[j]
			}
		}
		span := hi - lo
		for _, p := range d.Points {
			if span != 0 {
				p[j] = (p[j] - lo) / span
			} else {
				p[j] = 0
			}
		}
	}
}

// Split splits the dataset into two at the given ratio (0.0 to 1.0),
// preserving record order. The underlying slices are shared.
func (d *Dataset) Split(ratio float64) (*Dataset, *Dataset) {
	if ratio <= 0 {
		return &Dataset{}, d
	}
	if ratio >= 1 {
		return d, &Dataset{}
	}

	idx := int(float64(len(d.Points)) * ratio)
	return &Dataset{Points: d.Points[:idx], Labels: d.Labels[:idx]},
		&Dataset{Points: d.Points[idx:], Labels: d.Labels[idx:]}
}
