// Package regression implements the fitted prediction pipeline:
// feature standardization, degree-2 polynomial expansion, and a
// ridge-regularized linear model.
package regression

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Degree is the polynomial expansion degree of the fitted pipeline.
const Degree = 2

// Validation errors for pipeline parameters.
var (
	ErrNoFeatures        = errors.New("pipeline has no features")
	ErrLengthMismatch    = errors.New("pipeline parameter lengths do not match")
	ErrZeroStdDev        = errors.New("pipeline has a zero standard deviation")
	ErrCoefficientCount  = errors.New("coefficient count does not match expansion size")
)

// TermCount returns the number of terms in the degree-2 expansion of n
// features without a bias term: the n originals plus every pairwise
// product including squares.
func TermCount(n int) int {
	return n + n*(n+1)/2
}

// Pipeline is a fitted regression pipeline. It is immutable after
// construction and safe for unsynchronized concurrent use: Predict
// reads fixed parameters and has no hidden state.
type Pipeline struct {
	featureNames []string
	means        []float64
	stddevs      []float64
	coefficients []float64
	intercept    float64
}

// NewPipeline constructs a Pipeline from fitted parameters. featureNames,
// means, and stddevs must have equal length n; coefficients must have
// TermCount(n) entries, one per expanded term in canonical order.
func NewPipeline(featureNames []string, means, stddevs, coefficients []float64, intercept float64) (Pipeline, error) {
	n := len(featureNames)
	if n == 0 {
		return Pipeline{}, ErrNoFeatures
	}
	if len(means) != n || len(stddevs) != n {
		return Pipeline{}, fmt.Errorf("%w: %d features, %d means, %d stddevs",
			ErrLengthMismatch, n, len(means), len(stddevs))
	}
	for i, sd := range stddevs {
		if sd == 0 {
			return Pipeline{}, fmt.Errorf("%w: feature %q", ErrZeroStdDev, featureNames[i])
		}
	}
	if len(coefficients) != TermCount(n) {
		return Pipeline{}, fmt.Errorf("%w: got %d, want %d",
			ErrCoefficientCount, len(coefficients), TermCount(n))
	}

	p := Pipeline{
		featureNames: make([]string, n),
		means:        make([]float64, n),
		stddevs:      make([]float64, n),
		coefficients: make([]float64, len(coefficients)),
		intercept:    intercept,
	}
	copy(p.featureNames, featureNames)
	copy(p.means, means)
	copy(p.stddevs, stddevs)
	copy(p.coefficients, coefficients)
	return p, nil
}

// FeatureNames returns the ordered feature names the pipeline was
// fitted on.
func (p Pipeline) FeatureNames() []string {
	names := make([]string, len(p.featureNames))
	copy(names, p.featureNames)
	return names
}

// FeatureCount returns the number of input features.
func (p Pipeline) FeatureCount() int {
	return len(p.featureNames)
}

// Predict maps a feature vector to a price estimate in thousands of
// currency units. Inputs are standardized with the training-set means
// and standard deviations, expanded to degree 2 without a bias term,
// and combined linearly with the fitted coefficients.
//
// No bounds checking is applied: out-of-training-range inputs silently
// extrapolate. A vector of the wrong length is a caller contract
// violation and panics.
func (p Pipeline) Predict(features []float64) float64 {
	if len(features) != len(p.featureNames) {
		panic(fmt.Sprintf("regression: predict called with %d features, pipeline fitted on %d",
			len(features), len(p.featureNames)))
	}

	standardized := make([]float64, len(features))
	for i, x := range features {
		standardized[i] = (x - p.means[i]) / p.stddevs[i]
	}

	expanded := Expand(standardized)
	return p.intercept + floats.Dot(p.coefficients, expanded)
}

// Expand computes the degree-2 polynomial expansion of z without a bias
// term, in the canonical training-time order: the original features
// first, then z[i]*z[j] for every i <= j.
func Expand(z []float64) []float64 {
	n := len(z)
	expanded := make([]float64, 0, TermCount(n))
	expanded = append(expanded, z...)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			expanded = append(expanded, z[i]*z[j])
		}
	}
	return expanded
}
