package service

import (
	"log/slog"

	"github.com/ynstf/boston-housing-api/domain/home"
	"github.com/ynstf/boston-housing-api/domain/regression"
)

// Unit conversion between the pipeline's output and the public price.
// The pipeline predicts median values in thousands of dollars; the
// service returns dirhams using a fixed conversion rate of 10.
const (
	thousandsFactor = 1000.0
	dirhamRate      = 10.0

	// DisplayCurrencyFactor converts thousands-of-dollars values to
	// display-currency (dirham) prices, and back.
	DisplayCurrencyFactor = thousandsFactor * dirhamRate
)

// Prediction estimates home prices with the fitted regression pipeline.
// It is purely functional: no persistence, deterministic output.
type Prediction struct {
	pipeline regression.Pipeline
	logger   *slog.Logger
}

// NewPrediction creates a new Prediction service around a fitted pipeline.
func NewPrediction(pipeline regression.Pipeline, logger *slog.Logger) *Prediction {
	if logger == nil {
		logger = slog.Default()
	}
	return &Prediction{
		pipeline: pipeline,
		logger:   logger,
	}
}

// PredictPrice runs the pipeline on the given features and converts the
// raw thousands-of-dollars estimate to a display-currency price.
func (s *Prediction) PredictPrice(features home.Features) float64 {
	raw := s.pipeline.Predict(features.Vector())
	price := raw * DisplayCurrencyFactor

	s.logger.Debug("price predicted", "raw_thousands", raw, "price", price)
	return price
}

// Pipeline returns the underlying fitted pipeline.
func (s *Prediction) Pipeline() regression.Pipeline {
	return s.pipeline
}
