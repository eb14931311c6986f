package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ynstf/boston-housing-api/domain/home"
)

// Recommendation finds stored homes whose median value is closest to a
// target price.
type Recommendation struct {
	store  home.Store
	logger *slog.Logger
}

// NewRecommendation creates a new Recommendation service.
func NewRecommendation(store home.Store, logger *slog.Logger) *Recommendation {
	if logger == nil {
		logger = slog.Default()
	}
	return &Recommendation{
		store:  store,
		logger: logger,
	}
}

// Recommend returns up to limit homes ordered closest-price-first.
// price is in display currency (dirhams) and is converted back to the
// stored thousands-of-dollars unit before comparing against median
// values. An empty result is a valid response, not an error; a limit of
// 0 or less yields an empty result for any store.
func (s *Recommendation) Recommend(ctx context.Context, price float64, limit int) ([]home.Home, error) {
	if limit <= 0 {
		return []home.Home{}, nil
	}

	target := price / DisplayCurrencyFactor
	homes, err := s.store.NearestByPrice(ctx, target, limit)
	if err != nil {
		return nil, fmt.Errorf("recommend homes: %w", err)
	}

	s.logger.Debug("homes recommended",
		"price", price,
		"target_thousands", target,
		"count", len(homes),
	)
	return homes, nil
}
