// Package service provides application layer services that orchestrate
// domain operations.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ynstf/boston-housing-api/domain/home"
	"github.com/ynstf/boston-housing-api/domain/repository"
)

// HomeCreateParams holds the 8 required fields of a new housing record.
type HomeCreateParams struct {
	Rooms              float64
	LowStatusPct       float64
	EmploymentDistance float64
	TaxRate            float64
	PupilTeacherRatio  float64
	Age                float64
	IndustrialPct      float64
	MedianValue        float64
}

// Features returns the predictor attributes of the params.
func (p HomeCreateParams) Features() home.Features {
	return home.NewFeatures(
		p.Rooms,
		p.LowStatusPct,
		p.EmploymentDistance,
		p.TaxRate,
		p.PupilTeacherRatio,
		p.Age,
		p.IndustrialPct,
	)
}

// Homes provides housing record storage operations.
type Homes struct {
	store  home.Store
	logger *slog.Logger
}

// NewHomes creates a new Homes service.
func NewHomes(store home.Store, logger *slog.Logger) *Homes {
	if logger == nil {
		logger = slog.Default()
	}
	return &Homes{
		store:  store,
		logger: logger,
	}
}

// Create inserts a new record and returns it with the assigned id.
func (s *Homes) Create(ctx context.Context, params HomeCreateParams) (home.Home, error) {
	saved, err := s.store.Save(ctx, home.NewHome(params.Features(), params.MedianValue))
	if err != nil {
		return home.Home{}, fmt.Errorf("create home: %w", err)
	}

	s.logger.Debug("home created", "id", saved.ID(), "medv", saved.MedianValue())
	return saved, nil
}

// Import stores a batch of records in one transaction. Either every
// record is inserted or none are.
func (s *Homes) Import(ctx context.Context, batch []HomeCreateParams) ([]home.Home, error) {
	homes := make([]home.Home, len(batch))
	for i, params := range batch {
		homes[i] = home.NewHome(params.Features(), params.MedianValue)
	}

	saved, err := s.store.SaveAll(ctx, homes)
	if err != nil {
		return nil, fmt.Errorf("import homes: %w", err)
	}

	s.logger.Info("homes imported", "count", len(saved))
	return saved, nil
}

// List returns records in insertion (id) order, skipping the first skip
// and returning up to limit. A negative skip is treated as 0; a limit of
// 0 or less yields an empty result.
func (s *Homes) List(ctx context.Context, skip, limit int) ([]home.Home, error) {
	if limit <= 0 {
		return []home.Home{}, nil
	}
	if skip < 0 {
		skip = 0
	}

	options := append(
		repository.WithPagination(limit, skip),
		repository.WithOrderAsc("id"),
	)
	homes, err := s.store.Find(ctx, options...)
	if err != nil {
		return nil, fmt.Errorf("list homes: %w", err)
	}
	return homes, nil
}

// Count returns the total number of stored records.
func (s *Homes) Count(ctx context.Context) (int64, error) {
	return s.store.Count(ctx)
}
