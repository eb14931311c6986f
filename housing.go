// Package housing provides the Boston housing record store, price
// predictor, and nearest-price recommender as a library.
//
// Basic usage:
//
//	client, err := housing.New(
//	    housing.WithSQLite(".housing-api/homes.db"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	// Store a record
//	h, err := client.Homes.Create(ctx, service.HomeCreateParams{...})
//
//	// Predict a price in display currency
//	price := client.Prediction.PredictPrice(features)
//
//	// Recommend the closest-priced homes
//	homes, err := client.Recommendation.Recommend(ctx, price, 20)
package housing

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ynstf/boston-housing-api/application/service"
	"github.com/ynstf/boston-housing-api/domain/home"
	"github.com/ynstf/boston-housing-api/domain/regression"
	"github.com/ynstf/boston-housing-api/infrastructure/artifact"
	"github.com/ynstf/boston-housing-api/infrastructure/persistence"
	"github.com/ynstf/boston-housing-api/internal/database"
)

// Client is the main entry point for the housing library. It wires the
// database, the loaded regression pipeline, and the application
// services together for the process lifetime.
//
// Access resources via struct fields:
//
//	client.Homes.List(ctx, 0, 100)
//	client.Prediction.PredictPrice(features)
//	client.Recommendation.Recommend(ctx, price, 20)
type Client struct {
	// Public service fields (direct access)
	Homes          *service.Homes
	Prediction     *service.Prediction
	Recommendation *service.Recommendation

	db        database.Database
	homeStore persistence.HomeStore
	pipeline  regression.Pipeline

	logger  *slog.Logger
	apiKeys []string
}

// New creates a Client: it opens the database, runs migrations, loads
// the fitted pipeline artifact, and constructs the services.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx := context.Background()
	db, err := database.NewDatabase(ctx, cfg.databaseURL())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := persistence.AutoMigrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate database: %w", err)
	}

	pipeline := cfg.pipeline
	if !cfg.pipelineSet {
		pipeline, err = artifact.LoadPipeline(cfg.modelPath)
		if err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("load pipeline: %w", err)
		}
	}

	// The pipeline's feature order must match the record's; a mismatch
	// means the artifact was trained against a different schema.
	if err := validateFeatureOrder(pipeline); err != nil {
		_ = db.Close()
		return nil, err
	}

	homeStore := persistence.NewHomeStore(db)

	c := &Client{
		Homes:          service.NewHomes(homeStore, logger),
		Prediction:     service.NewPrediction(pipeline, logger),
		Recommendation: service.NewRecommendation(homeStore, logger),
		db:             db,
		homeStore:      homeStore,
		pipeline:       pipeline,
		logger:         logger,
		apiKeys:        cfg.apiKeys,
	}

	logger.Debug("housing client ready",
		"features", pipeline.FeatureCount(),
		"db_sqlite", db.IsSQLite(),
	)
	return c, nil
}

func validateFeatureOrder(p regression.Pipeline) error {
	names := p.FeatureNames()
	expected := home.FeatureNames()
	if len(names) != len(expected) {
		return fmt.Errorf("pipeline fitted on %d features, records have %d", len(names), len(expected))
	}
	for i, name := range expected {
		if names[i] != name {
			return fmt.Errorf("pipeline feature %d is %q, records expect %q", i, names[i], name)
		}
	}
	return nil
}

// Store exposes the record store for seeding and tests.
func (c *Client) Store() home.Store {
	return c.homeStore
}

// Pipeline returns the loaded fitted pipeline.
func (c *Client) Pipeline() regression.Pipeline {
	return c.pipeline
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// APIKeys returns the configured API keys for write protection.
func (c *Client) APIKeys() []string {
	keys := make([]string, len(c.apiKeys))
	copy(keys, c.apiKeys)
	return keys
}

// Close releases the database connection. The pipeline needs no
// teardown.
func (c *Client) Close() error {
	return c.db.Close()
}
