package home

import (
	"context"

	"github.com/ynstf/boston-housing-api/domain/repository"
)

// Store persists housing records. Inserts are atomic; no updates or
// deletes are supported.
type Store interface {
	// Save inserts the record and returns it with the assigned id.
	Save(ctx context.Context, h Home) (Home, error)

	// SaveAll inserts the records in one transaction: either all are
	// stored or none.
	SaveAll(ctx context.Context, homes []Home) ([]Home, error)

	// Find retrieves records matching the given options, in id order
	// unless an explicit ordering option is supplied.
	Find(ctx context.Context, options ...repository.Option) ([]Home, error)

	// FindOne retrieves a single record, or database.ErrNotFound.
	FindOne(ctx context.Context, options ...repository.Option) (Home, error)

	// Count returns the number of records matching the given options.
	Count(ctx context.Context, options ...repository.Option) (int64, error)

	// NearestByPrice returns up to limit records ordered by the absolute
	// distance between their median value and target (thousands of
	// currency units), ties broken by ascending id.
	NearestByPrice(ctx context.Context, target float64, limit int) ([]Home, error)
}
