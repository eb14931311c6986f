package persistence

import (
	"context"
	"fmt"

	"github.com/ynstf/boston-housing-api/domain/home"
	"github.com/ynstf/boston-housing-api/internal/database"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HomeStore implements home.Store using GORM.
type HomeStore struct {
	database.Repository[home.Home, HomeModel]
	db database.Database
}

// NewHomeStore creates a new HomeStore.
func NewHomeStore(db database.Database) HomeStore {
	return HomeStore{
		Repository: database.NewRepository[home.Home, HomeModel](db, HomeMapper{}, "home"),
		db:         db,
	}
}

// Save inserts a new record and returns it with the assigned id.
// Records are append-only, so an already-saved record is rejected.
func (s HomeStore) Save(ctx context.Context, h home.Home) (home.Home, error) {
	if h.IsSaved() {
		return home.Home{}, fmt.Errorf("save home: record %d is immutable", h.ID())
	}

	model := s.Mapper().ToModel(h)
	if result := s.DB(ctx).Create(&model); result.Error != nil {
		return home.Home{}, fmt.Errorf("save home: %w", result.Error)
	}
	return s.Mapper().ToDomain(model), nil
}

// SaveAll inserts the records in one transaction. Either every record
// is stored with an assigned id or, on the first failure, none are.
func (s HomeStore) SaveAll(ctx context.Context, homes []home.Home) ([]home.Home, error) {
	saved := make([]home.Home, 0, len(homes))

	err := database.WithTransaction(ctx, s.db, func(tx *gorm.DB) error {
		for _, h := range homes {
			if h.IsSaved() {
				return fmt.Errorf("save homes: record %d is immutable", h.ID())
			}
			model := s.Mapper().ToModel(h)
			if result := tx.Create(&model); result.Error != nil {
				return fmt.Errorf("save homes: %w", result.Error)
			}
			saved = append(saved, s.Mapper().ToDomain(model))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// NearestByPrice returns up to limit records ordered by the absolute
// distance between medv and target (thousands of currency units). Ties
// are broken by ascending id so results are deterministic.
func (s HomeStore) NearestByPrice(ctx context.Context, target float64, limit int) ([]home.Home, error) {
	if limit <= 0 {
		return []home.Home{}, nil
	}

	var models []HomeModel
	result := s.DB(ctx).
		Model(&HomeModel{}).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "ABS(medv - ?), id",
			Vars:               []any{target},
			WithoutParentheses: true,
		}}).
		Limit(limit).
		Find(&models)
	if result.Error != nil {
		return nil, fmt.Errorf("nearest homes by price: %w", result.Error)
	}

	homes := make([]home.Home, len(models))
	for i, model := range models {
		homes[i] = s.Mapper().ToDomain(model)
	}
	return homes, nil
}
