package service

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/ynstf/boston-housing-api/domain/home"
	"github.com/ynstf/boston-housing-api/domain/repository"
)

// fakeStore is an in-memory home.Store for service tests.
type fakeStore struct {
	homes   []home.Home
	nextID  int64
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (s *fakeStore) Save(_ context.Context, h home.Home) (home.Home, error) {
	if s.saveErr != nil {
		return home.Home{}, s.saveErr
	}
	saved := home.ReconstructHome(s.nextID, h.Features(), h.MedianValue(), time.Now())
	s.nextID++
	s.homes = append(s.homes, saved)
	return saved, nil
}

func (s *fakeStore) SaveAll(ctx context.Context, homes []home.Home) ([]home.Home, error) {
	saved := make([]home.Home, 0, len(homes))
	for _, h := range homes {
		sh, err := s.Save(ctx, h)
		if err != nil {
			return nil, err
		}
		saved = append(saved, sh)
	}
	return saved, nil
}

func (s *fakeStore) Find(_ context.Context, options ...repository.Option) ([]home.Home, error) {
	query := repository.Build(options...)
	result := make([]home.Home, len(s.homes))
	copy(result, s.homes)

	offset := query.OffsetValue()
	if offset > len(result) {
		offset = len(result)
	}
	result = result[offset:]
	if limit := query.LimitValue(); limit > 0 && limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (s *fakeStore) FindOne(ctx context.Context, options ...repository.Option) (home.Home, error) {
	homes, err := s.Find(ctx, options...)
	if err != nil {
		return home.Home{}, err
	}
	if len(homes) == 0 {
		return home.Home{}, errors.New("not found")
	}
	return homes[0], nil
}

func (s *fakeStore) Count(_ context.Context, _ ...repository.Option) (int64, error) {
	return int64(len(s.homes)), nil
}

func (s *fakeStore) NearestByPrice(_ context.Context, target float64, limit int) ([]home.Home, error) {
	result := make([]home.Home, len(s.homes))
	copy(result, s.homes)
	sort.SliceStable(result, func(i, j int) bool {
		di := abs(result[i].MedianValue() - target)
		dj := abs(result[j].MedianValue() - target)
		if di != dj {
			return di < dj
		}
		return result[i].ID() < result[j].ID()
	})
	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func testParams(medv float64) HomeCreateParams {
	return HomeCreateParams{
		Rooms:              6.5,
		LowStatusPct:       4.98,
		EmploymentDistance: 6.0,
		TaxRate:            296,
		PupilTeacherRatio:  15.3,
		Age:                65.2,
		IndustrialPct:      2.31,
		MedianValue:        medv,
	}
}

func (p HomeCreateParams) toHome() home.Home {
	return home.NewHome(p.Features(), p.MedianValue)
}

func TestHomes_Create(t *testing.T) {
	store := newFakeStore()
	svc := NewHomes(store, nil)

	saved, err := svc.Create(context.Background(), testParams(24.0))
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if saved.ID() != 1 {
		t.Errorf("saved.ID() = %d, want 1", saved.ID())
	}
	if saved.MedianValue() != 24.0 {
		t.Errorf("saved.MedianValue() = %v, want 24.0", saved.MedianValue())
	}
	if got := saved.Features().Rooms(); got != 6.5 {
		t.Errorf("saved.Features().Rooms() = %v, want 6.5", got)
	}
}

func TestHomes_Create_StoreError(t *testing.T) {
	store := newFakeStore()
	store.saveErr = errors.New("disk full")
	svc := NewHomes(store, nil)

	_, err := svc.Create(context.Background(), testParams(24.0))
	if err == nil {
		t.Fatal("Create() error = nil, want store error")
	}
}

func TestHomes_Import(t *testing.T) {
	store := newFakeStore()
	svc := NewHomes(store, nil)

	batch := []HomeCreateParams{testParams(10), testParams(20), testParams(30)}
	saved, err := svc.Import(context.Background(), batch)
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	if len(saved) != 3 {
		t.Fatalf("len(Import()) = %d, want 3", len(saved))
	}
	for i, h := range saved {
		if h.ID() != int64(i+1) {
			t.Errorf("Import()[%d].ID() = %d, want %d", i, h.ID(), i+1)
		}
	}
}

func TestHomes_List_Pagination(t *testing.T) {
	store := newFakeStore()
	svc := NewHomes(store, nil)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := svc.Create(ctx, testParams(float64(10+i))); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	tests := []struct {
		name    string
		skip    int
		limit   int
		wantIDs []int64
	}{
		{"full list", 0, 100, []int64{1, 2, 3, 4, 5}},
		{"skip two", 2, 100, []int64{3, 4, 5}},
		{"limit two", 0, 2, []int64{1, 2}},
		{"skip and limit", 1, 2, []int64{2, 3}},
		{"skip past end", 10, 100, []int64{}},
		{"zero limit", 0, 0, []int64{}},
		{"negative limit", 0, -1, []int64{}},
		{"negative skip treated as zero", -3, 2, []int64{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			homes, err := svc.List(ctx, tt.skip, tt.limit)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if len(homes) != len(tt.wantIDs) {
				t.Fatalf("len(List()) = %d, want %d", len(homes), len(tt.wantIDs))
			}
			for i, want := range tt.wantIDs {
				if homes[i].ID() != want {
					t.Errorf("List()[%d].ID() = %d, want %d", i, homes[i].ID(), want)
				}
			}
		})
	}
}

func TestHomes_Count(t *testing.T) {
	store := newFakeStore()
	svc := NewHomes(store, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := svc.Create(ctx, testParams(20.0)); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	count, err := svc.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count != 3 {
		t.Errorf("Count() = %d, want 3", count)
	}
}
