package persistence

import (
	"github.com/ynstf/boston-housing-api/domain/home"
)

// HomeMapper maps between domain Home and persistence HomeModel.
type HomeMapper struct{}

// ToDomain converts a HomeModel to a domain Home.
func (m HomeMapper) ToDomain(e HomeModel) home.Home {
	features := home.NewFeatures(
		e.RM,
		e.LStat,
		e.Dis,
		e.Tax,
		e.PTRatio,
		e.Age,
		e.Indus,
	)
	return home.ReconstructHome(e.ID, features, e.Medv, e.CreatedAt)
}

// ToModel converts a domain Home to a HomeModel.
func (m HomeMapper) ToModel(h home.Home) HomeModel {
	f := h.Features()
	return HomeModel{
		ID:        h.ID(),
		RM:        f.Rooms(),
		LStat:     f.LowStatusPct(),
		Dis:       f.EmploymentDistance(),
		Tax:       f.TaxRate(),
		PTRatio:   f.PupilTeacherRatio(),
		Age:       f.Age(),
		Indus:     f.IndustrialPct(),
		Medv:      h.MedianValue(),
		CreatedAt: h.CreatedAt(),
	}
}
