// Package home contains the housing record domain model.
package home

import "time"

// FeatureCount is the number of predictor attributes on a record.
const FeatureCount = 7

// FeatureNames lists the predictor attributes in pipeline order. The
// median value label is excluded. The fitted pipeline depends on this
// exact ordering.
func FeatureNames() []string {
	return []string{"rm", "lstat", "dis", "tax", "ptratio", "age", "indus"}
}

// Features is the ordered 7-dimensional predictor vector of a record,
// without the median value label.
type Features struct {
	rooms              float64
	lowStatusPct       float64
	employmentDistance float64
	taxRate            float64
	pupilTeacherRatio  float64
	age                float64
	industrialPct      float64
}

// NewFeatures creates a feature vector. Arguments follow the fixed
// pipeline order: rm, lstat, dis, tax, ptratio, age, indus.
func NewFeatures(rooms, lowStatusPct, employmentDistance, taxRate, pupilTeacherRatio, age, industrialPct float64) Features {
	return Features{
		rooms:              rooms,
		lowStatusPct:       lowStatusPct,
		employmentDistance: employmentDistance,
		taxRate:            taxRate,
		pupilTeacherRatio:  pupilTeacherRatio,
		age:                age,
		industrialPct:      industrialPct,
	}
}

// Rooms returns the average number of rooms per dwelling.
func (f Features) Rooms() float64 { return f.rooms }

// LowStatusPct returns the percentage of lower-status population.
func (f Features) LowStatusPct() float64 { return f.lowStatusPct }

// EmploymentDistance returns the weighted distance to employment centres.
func (f Features) EmploymentDistance() float64 { return f.employmentDistance }

// TaxRate returns the property tax rate per $10,000.
func (f Features) TaxRate() float64 { return f.taxRate }

// PupilTeacherRatio returns the pupil-teacher ratio by town.
func (f Features) PupilTeacherRatio() float64 { return f.pupilTeacherRatio }

// Age returns the proportion of units built before 1940.
func (f Features) Age() float64 { return f.age }

// IndustrialPct returns the proportion of non-retail business acres.
func (f Features) IndustrialPct() float64 { return f.industrialPct }

// Vector returns the features as a slice in pipeline order.
func (f Features) Vector() []float64 {
	return []float64{
		f.rooms,
		f.lowStatusPct,
		f.employmentDistance,
		f.taxRate,
		f.pupilTeacherRatio,
		f.age,
		f.industrialPct,
	}
}

// Home represents a stored housing record: the 7 predictor attributes
// plus the known median value label. Records are append-only; they are
// never updated or deleted once stored.
type Home struct {
	id          int64
	features    Features
	medianValue float64
	createdAt   time.Time
}

// NewHome creates an unsaved Home (id 0, assigned by the store).
// medianValue is the known label in thousands of currency units.
func NewHome(features Features, medianValue float64) Home {
	return Home{
		features:    features,
		medianValue: medianValue,
	}
}

// ReconstructHome rebuilds a Home from persisted state.
func ReconstructHome(id int64, features Features, medianValue float64, createdAt time.Time) Home {
	return Home{
		id:          id,
		features:    features,
		medianValue: medianValue,
		createdAt:   createdAt,
	}
}

// ID returns the store-assigned identifier (0 if unsaved).
func (h Home) ID() int64 { return h.id }

// Features returns the predictor attributes.
func (h Home) Features() Features { return h.features }

// MedianValue returns the median value label in thousands of currency units.
func (h Home) MedianValue() float64 { return h.medianValue }

// CreatedAt returns when the record was stored.
func (h Home) CreatedAt() time.Time { return h.createdAt }

// IsSaved returns true once the store has assigned an id.
func (h Home) IsSaved() bool { return h.id != 0 }
