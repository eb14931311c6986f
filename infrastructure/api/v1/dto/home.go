// Package dto defines the wire representations of the v1 API.
package dto

// HomeData represents a stored housing record. Field names keep the
// Boston housing dataset abbreviations used by clients.
type HomeData struct {
	ID      int64   `json:"id"`
	RM      float64 `json:"rm"`
	LStat   float64 `json:"lstat"`
	Dis     float64 `json:"dis"`
	Tax     float64 `json:"tax"`
	PTRatio float64 `json:"ptratio"`
	Age     float64 `json:"age"`
	Indus   float64 `json:"indus"`
	Medv    float64 `json:"medv"`
}

// HomeListMeta carries pagination information for list responses.
type HomeListMeta struct {
	Skip  int   `json:"skip"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// HomeListResponse is the response for GET /homes.
type HomeListResponse struct {
	Data []HomeData   `json:"data"`
	Meta HomeListMeta `json:"meta"`
}

// HomeCreateRequest is the request body for POST /homes. All 8 fields
// are required; pointers distinguish absent fields from zero values.
type HomeCreateRequest struct {
	RM      *float64 `json:"rm"`
	LStat   *float64 `json:"lstat"`
	Dis     *float64 `json:"dis"`
	Tax     *float64 `json:"tax"`
	PTRatio *float64 `json:"ptratio"`
	Age     *float64 `json:"age"`
	Indus   *float64 `json:"indus"`
	Medv    *float64 `json:"medv"`
}

// MissingFields returns the names of required fields absent from the
// request, in schema order.
func (r HomeCreateRequest) MissingFields() []string {
	return missingFields([]requiredField{
		{"rm", r.RM},
		{"lstat", r.LStat},
		{"dis", r.Dis},
		{"tax", r.Tax},
		{"ptratio", r.PTRatio},
		{"age", r.Age},
		{"indus", r.Indus},
		{"medv", r.Medv},
	})
}

// PredictRequest is the request body for POST /predict: the 7 predictor
// attributes without the median value.
type PredictRequest struct {
	RM      *float64 `json:"rm"`
	LStat   *float64 `json:"lstat"`
	Dis     *float64 `json:"dis"`
	Tax     *float64 `json:"tax"`
	PTRatio *float64 `json:"ptratio"`
	Age     *float64 `json:"age"`
	Indus   *float64 `json:"indus"`
}

// MissingFields returns the names of required fields absent from the
// request, in schema order.
func (r PredictRequest) MissingFields() []string {
	return missingFields([]requiredField{
		{"rm", r.RM},
		{"lstat", r.LStat},
		{"dis", r.Dis},
		{"tax", r.Tax},
		{"ptratio", r.PTRatio},
		{"age", r.Age},
		{"indus", r.Indus},
	})
}

type requiredField struct {
	name  string
	value *float64
}

func missingFields(fields []requiredField) []string {
	var missing []string
	for _, f := range fields {
		if f.value == nil {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// PredictionResponse is the response for POST /predict. The price is in
// display currency (dirhams).
type PredictionResponse struct {
	PredictedPriceDH float64 `json:"predicted_price_dh"`
}

// RecommendationResponse is the response for GET /recommendation.
type RecommendationResponse struct {
	Data []HomeData `json:"data"`
}
