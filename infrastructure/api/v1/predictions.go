package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	housing "github.com/ynstf/boston-housing-api"
	"github.com/ynstf/boston-housing-api/domain/home"
	"github.com/ynstf/boston-housing-api/infrastructure/api/middleware"
	"github.com/ynstf/boston-housing-api/infrastructure/api/v1/dto"
)

// PredictionsRouter handles price prediction endpoints.
type PredictionsRouter struct {
	client *housing.Client
	logger *slog.Logger
}

// NewPredictionsRouter creates a new PredictionsRouter.
func NewPredictionsRouter(client *housing.Client) *PredictionsRouter {
	return &PredictionsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for prediction endpoints.
func (p *PredictionsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", p.Predict)

	return router
}

// Predict handles POST /predict.
//
//	@Summary		Predict price
//	@Description	Estimate the price of a home from its 7 predictor attributes
//	@Tags			predictions
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.PredictRequest	true	"Predictor attributes"
//	@Success		200		{object}	dto.PredictionResponse
//	@Failure		400		{object}	middleware.APIErrorResponse
//	@Router			/predict [post]
func (p *PredictionsRouter) Predict(w http.ResponseWriter, req *http.Request) {
	var body dto.PredictRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req,
			middleware.NewRequestError(http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err)),
			p.logger)
		return
	}

	if missing := body.MissingFields(); len(missing) > 0 {
		middleware.WriteError(w, req,
			middleware.NewRequestError(http.StatusBadRequest,
				fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))),
			p.logger)
		return
	}

	features := home.NewFeatures(
		*body.RM,
		*body.LStat,
		*body.Dis,
		*body.Tax,
		*body.PTRatio,
		*body.Age,
		*body.Indus,
	)
	price := p.client.Prediction.PredictPrice(features)

	middleware.WriteJSON(w, http.StatusOK, dto.PredictionResponse{
		PredictedPriceDH: price,
	})
}
