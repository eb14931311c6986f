package v1

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	housing "github.com/ynstf/boston-housing-api"
	"github.com/ynstf/boston-housing-api/infrastructure/api/middleware"
	"github.com/ynstf/boston-housing-api/infrastructure/api/v1/dto"
	"github.com/ynstf/boston-housing-api/internal/config"
)

// RecommendationsRouter handles nearest-price recommendation endpoints.
type RecommendationsRouter struct {
	client *housing.Client
	logger *slog.Logger
}

// NewRecommendationsRouter creates a new RecommendationsRouter.
func NewRecommendationsRouter(client *housing.Client) *RecommendationsRouter {
	return &RecommendationsRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for recommendation endpoints.
func (rr *RecommendationsRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", rr.Recommend)

	return router
}

// Recommend handles GET /recommendation.
//
// An empty result is a valid response: the handler returns 200 with an
// empty data array rather than 404.
//
//	@Summary		Recommend homes
//	@Description	Find stored homes whose median value is closest to a target price
//	@Tags			recommendations
//	@Produce		json
//	@Param			price	query	number	true	"Target price in dirhams"
//	@Param			limit	query	int		false	"Maximum results (default: 20)"
//	@Success		200	{object}	dto.RecommendationResponse
//	@Failure		400	{object}	middleware.APIErrorResponse
//	@Failure		500	{object}	middleware.APIErrorResponse
//	@Router			/recommendation [get]
func (rr *RecommendationsRouter) Recommend(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	priceStr := req.URL.Query().Get("price")
	if priceStr == "" {
		middleware.WriteError(w, req,
			middleware.NewRequestError(http.StatusBadRequest, "price query parameter is required"),
			rr.logger)
		return
	}
	price, err := strconv.ParseFloat(priceStr, 64)
	if err != nil {
		middleware.WriteError(w, req,
			middleware.NewRequestError(http.StatusBadRequest, "price must be a number"),
			rr.logger)
		return
	}

	limit := config.DefaultRecommendationLimit
	if limitStr := req.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			middleware.WriteError(w, req,
				middleware.NewRequestError(http.StatusBadRequest, "limit must be an integer"),
				rr.logger)
			return
		}
		limit = parsed
	}

	homes, err := rr.client.Recommendation.Recommend(ctx, price, limit)
	if err != nil {
		middleware.WriteError(w, req, err, rr.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.RecommendationResponse{
		Data: homesToDTO(homes),
	})
}
