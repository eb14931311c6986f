// Package v1 provides the v1 API routes.
package v1

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	housing "github.com/ynstf/boston-housing-api"
	"github.com/ynstf/boston-housing-api/application/service"
	"github.com/ynstf/boston-housing-api/domain/home"
	"github.com/ynstf/boston-housing-api/infrastructure/api/middleware"
	"github.com/ynstf/boston-housing-api/infrastructure/api/v1/dto"
)

// HomesRouter handles housing record API endpoints.
type HomesRouter struct {
	client *housing.Client
	logger *slog.Logger
}

// NewHomesRouter creates a new HomesRouter.
func NewHomesRouter(client *housing.Client) *HomesRouter {
	return &HomesRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for housing record endpoints.
func (h *HomesRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.List)
	router.Post("/", h.Create)

	return router
}

// List handles GET /homes.
//
//	@Summary		List homes
//	@Description	Get stored housing records in insertion order
//	@Tags			homes
//	@Produce		json
//	@Param			skip	query	int	false	"Records to skip (default: 0)"
//	@Param			limit	query	int	false	"Maximum records to return (default: 100)"
//	@Success		200	{object}	dto.HomeListResponse
//	@Failure		500	{object}	middleware.APIErrorResponse
//	@Router			/homes [get]
func (h *HomesRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	params := ParseListParams(req)

	homes, err := h.client.Homes.List(ctx, params.Skip(), params.Limit())
	if err != nil {
		middleware.WriteError(w, req, err, h.logger)
		return
	}

	total, err := h.client.Homes.Count(ctx)
	if err != nil {
		middleware.WriteError(w, req, err, h.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, dto.HomeListResponse{
		Data: homesToDTO(homes),
		Meta: dto.HomeListMeta{
			Skip:  params.Skip(),
			Limit: params.Limit(),
			Total: total,
		},
	})
}

// Create handles POST /homes.
//
//	@Summary		Create home
//	@Description	Store a new housing record including its known median value
//	@Tags			homes
//	@Accept			json
//	@Produce		json
//	@Param			body	body		dto.HomeCreateRequest	true	"Housing record"
//	@Success		201		{object}	dto.HomeData
//	@Failure		400		{object}	middleware.APIErrorResponse
//	@Failure		500		{object}	middleware.APIErrorResponse
//	@Security		APIKeyAuth
//	@Router			/homes [post]
func (h *HomesRouter) Create(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()

	var body dto.HomeCreateRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req,
			middleware.NewRequestError(http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err)),
			h.logger)
		return
	}

	if missing := body.MissingFields(); len(missing) > 0 {
		middleware.WriteError(w, req,
			middleware.NewRequestError(http.StatusBadRequest,
				fmt.Sprintf("missing required fields: %s", strings.Join(missing, ", "))),
			h.logger)
		return
	}

	saved, err := h.client.Homes.Create(ctx, service.HomeCreateParams{
		Rooms:              *body.RM,
		LowStatusPct:       *body.LStat,
		EmploymentDistance: *body.Dis,
		TaxRate:            *body.Tax,
		PupilTeacherRatio:  *body.PTRatio,
		Age:                *body.Age,
		IndustrialPct:      *body.Indus,
		MedianValue:        *body.Medv,
	})
	if err != nil {
		middleware.WriteError(w, req, err, h.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusCreated, homeToDTO(saved))
}

func homeToDTO(h home.Home) dto.HomeData {
	f := h.Features()
	return dto.HomeData{
		ID:      h.ID(),
		RM:      f.Rooms(),
		LStat:   f.LowStatusPct(),
		Dis:     f.EmploymentDistance(),
		Tax:     f.TaxRate(),
		PTRatio: f.PupilTeacherRatio(),
		Age:     f.Age(),
		Indus:   f.IndustrialPct(),
		Medv:    h.MedianValue(),
	}
}

func homesToDTO(homes []home.Home) []dto.HomeData {
	data := make([]dto.HomeData, 0, len(homes))
	for _, h := range homes {
		data = append(data, homeToDTO(h))
	}
	return data
}
