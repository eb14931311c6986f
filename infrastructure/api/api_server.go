package api

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	housing "github.com/ynstf/boston-housing-api"
	apimiddleware "github.com/ynstf/boston-housing-api/infrastructure/api/middleware"
	v1 "github.com/ynstf/boston-housing-api/infrastructure/api/v1"
)

// APIServer provides the HTTP API backed by a housing Client.
type APIServer struct {
	client *housing.Client
	router chi.Router
	logger *slog.Logger
}

// NewAPIServer creates a new APIServer wired to the given client.
// When the client has API keys configured, mutating endpoints require a
// valid X-API-KEY header; reads, prediction, and recommendation remain
// open.
func NewAPIServer(client *housing.Client) *APIServer {
	return &APIServer{
		client: client,
		logger: client.Logger(),
	}
}

// Router returns the chi router for customization before mounting.
// Call this first, add custom middleware with router.Use(), then call
// MountRoutes().
func (a *APIServer) Router() chi.Router {
	if a.router == nil {
		a.router = chi.NewRouter()
	}
	return a.router
}

// MountRoutes wires up all API routes on the router. Call this after
// adding any custom middleware via Router().Use().
func (a *APIServer) MountRoutes() {
	router := a.Router()

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-API-KEY", "X-Correlation-ID"},
		MaxAge:         300,
	}))
	router.Use(chimiddleware.Timeout(60 * time.Second))
	router.Use(apimiddleware.WriteProtectAuth(a.client.APIKeys()))

	homesRouter := v1.NewHomesRouter(a.client)
	predictionsRouter := v1.NewPredictionsRouter(a.client)
	recommendationsRouter := v1.NewRecommendationsRouter(a.client)

	router.Mount("/homes", homesRouter.Routes())
	router.Mount("/predict", predictionsRouter.Routes())
	router.Mount("/recommendation", recommendationsRouter.Routes())
}
