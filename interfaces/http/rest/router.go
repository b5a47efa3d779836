package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"playbook-backend/application/commands/bus"
	querybus "playbook-backend/application/queries/bus"
	"playbook-backend/interfaces/http/rest/handlers"
	"playbook-backend/interfaces/http/rest/middleware"
	"playbook-backend/pkg/auth"
)

// Router creates and configures the HTTP router
type Router struct {
	commandBus   *bus.CommandBus
	queryBus     *querybus.QueryBus
	jwtValidator *auth.JWTValidator
	enableCORS   bool
	logger       *zap.Logger
}

// NewRouter creates a new router instance
func NewRouter(
	commandBus *bus.CommandBus,
	queryBus *querybus.QueryBus,
	jwtValidator *auth.JWTValidator,
	enableCORS bool,
	logger *zap.Logger,
) *Router {
	return &Router{
		commandBus:   commandBus,
		queryBus:     queryBus,
		jwtValidator: jwtValidator,
		enableCORS:   enableCORS,
		logger:       logger,
	}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(rt.logger))

	if rt.enableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check
	router.Get("/health", rt.healthCheck)
	router.Get("/ready", rt.readinessCheck)

	// API v1 routes
	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Authenticate(rt.jwtValidator, rt.logger))

		r.Route("/playbooks", func(r chi.Router) {
			playbookHandler := handlers.NewPlaybookHandler(rt.commandBus, rt.queryBus, rt.logger)
			r.Post("/validate", playbookHandler.ValidateGraph)
			r.Post("/", playbookHandler.CreatePlaybook)
			r.Get("/", playbookHandler.ListPlaybooks)
			r.Get("/{playbookID}", playbookHandler.GetPlaybook)
			r.Put("/{playbookID}", playbookHandler.UpdatePlaybookGraph)
			r.Delete("/{playbookID}", playbookHandler.DeletePlaybook)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

// readinessCheck handles readiness check requests
func (rt *Router) readinessCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ready"}`))
}
