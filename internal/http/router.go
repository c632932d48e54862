package http

import (
	"net/http"
	"time"

	"log-catalog/internal/catalog"
	"log-catalog/internal/ingestors"
	"log-catalog/internal/shared/loggers"
	"log-catalog/internal/shared/metrics"
	"log-catalog/internal/shared/validators"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router. Queries go through logCatalog, which is
// usually the profiled catalog that also backs profiles.
func NewRouter(
	ingestionService ingestors.IngestionService,
	logCatalog catalog.LogCatalog,
	profiles catalog.ProfileSource,
	location *time.Location,
	httpLogger loggers.Logger,
) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	validate := validators.New()

	// Initialize handlers
	ingestLogHandler := NewIngestLogHandler(ingestionService)
	dateRangeHandler := NewDateRangeHandler(logCatalog, validate, location)
	levelQueryHandler := NewLevelQueryHandler(logCatalog, validate)
	businessQueryHandler := NewBusinessQueryHandler(logCatalog, validate)
	sessionQueryHandler := NewSessionQueryHandler(logCatalog, validate)
	profileHandler := NewProfileHandler(profiles)

	// Routes
	router.Post("/logs", errorHandlingAdapter(ingestLogHandler))
	router.Get("/logs", errorHandlingAdapter(dateRangeHandler))
	router.Get("/logs/levels/{level}", errorHandlingAdapter(levelQueryHandler))
	router.Get("/logs/businesses/{businessId}", errorHandlingAdapter(businessQueryHandler))
	router.Get("/logs/sessions/{sessionId}", errorHandlingAdapter(sessionQueryHandler))
	router.Get("/profiles", errorHandlingAdapter(profileHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
