package http

import (
	"net/http"
	"strings"
	"time"

	"log-catalog/internal/catalog"
	"log-catalog/internal/models"
	"log-catalog/internal/parsers"
	"log-catalog/internal/shared/validators"

	"github.com/go-chi/chi/v5"
)

const (
	paramLevel      = "level"
	paramBusinessID = "businessId"
	paramSessionID  = "sessionId"
	paramFrom       = "from"
	paramTo         = "to"
)

type levelQuery struct {
	Level string `validate:"required,loglevel"`
}

type idQuery struct {
	ID string `validate:"required,alphanum"`
}

type dateRangeQuery struct {
	From string `validate:"required,datetime=2006-01-02 15:04:05"`
	To   string `validate:"required,datetime=2006-01-02 15:04:05"`
}

// queryLogHandler serves GET /logs/levels/{level}, /logs/businesses/{businessId} and
// /logs/sessions/{sessionId}.
type queryLogHandler struct {
	logCatalog catalog.LogCatalog
	validate   *validators.Validate
	param      string
}

func NewLevelQueryHandler(logCatalog catalog.LogCatalog, validate *validators.Validate) AppHttpHandler {
	return &queryLogHandler{logCatalog: logCatalog, validate: validate, param: paramLevel}
}

func NewBusinessQueryHandler(logCatalog catalog.LogCatalog, validate *validators.Validate) AppHttpHandler {
	return &queryLogHandler{logCatalog: logCatalog, validate: validate, param: paramBusinessID}
}

func NewSessionQueryHandler(logCatalog catalog.LogCatalog, validate *validators.Validate) AppHttpHandler {
	return &queryLogHandler{logCatalog: logCatalog, validate: validate, param: paramSessionID}
}

func (h *queryLogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	value := chi.URLParam(r, h.param)

	var records []*models.Record
	switch h.param {
	case paramLevel:
		query := levelQuery{Level: strings.ToUpper(strings.TrimSpace(value))}
		if err := h.validate.Struct(&query); err != nil {
			return errInvalidQuery(err)
		}
		records = h.logCatalog.GetLogsByLogLevel(query.Level)
	case paramBusinessID:
		if err := h.validate.Struct(&idQuery{ID: value}); err != nil {
			return errInvalidQuery(err)
		}
		records = h.logCatalog.GetLogsByBusiness(value)
	default:
		if err := h.validate.Struct(&idQuery{ID: value}); err != nil {
			return errInvalidQuery(err)
		}
		records = h.logCatalog.GetLogsBySession(value)
	}

	writeJSON(w, r, http.StatusOK, records)
	return nil
}

// dateRangeHandler serves GET /logs?from=...&to=... with inclusive bounds read in the catalog's
// timezone.
type dateRangeHandler struct {
	logCatalog catalog.LogCatalog
	validate   *validators.Validate
	location   *time.Location
}

func NewDateRangeHandler(logCatalog catalog.LogCatalog, validate *validators.Validate, location *time.Location) AppHttpHandler {
	return &dateRangeHandler{logCatalog: logCatalog, validate: validate, location: location}
}

func (h *dateRangeHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	query := dateRangeQuery{
		From: r.URL.Query().Get(paramFrom),
		To:   r.URL.Query().Get(paramTo),
	}
	if err := h.validate.Struct(&query); err != nil {
		return errInvalidQuery(err)
	}

	// both values passed the datetime check above
	start, _ := time.ParseInLocation(parsers.TimestampLayout, query.From, h.location)
	end, _ := time.ParseInLocation(parsers.TimestampLayout, query.To, h.location)

	records, err := h.logCatalog.GetLogsByDateRange(start, end)
	if err != nil {
		return err
	}

	writeJSON(w, r, http.StatusOK, records)
	return nil
}
