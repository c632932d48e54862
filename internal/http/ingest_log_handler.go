package http

import (
	"net/http"

	"log-catalog/internal/ingestors"
)

type AppHttpHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) error
}

// IngestLogResponse is the body of a successful POST /logs.
type IngestLogResponse struct {
	BatchID      string        `json:"batchId"`
	Ingested     int           `json:"ingested"`
	SkippedBlank int           `json:"skippedBlank"`
	Failures     []LineFailure `json:"failures"`
}

// LineFailure describes one rejected line of an ingested batch.
type LineFailure struct {
	LineNumber int    `json:"lineNumber"`
	Reason     string `json:"reason"`
	Line       string `json:"line"`
	Error      string `json:"error"`
}

type ingestLogHandler struct {
	ingestionService ingestors.IngestionService
}

func NewIngestLogHandler(ingestionService ingestors.IngestionService) AppHttpHandler {
	return &ingestLogHandler{
		ingestionService: ingestionService,
	}
}

// Handle processes POST /logs requests.
func (h *ingestLogHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	result, err := h.ingestionService.IngestText(r.Context(), idempotencyKey(r), contentType(r), r.Body)
	if err != nil {
		return err
	}

	response := IngestLogResponse{
		BatchID:      result.BatchID,
		Ingested:     result.Ingested,
		SkippedBlank: result.SkippedBlank,
		Failures:     make([]LineFailure, 0, len(result.Failures)),
	}
	for _, failure := range result.Failures {
		response.Failures = append(response.Failures, LineFailure{
			LineNumber: failure.LineNumber,
			Reason:     string(failure.Reason),
			Line:       failure.Line,
			Error:      failure.Error(),
		})
	}

	writeJSON(w, r, http.StatusOK, response)
	return nil
}
