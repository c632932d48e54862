package http

import (
	"net/http"

	"log-catalog/internal/catalog"
)

type profileHandler struct {
	profiles catalog.ProfileSource
}

func NewProfileHandler(profiles catalog.ProfileSource) AppHttpHandler {
	return &profileHandler{profiles: profiles}
}

// Handle processes GET /profiles requests.
func (h *profileHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, r, http.StatusOK, h.profiles.Profiles())
	return nil
}
