package handler

import (
	"encoding/json"
	"net/http"

	"synapse/internal/catalog"
)

// ReferenceHandler serves the static reference panels and the example
// stimuli list consumed by the sidebar.
type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler { return &ReferenceHandler{} }

var exampleStimuli = []string{
	"Stubbing a toe",
	"Touching a hot pan",
	"Seeing a bright flash",
	"Hearing a loud bang",
	"Smelling fresh coffee",
	"Tasting something sour",
	"Stepping on a sharp object",
	"Feeling a cold breeze",
}

func (h *ReferenceHandler) HandleReference(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(catalog.Panels())
}

func (h *ReferenceHandler) HandleStimuli(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"stimuli": exampleStimuli,
	})
}
