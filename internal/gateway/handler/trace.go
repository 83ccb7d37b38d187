package handler

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"synapse/internal/gateway/session"
	"synapse/internal/llm"
	"synapse/internal/trace"
)

type TraceHandler struct {
	tracer   *trace.Tracer
	sessions *session.Store
}

func NewTraceHandler(tracer *trace.Tracer, sessions *session.Store) *TraceHandler {
	return &TraceHandler{tracer: tracer, sessions: sessions}
}

type traceResponse struct {
	Stimulus   string       `json:"stimulus"`
	Result     trace.Result `json:"result"`
	Validation trace.Report `json:"validation"`
	Flowchart  string       `json:"flowchart"`
	ElapsedMS  int64        `json:"elapsed_ms"`
}

func toTraceResponse(tr *trace.Trace) traceResponse {
	return traceResponse{
		Stimulus:   tr.Stimulus,
		Result:     tr.Result,
		Validation: tr.Validation,
		Flowchart:  tr.Flowchart,
		ElapsedMS:  tr.Elapsed.Milliseconds(),
	}
}

func (h *TraceHandler) HandleTrace(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		Stimulus string `json:"stimulus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	stimulus := strings.TrimSpace(in.Stimulus)
	if stimulus == "" {
		http.Error(w, "stimulus is required", http.StatusBadRequest)
		return
	}

	sessionID := sessionIDFrom(r)
	w.Header().Set("X-Session-Id", sessionID)

	tr, err := h.tracer.Run(r.Context(), stimulus)
	if err != nil {
		var tErr *llm.TransportError
		var pErr *trace.ParseError
		switch {
		case errors.As(err, &tErr):
			http.Error(w, tErr.Error(), http.StatusBadGateway)
		case errors.As(err, &pErr):
			http.Error(w, pErr.Error(), http.StatusUnprocessableEntity)
		default:
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	h.sessions.Put(sessionID, tr)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toTraceResponse(tr))
}

func (h *TraceHandler) HandleLatest(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	sessionID := strings.TrimSpace(r.Header.Get("X-Session-Id"))
	if sessionID == "" {
		http.Error(w, "X-Session-Id is required", http.StatusBadRequest)
		return
	}
	tr, ok := h.sessions.Latest(sessionID)
	if !ok {
		http.Error(w, "no trace for session", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toTraceResponse(tr))
}

func sessionIDFrom(r *http.Request) string {
	if id := strings.TrimSpace(r.Header.Get("X-Session-Id")); id != "" {
		return id
	}
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
