package server

import (
	"net/http"

	"synapse/internal/gateway/handler"
	"synapse/internal/gateway/middleware"
)

func NewMux(
	traceHandler *handler.TraceHandler,
	referenceHandler *handler.ReferenceHandler,
	watchHandler *handler.WatchHandler,
) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/trace", traceHandler.HandleTrace)
	mux.HandleFunc("/api/trace/latest", traceHandler.HandleLatest)
	mux.HandleFunc("/api/trace/watch", watchHandler.HandleWatch)
	mux.HandleFunc("/api/reference", referenceHandler.HandleReference)
	mux.HandleFunc("/api/stimuli", referenceHandler.HandleStimuli)

	return middleware.CORS(mux)
}
