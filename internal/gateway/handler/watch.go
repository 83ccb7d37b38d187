package handler

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"synapse/internal/gateway/session"
	"synapse/internal/trace"
)

// WatchHandler runs a trace over a websocket so the browser can show
// progress while the completion call blocks: a "started" event is
// pushed immediately, then either "result" or "error".
type WatchHandler struct {
	tracer   *trace.Tracer
	sessions *session.Store
}

func NewWatchHandler(tracer *trace.Tracer, sessions *session.Store) *WatchHandler {
	return &WatchHandler{tracer: tracer, sessions: sessions}
}

const (
	watchWSWriteWait = 10 * time.Second
	watchWSPongWait  = 60 * time.Second
	watchWSPingEvery = (watchWSPongWait * 9) / 10
)

var watchWSUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(_ *http.Request) bool {
		return true
	},
}

type watchWSInbound struct {
	Stimulus string `json:"stimulus"`
}

type watchWSOutbound struct {
	Type       string        `json:"type"`
	Stimulus   string        `json:"stimulus,omitempty"`
	Result     trace.Result  `json:"result,omitempty"`
	Validation *trace.Report `json:"validation,omitempty"`
	Flowchart  string        `json:"flowchart,omitempty"`
	ElapsedMS  int64         `json:"elapsed_ms,omitempty"`
	Message    string        `json:"message,omitempty"`
}

func (h *WatchHandler) HandleWatch(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFrom(r)

	conn, err := watchWSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	if err := conn.SetReadDeadline(time.Now().Add(watchWSPongWait)); err != nil {
		log.Printf("watch ws set read deadline failed: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(watchWSPongWait))
	})

	writeCh := make(chan watchWSOutbound, 8)
	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		ticker := time.NewTicker(watchWSPingEvery)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case out := <-writeCh:
				if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteJSON(out); err != nil {
					return
				}
			case <-ticker.C:
				if err := conn.SetWriteDeadline(time.Now().Add(watchWSWriteWait)); err != nil {
					return
				}
				if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
					return
				}
			}
		}
	}()

	for {
		var in watchWSInbound
		if err := conn.ReadJSON(&in); err != nil {
			break
		}
		stimulus := strings.TrimSpace(in.Stimulus)
		if stimulus == "" {
			pushWatchWS(ctx, writeCh, watchWSOutbound{Type: "error", Message: "stimulus is required"})
			continue
		}

		pushWatchWS(ctx, writeCh, watchWSOutbound{Type: "started", Stimulus: stimulus})

		tr, err := h.tracer.Run(ctx, stimulus)
		if err != nil {
			pushWatchWS(ctx, writeCh, watchWSOutbound{Type: "error", Stimulus: stimulus, Message: err.Error()})
			continue
		}
		h.sessions.Put(sessionID, tr)

		validation := tr.Validation
		pushWatchWS(ctx, writeCh, watchWSOutbound{
			Type:       "result",
			Stimulus:   tr.Stimulus,
			Result:     tr.Result,
			Validation: &validation,
			Flowchart:  tr.Flowchart,
			ElapsedMS:  tr.Elapsed.Milliseconds(),
		})
	}

	cancel()
	<-writerDone
}

func pushWatchWS(ctx context.Context, ch chan<- watchWSOutbound, out watchWSOutbound) {
	select {
	case <-ctx.Done():
	case ch <- out:
	}
}
