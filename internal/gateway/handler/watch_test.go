package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"synapse/internal/gateway/session"
	"synapse/internal/llm"
	"synapse/internal/trace"
)

func dialWatch(t *testing.T, client llm.Client) *websocket.Conn {
	t.Helper()
	sessions := session.NewStore()
	h := NewWatchHandler(trace.New(client), sessions)
	srv := httptest.NewServer(http.HandlerFunc(h.HandleWatch))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/api/trace/watch"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHandleWatch_StartedThenResult(t *testing.T) {
	conn := dialWatch(t, llm.NewFakeClient())

	require.NoError(t, conn.WriteJSON(watchWSInbound{Stimulus: "Touching a hot pan"}))

	var first watchWSOutbound
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "started", first.Type)
	assert.Equal(t, "Touching a hot pan", first.Stimulus)

	var second watchWSOutbound
	require.NoError(t, conn.ReadJSON(&second))
	require.Equal(t, "result", second.Type)
	require.NotNil(t, second.Validation)
	assert.True(t, second.Validation.Valid)
	assert.True(t, strings.HasPrefix(second.Flowchart, "graph TD"))
}

func TestHandleWatch_ErrorEvent(t *testing.T) {
	conn := dialWatch(t, &llm.FakeClient{Raw: "not parseable"})

	require.NoError(t, conn.WriteJSON(watchWSInbound{Stimulus: "Stubbing a toe"}))

	var first watchWSOutbound
	require.NoError(t, conn.ReadJSON(&first))
	assert.Equal(t, "started", first.Type)

	var second watchWSOutbound
	require.NoError(t, conn.ReadJSON(&second))
	assert.Equal(t, "error", second.Type)
	assert.NotEmpty(t, second.Message)
}

func TestHandleWatch_EmptyStimulus(t *testing.T) {
	conn := dialWatch(t, llm.NewFakeClient())

	require.NoError(t, conn.WriteJSON(watchWSInbound{}))

	var out watchWSOutbound
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, "error", out.Type)
}
