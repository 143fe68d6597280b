package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/models"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// relayStub is a minimal websocket endpoint that records every envelope the
// client writes and hands the server side of the connection to the test.
type relayStub struct {
	srv      *httptest.Server
	received chan models.Envelope
	conns    chan *websocket.Conn
}

func newRelayStub(t *testing.T) *relayStub {
	t.Helper()

	upgrader := websocket.Upgrader{}
	s := &relayStub{
		received: make(chan models.Envelope, 16),
		conns:    make(chan *websocket.Conn, 1),
	}
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != WebsocketPath {
			http.NotFound(w, r)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		s.conns <- conn
		for {
			var env models.Envelope
			if err := conn.ReadJSON(&env); err != nil {
				return
			}
			s.received <- env
		}
	}))
	t.Cleanup(s.srv.Close)

	return s
}

func newTestTransport(t *testing.T, address string) *wsTransport {
	t.Helper()

	tr, err := NewWebsocketTransport(config.ClientAdapter{
		HTTPAddress:    address,
		RequestTimeout: time.Second,
		WriteTimeout:   time.Second,
		PingInterval:   time.Second,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = tr.Close() })

	return tr.(*wsTransport)
}

func recv[T any](t *testing.T, ch <-chan T) T {
	t.Helper()
	select {
	case v := <-ch:
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for value")
	}
	var zero T
	return zero
}

func TestWebsocketTransport_EmitBeforeConnect(t *testing.T) {
	tr := newTestTransport(t, "localhost:1")

	err := tr.Emit(models.EventCreateSession, nil)
	assert.ErrorIs(t, err, ErrNotConnected)
}

func TestWebsocketTransport_ConnectErrorIsPublished(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	tr := newTestTransport(t, addr)
	errs := make(chan string, 1)
	tr.On(models.EventConnectError, func(payload json.RawMessage) {
		var msg string
		_ = json.Unmarshal(payload, &msg)
		errs <- msg
	})

	err := tr.Connect(context.Background())
	require.Error(t, err)
	assert.NotEmpty(t, recv(t, errs))
}

func TestWebsocketTransport_ConnectAndEmit(t *testing.T) {
	stub := newRelayStub(t)
	tr := newTestTransport(t, stub.srv.URL)

	connected := make(chan struct{}, 1)
	tr.On(models.EventConnect, func(json.RawMessage) { connected <- struct{}{} })

	require.NoError(t, tr.Connect(context.Background()))
	recv(t, connected)

	note := models.Note{ID: "n1", Content: "buy milk"}
	require.NoError(t, tr.Emit(models.EventCreateNote, models.CreateNoteRequest{Note: note, SessionCode: "ABC123"}))

	env := recv(t, stub.received)
	assert.Equal(t, models.EventCreateNote, env.Event)

	var req models.CreateNoteRequest
	require.NoError(t, json.Unmarshal(env.Data, &req))
	assert.Equal(t, note, req.Note)
	assert.Equal(t, "ABC123", req.SessionCode)
}

func TestWebsocketTransport_ConnectTwiceIsNoOp(t *testing.T) {
	stub := newRelayStub(t)
	tr := newTestTransport(t, stub.srv.URL)

	require.NoError(t, tr.Connect(context.Background()))
	recv(t, stub.conns)
	require.NoError(t, tr.Connect(context.Background()))

	select {
	case <-stub.conns:
		t.Fatal("second Connect dialled again")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWebsocketTransport_InboundDispatch(t *testing.T) {
	stub := newRelayStub(t)
	tr := newTestTransport(t, stub.srv.URL)

	deleted := make(chan string, 1)
	tr.On(models.EventNoteDeleted, func(payload json.RawMessage) {
		var id string
		_ = json.Unmarshal(payload, &id)
		deleted <- id
	})

	require.NoError(t, tr.Connect(context.Background()))
	server := recv(t, stub.conns)

	require.NoError(t, server.WriteMessage(websocket.TextMessage, []byte("not json")))
	require.NoError(t, server.WriteJSON(models.Envelope{Event: models.EventNoteDeleted, Data: json.RawMessage(`"n7"`)}))

	assert.Equal(t, "n7", recv(t, deleted))
}

func TestWebsocketTransport_Unsubscribe(t *testing.T) {
	stub := newRelayStub(t)
	tr := newTestTransport(t, stub.srv.URL)

	first := make(chan struct{}, 4)
	second := make(chan struct{}, 4)
	unsubscribe := tr.On(models.EventNoteCreated, func(json.RawMessage) { first <- struct{}{} })
	tr.On(models.EventNoteCreated, func(json.RawMessage) { second <- struct{}{} })

	require.NoError(t, tr.Connect(context.Background()))
	server := recv(t, stub.conns)

	require.NoError(t, server.WriteJSON(models.Envelope{Event: models.EventNoteCreated}))
	recv(t, first)
	recv(t, second)

	unsubscribe()
	unsubscribe()

	require.NoError(t, server.WriteJSON(models.Envelope{Event: models.EventNoteCreated}))
	recv(t, second)
	assert.Empty(t, first)
}

func TestWebsocketTransport_ServerCloseIsDisconnect(t *testing.T) {
	stub := newRelayStub(t)
	tr := newTestTransport(t, stub.srv.URL)

	disconnected := make(chan struct{}, 1)
	tr.On(models.EventDisconnect, func(json.RawMessage) { disconnected <- struct{}{} })

	require.NoError(t, tr.Connect(context.Background()))
	server := recv(t, stub.conns)
	require.NoError(t, server.Close())

	recv(t, disconnected)
	assert.ErrorIs(t, tr.Emit(models.EventCreateSession, nil), ErrNotConnected)
}

func TestWebsocketTransport_Close(t *testing.T) {
	stub := newRelayStub(t)
	tr := newTestTransport(t, stub.srv.URL)

	require.NoError(t, tr.Connect(context.Background()))
	recv(t, stub.conns)

	require.NoError(t, tr.Close())
	require.NoError(t, tr.Close())

	assert.ErrorIs(t, tr.Emit(models.EventCreateSession, nil), ErrTransportClosed)
	assert.ErrorIs(t, tr.Connect(context.Background()), ErrTransportClosed)
}

func TestWebsocketTransport_EmitUnencodablePayload(t *testing.T) {
	tr := newTestTransport(t, "localhost:1")

	err := tr.Emit(models.EventCreateNote, func() {})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotConnected)
}

func TestWebsocketURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:5000", want: "ws://localhost:5000/ws"},
		{in: "http://localhost:5000/", want: "ws://localhost:5000/ws"},
		{in: "https://board.example.org", want: "wss://board.example.org/ws"},
		{in: "ws://127.0.0.1:5000/board", want: "ws://127.0.0.1:5000/board/ws"},
		{in: "", wantErr: true},
		{in: "ftp://example.org", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := websocketURL(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
