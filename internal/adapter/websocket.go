package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/models"
	"github.com/gorilla/websocket"
)

const (
	sendQueueSize       = 64
	defaultWriteTimeout = 10 * time.Second
	defaultPingInterval = 30 * time.Second
)

type subscription struct {
	id      uint64
	handler Handler
}

// wsConn is one dialled connection. It is dropped exactly once, by whichever
// of the reader, the writer or Close notices the end first.
type wsConn struct {
	conn *websocket.Conn
	stop chan struct{}
	once sync.Once
}

type wsTransport struct {
	url          string
	dialer       *websocket.Dialer
	writeTimeout time.Duration
	pingInterval time.Duration

	mu       sync.RWMutex
	handlers map[models.Event][]subscription
	nextID   uint64
	current  *wsConn
	closed   bool

	send      chan models.Envelope
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup

	logger *logger.Logger
}

// NewWebsocketTransport constructs a gorilla/websocket implementation of
// [BoardTransport] for the relay at cfg.HTTPAddress. Nothing is dialled until
// Connect.
func NewWebsocketTransport(cfg config.ClientAdapter, logger *logger.Logger) (BoardTransport, error) {
	wsURL, err := websocketURL(cfg.HTTPAddress)
	if err != nil {
		return nil, err
	}

	t := &wsTransport{
		url: wsURL,
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: cfg.RequestTimeout,
		},
		writeTimeout: cfg.WriteTimeout,
		pingInterval: cfg.PingInterval,
		handlers:     make(map[models.Event][]subscription),
		send:         make(chan models.Envelope, sendQueueSize),
		done:         make(chan struct{}),
		logger:       logger,
	}
	if t.writeTimeout <= 0 {
		t.writeTimeout = defaultWriteTimeout
	}
	if t.pingInterval <= 0 {
		t.pingInterval = defaultPingInterval
	}

	return t, nil
}

// Connect implements [BoardTransport]. A second call while connected is a
// no-op. There is no automatic reconnect.
func (t *wsTransport) Connect(ctx context.Context) error {
	t.mu.RLock()
	closed, connected := t.closed, t.current != nil
	t.mu.RUnlock()
	if closed {
		return ErrTransportClosed
	}
	if connected {
		return nil
	}

	conn, _, err := t.dialer.DialContext(ctx, t.url, nil)
	if err != nil {
		t.logger.Error().Err(err).Str("url", t.url).Msg("connection error")
		t.dispatchLocal(models.EventConnectError, err.Error())
		return fmt.Errorf("dial %s: %w", t.url, err)
	}

	c := &wsConn{conn: conn, stop: make(chan struct{})}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		_ = conn.Close()
		return ErrTransportClosed
	}
	t.current = c
	t.mu.Unlock()

	t.wg.Add(2)
	go t.readLoop(c)
	go t.writeLoop(c)

	t.logger.Info().Str("url", t.url).Msg("connected to relay")
	t.dispatchLocal(models.EventConnect, nil)

	return nil
}

// Emit implements [Emitter]. The frame is queued; write errors surface later
// as a dropped connection.
func (t *wsTransport) Emit(event models.Event, payload any) error {
	env, err := models.NewEnvelope(event, payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", event, err)
	}

	t.mu.RLock()
	closed, connected := t.closed, t.current != nil
	t.mu.RUnlock()
	if closed {
		return ErrTransportClosed
	}
	if !connected {
		return ErrNotConnected
	}

	select {
	case <-t.done:
		return ErrTransportClosed
	case t.send <- env:
		return nil
	default:
		return ErrSendQueueFull
	}
}

// On implements [EventSource].
func (t *wsTransport) On(event models.Event, handler Handler) func() {
	t.mu.Lock()
	t.nextID++
	id := t.nextID
	t.handlers[event] = append(t.handlers[event], subscription{id: id, handler: handler})
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			t.mu.Lock()
			defer t.mu.Unlock()

			subs := slices.DeleteFunc(t.handlers[event], func(s subscription) bool {
				return s.id == id
			})
			if len(subs) == 0 {
				delete(t.handlers, event)
				return
			}
			t.handlers[event] = subs
		})
	}
}

// Close implements [BoardTransport].
func (t *wsTransport) Close() error {
	t.closeOnce.Do(func() {
		t.mu.Lock()
		t.closed = true
		c := t.current
		t.mu.Unlock()

		close(t.done)

		if c != nil {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = c.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(t.writeTimeout))
			t.drop(c, nil)
		}
	})

	t.wg.Wait()
	return nil
}

func (t *wsTransport) readLoop(c *wsConn) {
	defer t.wg.Done()

	pongWait := 2 * t.pingInterval
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			t.drop(c, err)
			return
		}
		_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))

		var env models.Envelope
		if err = json.Unmarshal(raw, &env); err != nil {
			t.logger.Warn().Err(err).Msg("skipping malformed frame")
			continue
		}
		t.dispatch(env.Event, env.Data)
	}
}

func (t *wsTransport) writeLoop(c *wsConn) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stop:
			return
		case <-t.done:
			return
		case env := <-t.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(t.writeTimeout))
			if err := c.conn.WriteJSON(env); err != nil {
				t.drop(c, fmt.Errorf("write %s: %w", env.Event, err))
				return
			}
		case <-ticker.C:
			if err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(t.writeTimeout)); err != nil {
				t.drop(c, fmt.Errorf("ping: %w", err))
				return
			}
		}
	}
}

func (t *wsTransport) drop(c *wsConn, cause error) {
	c.once.Do(func() {
		close(c.stop)
		_ = c.conn.Close()

		t.mu.Lock()
		if t.current == c {
			t.current = nil
		}
		t.mu.Unlock()

		reason := "closed"
		if isUnexpectedClose(cause) {
			reason = cause.Error()
			t.logger.Error().Err(cause).Msg("relay connection lost")
		} else {
			t.logger.Info().Msg("relay connection closed")
		}
		t.dispatchLocal(models.EventDisconnect, reason)
	})
}

func isUnexpectedClose(err error) bool {
	if err == nil || errors.Is(err, net.ErrClosed) {
		return false
	}
	return !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}

func (t *wsTransport) dispatch(event models.Event, payload json.RawMessage) {
	t.mu.RLock()
	subs := slices.Clone(t.handlers[event])
	t.mu.RUnlock()

	if len(subs) == 0 {
		t.logger.Debug().Str("event", string(event)).Msg("no handler for event")
		return
	}

	for _, s := range subs {
		s.handler(payload)
	}
}

func (t *wsTransport) dispatchLocal(event models.Event, payload any) {
	var raw json.RawMessage
	if payload != nil {
		raw, _ = json.Marshal(payload)
	}
	t.dispatch(event, raw)
}
