// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/internal/utils"
	"github.com/MKhiriev/sticky-board/models"
	"github.com/gorilla/websocket"
)

const (
	maxFrameSize  = 64 << 10
	peerQueueSize = 64
)

// wsPeer is one websocket client. Send only queues; writePump owns all
// writes to conn.
type wsPeer struct {
	id   string
	conn *websocket.Conn

	send      chan models.Envelope
	done      chan struct{}
	closeOnce sync.Once
}

func newWSPeer(id string, conn *websocket.Conn) *wsPeer {
	return &wsPeer{
		id:   id,
		conn: conn,
		send: make(chan models.Envelope, peerQueueSize),
		done: make(chan struct{}),
	}
}

func (p *wsPeer) ID() string {
	return p.id
}

func (p *wsPeer) Send(env models.Envelope) error {
	select {
	case <-p.done:
		return ErrPeerClosed
	default:
	}

	select {
	case p.send <- env:
		return nil
	default:
		return ErrPeerQueueFull
	}
}

func (p *wsPeer) close() {
	p.closeOnce.Do(func() {
		close(p.done)
	})
}

func (h *Handler) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already answered the request
		log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	peer := newWSPeer(h.ids.Generate(), conn)
	ctx := utils.WithPeerID(r.Context(), peer.id)
	log = log.WithStr("peer", peer.id)

	sessions := h.services.SessionService
	sessions.Connect(ctx, peer)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.writePump(ctx, peer, log)
	}()

	h.readPump(ctx, peer, log)

	sessions.Disconnect(ctx, peer.id)
	peer.close()
	wg.Wait()
	_ = conn.Close()
}

func (h *Handler) readPump(ctx context.Context, peer *wsPeer, log *logger.Logger) {
	pongWait := 2 * h.pingInterval

	peer.conn.SetReadLimit(maxFrameSize)
	_ = peer.conn.SetReadDeadline(time.Now().Add(pongWait))
	peer.conn.SetPongHandler(func(string) error {
		return peer.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := peer.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Warn().Err(err).Msg("peer connection lost")
			}
			return
		}
		_ = peer.conn.SetReadDeadline(time.Now().Add(pongWait))

		var env models.Envelope
		if err = json.Unmarshal(raw, &env); err != nil {
			log.Warn().Err(err).Msg("skipping malformed frame")
			continue
		}

		if err = h.services.SessionService.Handle(ctx, peer.id, env); err != nil {
			log.Warn().Err(err).Str("event", string(env.Event)).Msg("event not applied")
		}
	}
}

// writePump ends when readPump is done or when ctx is cancelled by server
// shutdown. In the latter case it also closes the connection so readPump
// returns.
func (h *Handler) writePump(ctx context.Context, peer *wsPeer, log *logger.Logger) {
	ticker := time.NewTicker(h.pingInterval)
	defer ticker.Stop()

	closeFrame := func(code int) {
		msg := websocket.FormatCloseMessage(code, "")
		_ = peer.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(h.writeTimeout))
	}

	for {
		select {
		case <-peer.done:
			closeFrame(websocket.CloseNormalClosure)
			return
		case <-ctx.Done():
			closeFrame(websocket.CloseGoingAway)
			peer.close()
			_ = peer.conn.Close()
			return
		case env := <-peer.send:
			_ = peer.conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := peer.conn.WriteJSON(env); err != nil {
				h.abort(peer, log, err)
				return
			}
		case <-ticker.C:
			if err := peer.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(h.writeTimeout)); err != nil {
				h.abort(peer, log, err)
				return
			}
		}
	}
}

// abort closes the connection after a failed write so readPump unblocks.
func (h *Handler) abort(peer *wsPeer, log *logger.Logger, err error) {
	if !errors.Is(err, websocket.ErrCloseSent) {
		log.Warn().Err(err).Msg("write to peer failed")
	}
	peer.close()
	_ = peer.conn.Close()
}
