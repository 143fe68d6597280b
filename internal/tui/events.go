// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"encoding/json"
	"sync"

	"github.com/MKhiriev/sticky-board/internal/adapter"
	"github.com/MKhiriev/sticky-board/models"
	tea "github.com/charmbracelet/bubbletea"
)

// inboundEvents are the relay events the board reacts to.
var inboundEvents = []models.Event{
	models.EventConnect,
	models.EventConnectError,
	models.EventDisconnect,
	models.EventSessionCreated,
	models.EventSessionJoined,
	models.EventSessionError,
	models.EventNoteCreated,
	models.EventNoteDeleted,
	models.EventNotePositionUpdated,
}

const eventBufferSize = 128

// eventBridge moves transport callbacks into the bubbletea loop. Handlers run
// on the transport's reader goroutine and only enqueue; the board state is
// touched exclusively from Update.
type eventBridge struct {
	ch     chan inboundMsg
	done   chan struct{}
	unsubs []func()
	once   sync.Once
}

func newEventBridge(source adapter.EventSource, events ...models.Event) *eventBridge {
	b := &eventBridge{
		ch:   make(chan inboundMsg, eventBufferSize),
		done: make(chan struct{}),
	}
	for _, event := range events {
		b.unsubs = append(b.unsubs, source.On(event, func(payload json.RawMessage) {
			select {
			case b.ch <- inboundMsg{event: event, payload: payload}:
			case <-b.done:
			}
		}))
	}
	return b
}

// wait returns a command that delivers the next inbound event. It must be
// re-issued after every inboundMsg.
func (b *eventBridge) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.ch:
			return msg
		case <-b.done:
			return nil
		}
	}
}

// close removes all subscriptions and releases any blocked handler.
func (b *eventBridge) close() {
	b.once.Do(func() {
		for _, unsubscribe := range b.unsubs {
			if unsubscribe != nil {
				unsubscribe()
			}
		}
		close(b.done)
	})
}
