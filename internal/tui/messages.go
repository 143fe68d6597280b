package tui

import (
	"encoding/json"

	"github.com/MKhiriev/sticky-board/models"
)

// inboundMsg carries one event received from the relay into the update loop.
type inboundMsg struct {
	event   models.Event
	payload json.RawMessage
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	seq int
}
