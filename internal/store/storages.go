package store

import "github.com/MKhiriev/sticky-board/internal/logger"

type Storages struct {
	SessionStore SessionStore
}

func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		SessionStore: NewMemorySessionStore(logger),
	}
}
