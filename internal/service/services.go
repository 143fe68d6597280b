package service

import (
	"fmt"

	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/internal/store"
	"github.com/MKhiriev/sticky-board/internal/utils"
	"github.com/MKhiriev/sticky-board/internal/validators"
)

type Services struct {
	SessionService SessionService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) (*Services, error) {
	sessionSvc, err := NewSessionService(storages.SessionStore, utils.NewUUIDGenerator(), validators.NewNoteRequestValidator(), logger)
	if err != nil {
		return nil, fmt.Errorf("error creating session service: %w", err)
	}

	appInfoSvc, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		SessionService: sessionSvc,
		AppInfoService: appInfoSvc,
	}, nil
}
