package service

import (
	"github.com/MKhiriev/sticky-board/internal/adapter"
	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/internal/utils"
)

type ClientServices struct {
	BoardService   BoardService
	AppInfoService ClientAppInfoService
}

func NewClientServices(transport adapter.Emitter, info adapter.InfoAdapter, cfg config.ClientApp, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		BoardService:   NewBoardService(transport, utils.NewNoteIDGenerator(), cfg.SessionsEnabled, logger),
		AppInfoService: NewClientAppInfoService(info),
	}
}
