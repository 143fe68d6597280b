package service

import (
	"context"

	"github.com/MKhiriev/sticky-board/internal/adapter"
)

type clientAppInfoService struct {
	info adapter.InfoAdapter
}

func NewClientAppInfoService(info adapter.InfoAdapter) ClientAppInfoService {
	return &clientAppInfoService{info: info}
}

func (s *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.info.ServerVersion(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	if version == "" {
		return "", ErrServerVersionUnavailable
	}
	return version, nil
}
