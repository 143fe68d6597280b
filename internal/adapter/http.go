package adapter

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/sticky-board/internal/config"
	"github.com/MKhiriev/sticky-board/internal/logger"
	"github.com/MKhiriev/sticky-board/internal/utils"
)

type httpInfoAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPInfoAdapter constructs the resty-backed [InfoAdapter]. The relay
// address in cfg is normalised the same way the websocket transport does it.
func NewHTTPInfoAdapter(cfg config.ClientAdapter, logger *logger.Logger) (InfoAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpInfoAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

// ServerVersion implements [InfoAdapter] with GET /api/version/.
func (h *httpInfoAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("server version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
