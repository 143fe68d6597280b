// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/sticky-board/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrNotFound),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway):
		return fmt.Errorf("%w: %w", ErrServerVersionUnavailable, err)
	}

	return err
}
