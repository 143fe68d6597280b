// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/sticky-board/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, serverVersion string) string {
	var b strings.Builder

	b.WriteString("Application: sticky-board\n")
	b.WriteString("Version: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\nDate: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\nCommit: ")
	b.WriteString(valueOrNA(info.BuildCommit()))
	b.WriteString("\nServer version: ")
	b.WriteString(valueOrNA(serverVersion))

	return overlayBoxStyle.Render(renderPage("ABOUT", b.String(), helpLine(keys.esc)))
}
