// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-sos-relay/internal/service"
)

// humanizeHubError turns transport failures into a message a person under
// stress can act on.
func humanizeHubError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, service.ErrHubDisabled) {
		return "No hub configured. Share data over QR codes instead"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the hub is unreachable. Data stays on this device"
	}

	return err.Error()
}
