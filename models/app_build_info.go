// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AppBuildInfo describes a build of the relay binaries. The hub serves it
// from /api/version and the client shows it in its about window.
//
// Version, Date and Commit are injected by linker flags. Protocol is the
// QR envelope version the build produces, so two devices can tell whether
// their codes are interchangeable.
type AppBuildInfo struct {
	Version  string `json:"version"`
	Date     string `json:"date,omitempty"`
	Commit   string `json:"commit,omitempty"`
	Protocol string `json:"protocol"`
}

// NewAppBuildInfo constructs [AppBuildInfo] for the current envelope version.
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version:  version,
		Date:     date,
		Commit:   commit,
		Protocol: ProtocolVersion,
	}
}

// SameProtocol reports whether codes exported by other can be read by this
// build.
func (a AppBuildInfo) SameProtocol(other AppBuildInfo) bool {
	return a.Protocol == other.Protocol
}
