// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package qr renders export parts as QR codes, either as PNG images for the
// hub's HTTP API or as block characters for the terminal UI.
package qr

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
)

// DefaultSize is the PNG edge length in pixels.
const DefaultSize = 512

var (
	ErrEmptyText   = errors.New("nothing to encode")
	ErrUnencodable = errors.New("text does not fit in a QR code")
)

// Renderer encodes one export part as a visual code.
type Renderer interface {
	PNG(text string) ([]byte, error)
	Terminal(text string) (string, error)
}

type renderer struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewRenderer returns a Renderer producing PNGs of size pixels. Medium error
// recovery still fits a full default-policy part in one code.
func NewRenderer(size int) Renderer {
	if size <= 0 {
		size = DefaultSize
	}
	return &renderer{size: size, level: qrcode.Medium}
}

func (r *renderer) PNG(text string) ([]byte, error) {
	code, err := r.encode(text)
	if err != nil {
		return nil, err
	}
	png, err := code.PNG(r.size)
	if err != nil {
		return nil, fmt.Errorf("render png: %w", err)
	}
	return png, nil
}

// Terminal renders the code with half-block characters, two modules per
// character cell.
func (r *renderer) Terminal(text string) (string, error) {
	code, err := r.encode(text)
	if err != nil {
		return "", err
	}
	return code.ToSmallString(false), nil
}

func (r *renderer) encode(text string) (*qrcode.QRCode, error) {
	if text == "" {
		return nil, ErrEmptyText
	}
	code, err := qrcode.New(text, r.level)
	if err != nil {
		return nil, fmt.Errorf("%w (%d bytes): %w", ErrUnencodable, len(text), err)
	}
	return code, nil
}
