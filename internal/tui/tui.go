// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal interface of the relay client.
//
// Every screen is a bubbletea model registered as a page of [RootModel].
// Screens only talk to the client services; they never touch storage or the
// hub directly.
package tui

import (
	"context"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/qr"
	"github.com/MKhiriev/go-sos-relay/internal/service"
	"github.com/MKhiriev/go-sos-relay/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	renderer  qr.Renderer
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, renderer qr.Renderer, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		services:  services,
		renderer:  renderer,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// MainLoop runs the interface until the user quits.
func (t *TUI) MainLoop(ctx context.Context) error {
	root := NewRootModel(t.pages(ctx), pageMenu, t.buildInfo)
	if _, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		t.logger.Err(err).Str("func", "TUI.MainLoop").Msg("terminal program stopped")
		return err
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	s := t.services
	return map[string]tea.Model{
		pageMenu:     NewMenuModel(),
		pageShelters: newSheltersModel(ctx, s.ShelterService),
		pageRescue:   newRescueModel(ctx, s.RescueService),
		pageFamily:   newFamilyModel(ctx, s.FamilyService),
		pageHealth:   newHealthModel(ctx, s.HealthService),
		pageMessages: newChatModel(ctx, s.MessageService),
		pageExport:   newExportModel(ctx, s.ExportService, t.renderer),
		pageImport:   newImportModel(ctx, s.ImportService),
		pageSync:     newSyncModel(ctx, s.HubSyncService),
		pageRoom:     newRoomModel(ctx, s.RoomService),
	}
}
