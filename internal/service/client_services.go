package service

import (
	"github.com/MKhiriev/go-sos-relay/internal/adapter"
	"github.com/MKhiriev/go-sos-relay/internal/config"
	"github.com/MKhiriev/go-sos-relay/internal/crypto"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/relay"
	"github.com/MKhiriev/go-sos-relay/internal/store"
	"github.com/MKhiriev/go-sos-relay/internal/utils"
	"github.com/MKhiriev/go-sos-relay/internal/validators"
)

// ClientServices is the device's service set. HubSyncService is always set;
// without a hub adapter it fails with ErrHubDisabled.
type ClientServices struct {
	ReplicaService ReplicaService
	RoomService    RoomService
	ExportService  ExportService
	ImportService  ImportService
	ShelterService ShelterService
	RescueService  RescueService
	FamilyService  FamilyService
	HealthService  HealthService
	MessageService MessageService
	HubSyncService HubSyncService
}

func NewClientServices(storages *store.Storages, hub adapter.HubAdapter, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	validator := validators.NewRecordValidator()
	cipher := crypto.NewRoomCipher()

	replicas := NewReplicaService(storages.Replicas, logger)
	preset, _ := cfg.PresetRoom()
	rooms := NewRoomService(storages.Rooms, cipher, validator, preset, logger)
	messages := NewClientMessageService(replicas, rooms, cipher, validator, cfg.App.DeviceName, logger)

	return &ClientServices{
		ReplicaService: replicas,
		RoomService:    rooms,
		ExportService:  NewExportService(replicas, relay.NewCodec(utils.NewCompactUUIDGenerator()), cfg.Policy(), logger),
		ImportService:  NewImportService(replicas, relay.NewSessions(), validator, logger),
		ShelterService: NewClientShelterService(replicas, validator, logger),
		RescueService:  NewClientRescueService(replicas, validator, logger),
		FamilyService:  NewClientFamilyService(replicas, validator, logger),
		HealthService:  NewClientHealthService(replicas, validator, logger),
		MessageService: messages,
		HubSyncService: NewClientHubSyncService(replicas, rooms, messages, hub, validator, logger),
	}
}
