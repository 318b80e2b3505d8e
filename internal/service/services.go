package service

import (
	"github.com/MKhiriev/go-sos-relay/internal/config"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/relay"
	"github.com/MKhiriev/go-sos-relay/internal/store"
	"github.com/MKhiriev/go-sos-relay/internal/utils"
	"github.com/MKhiriev/go-sos-relay/internal/validators"
	"github.com/MKhiriev/go-sos-relay/models"
)

// Services is the hub's service set.
type Services struct {
	HubService     HubService
	ImportService  ImportService
	AppInfoService AppInfoService
}

// NewServices builds the hub services. info describes the running build and
// must carry a version.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, info models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(info, logger)
	if err != nil {
		return nil, err
	}

	validator := validators.NewRecordValidator()
	replicas := NewReplicaService(storages.Replicas, logger)
	exports := NewExportService(replicas, relay.NewCodec(utils.NewCompactUUIDGenerator()), cfg.Policy(), logger)
	imports := NewImportService(replicas, relay.NewSessions(), validator, logger)

	return &Services{
		HubService:     NewHubService(storages.Rooms, replicas, exports, imports, validator, logger),
		ImportService:  imports,
		AppInfoService: appInfo,
	}, nil
}
