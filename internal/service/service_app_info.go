package service

import (
	"context"

	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/models"
)

type appInfoService struct {
	info models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService fails when the build carries no version; a hub that
// cannot name its build is misconfigured.
func NewAppInfoService(info models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if info.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}
	if info.Protocol == "" {
		info.Protocol = models.ProtocolVersion
	}

	logger.Info().Str("func", "NewAppInfoService").Str("version", info.Version).Str("protocol", info.Protocol).Msg("hub build")
	return &appInfoService{info: info, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.info.Version
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.info
}
