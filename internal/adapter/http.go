package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-sos-relay/internal/config"
	"github.com/MKhiriev/go-sos-relay/internal/logger"
	"github.com/MKhiriev/go-sos-relay/internal/utils"
	"github.com/MKhiriev/go-sos-relay/models"
)

const (
	roomsPath      = "/api/rooms"
	collectionPath = "/api/rooms/{roomID}/collections/{collection}"
)

type httpHubAdapter struct {
	client *utils.HTTPClient

	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewHTTPHubAdapter constructs an HTTP/REST implementation of [HubAdapter].
// Tokens are signed locally with the room key, so no login round-trip is
// needed; the hub checks them against the key it registered for the room.
func NewHTTPHubAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (HubAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	return &httpHubAdapter{
		client:        utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout, adapterCfg.Retries),
		tokenIssuer:   appCfg.TokenIssuer,
		tokenDuration: appCfg.TokenDuration,
		logger:        logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// RegisterRoom implements [HubAdapter]. It POSTs the room to /api/rooms.
func (h *httpHubAdapter) RegisterRoom(ctx context.Context, room models.Room) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(room).
		Post(roomsPath)
	if err != nil {
		return fmt.Errorf("register room request: %w", err)
	}
	return mapHTTPError(resp)
}

// Pull implements [HubAdapter]. It GETs the collection of the room.
func (h *httpHubAdapter) Pull(ctx context.Context, room models.Room, collection string) ([]models.Record, error) {
	req, err := h.authedRequest(ctx, room)
	if err != nil {
		return nil, err
	}

	var pulled models.PullResponse
	resp, err := req.
		SetPathParams(map[string]string{"roomID": room.ID, "collection": collection}).
		SetResult(&pulled).
		Get(collectionPath)
	if err != nil {
		return nil, fmt.Errorf("pull request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	h.logger.Debug().
		Str("func", "httpHubAdapter.Pull").
		Str("collection", collection).
		Int("records", len(pulled.Records)).
		Msg("pulled records from hub")

	return pulled.Records, nil
}

// Push implements [HubAdapter]. It POSTs the records together with their
// HMAC under the room key.
func (h *httpHubAdapter) Push(ctx context.Context, room models.Room, collection string, records []models.Record) (models.MergeReport, error) {
	if records == nil {
		records = []models.Record{}
	}

	hash, err := utils.HashJSON(records, room.Key)
	if err != nil {
		return models.MergeReport{}, fmt.Errorf("hash push request: %w", err)
	}

	req, err := h.authedRequest(ctx, room)
	if err != nil {
		return models.MergeReport{}, err
	}

	var report models.MergeReport
	resp, err := req.
		SetPathParams(map[string]string{"roomID": room.ID, "collection": collection}).
		SetHeader("Content-Type", "application/json").
		SetBody(models.PushRequest{Records: records, Length: len(records), Hash: hash}).
		SetResult(&report).
		Post(collectionPath)
	if err != nil {
		return models.MergeReport{}, fmt.Errorf("push request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.MergeReport{}, err
	}

	return report, nil
}

func (h *httpHubAdapter) authedRequest(ctx context.Context, room models.Room) (*resty.Request, error) {
	token, err := utils.GenerateJWTToken(h.tokenIssuer, room.ID, h.tokenDuration, room.Key)
	if err != nil {
		return nil, fmt.Errorf("sign hub token: %w", err)
	}
	return h.client.R().
		SetContext(ctx).
		SetAuthToken(token.SignedString), nil
}
