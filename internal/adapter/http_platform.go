package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-license-keeper/internal/config"
	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/utils"
	"github.com/MKhiriev/go-license-keeper/models"
	"github.com/go-resty/resty/v2"
)

// ErrEmptyAccessToken is returned when the platform grants access without a
// token.
var ErrEmptyAccessToken = errors.New("empty access token")

type httpPlatformAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPPlatformAdapter constructs an HTTP/REST implementation of
// [PlatformAdapter] for the platform API at adapterCfg.PlatformAddress.
// appCfg.PlatformToken, when set, is sent as a bearer token.
func NewHTTPPlatformAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, log *logger.Logger) (PlatformAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.PlatformAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid platform address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpPlatformAdapter{
		client: client,
		token:  appCfg.PlatformToken,
		logger: log.WithComponent("platform-adapter"),
	}, nil
}

// SetToken replaces the bearer token attached to subsequent requests.
func (h *httpPlatformAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

// VerifyToken implements [PlatformAdapter] via POST tokens/verify.
func (h *httpPlatformAdapter) VerifyToken(ctx context.Context, tokenID, walletAddress string) (bool, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.VerifyTokenRequest{TokenID: tokenID, WalletAddress: walletAddress}).
		Post("tokens/verify")
	if err != nil {
		return false, fmt.Errorf("verify token request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, fmt.Errorf("verify token request: %w", err)
	}

	var out models.VerifyTokenResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return false, fmt.Errorf("verify token request: %w: %v", ErrDecode, err)
	}

	h.logger.Debug().Str("func", "httpPlatformAdapter.VerifyToken").
		Str("token_id", tokenID).
		Bool("valid", out.Valid).
		Msg("token verified")

	return out.Valid, nil
}

// RequestStreamAccess implements [PlatformAdapter] via POST encryption/access.
func (h *httpPlatformAdapter) RequestStreamAccess(ctx context.Context, contentID, tokenID string) (string, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.StreamAccessRequest{ContentID: contentID, TokenID: tokenID}).
		Post("encryption/access")
	if err != nil {
		return "", fmt.Errorf("stream access request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", fmt.Errorf("stream access request: %w", err)
	}

	var out models.StreamAccessResponse
	if err = json.Unmarshal(resp.Body(), &out); err != nil {
		return "", fmt.Errorf("stream access request: %w: %v", ErrDecode, err)
	}
	if out.AccessToken == "" {
		return "", fmt.Errorf("stream access request: %w", &RemoteError{Status: resp.StatusCode(), Message: out.Message, Err: ErrEmptyAccessToken})
	}

	return out.AccessToken, nil
}

func (h *httpPlatformAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)

	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}
