package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/adapter"
	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/store"
	"github.com/MKhiriev/go-license-keeper/internal/utils"
	"github.com/MKhiriev/go-license-keeper/models"
)

const (
	// streamAccessMargin is subtracted from the credential lifetime when it
	// is cached, so a cached credential is never handed out about to expire.
	streamAccessMargin = 30 * time.Second

	// streamAccessFallbackTTL is used for credentials without a readable exp.
	streamAccessFallbackTTL = 5 * time.Minute
)

type clientStreamService struct {
	wallet   ClientWalletService
	platform adapter.PlatformAdapter
	cache    store.Cache
	now      func() time.Time

	logger *logger.Logger
}

// NewClientStreamService creates the stream access service. Credentials are
// cached in cache until shortly before they expire.
func NewClientStreamService(wallet ClientWalletService, platform adapter.PlatformAdapter, cache store.Cache, log *logger.Logger) ClientStreamService {
	return &clientStreamService{
		wallet:   wallet,
		platform: platform,
		cache:    cache,
		now:      time.Now,
		logger:   log.WithComponent("stream"),
	}
}

func (s *clientStreamService) RequestStreamAccess(ctx context.Context, contentID, tokenID string) (models.StreamAccess, error) {
	if !s.wallet.IsConnected() {
		return models.StreamAccess{}, ErrWalletNotConnected
	}

	if tokenID == "" {
		id, ok := s.wallet.GetTokenIDForContent(contentID)
		if !ok {
			return models.StreamAccess{}, ErrTokenNotOwned
		}
		tokenID = id
	}
	if !s.wallet.HasToken(tokenID) {
		return models.StreamAccess{}, ErrTokenNotOwned
	}

	key := streamAccessKey(contentID, tokenID, s.wallet.GetAddress())

	var cached models.StreamAccess
	ok, err := s.cache.Get(key, &cached)
	if err != nil {
		s.logger.Warn().Err(err).Str("func", "clientStreamService.RequestStreamAccess").Msg("stream access cache unavailable")
	}
	if ok && !cached.Expired(s.now().Add(streamAccessMargin)) {
		return cached, nil
	}

	accessToken, err := s.platform.RequestStreamAccess(ctx, contentID, tokenID)
	if err != nil {
		return models.StreamAccess{}, fmt.Errorf("error requesting stream access: %w", err)
	}

	now := s.now()
	expiresAt, err := utils.TokenExpiry(accessToken)
	if err != nil {
		if !errors.Is(err, utils.ErrNoExpiry) {
			s.logger.Debug().Err(err).Str("func", "clientStreamService.RequestStreamAccess").Msg("access token is not a readable jwt")
		}
		expiresAt = now.Add(streamAccessFallbackTTL)
	}

	access := models.StreamAccess{
		ContentID:   contentID,
		TokenID:     tokenID,
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
	}

	if ttl := expiresAt.Sub(now) - streamAccessMargin; ttl > 0 {
		if err = s.cache.Set(key, access, ttl); err != nil {
			s.logger.Warn().Err(err).Str("func", "clientStreamService.RequestStreamAccess").Msg("error caching stream access")
		}
	}

	return access, nil
}

func streamAccessKey(contentID, tokenID, address string) string {
	return "stream-access:" + contentID + ":" + tokenID + ":" + address
}
