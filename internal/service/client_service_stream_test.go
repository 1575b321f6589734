package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/mock"
	"github.com/MKhiriev/go-license-keeper/internal/store"
	"github.com/MKhiriev/go-license-keeper/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func signedAccessToken(t *testing.T, expiresAt time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "stream",
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func newTestStream(t *testing.T, ctrl *gomock.Controller, wallet *models.WalletState, cache store.Cache) (*clientStreamService, *mock.MockPlatformAdapter) {
	t.Helper()
	w := newTestWallet(t, ctrl, wallet, false)
	platform := mock.NewMockPlatformAdapter(ctrl)
	svc := NewClientStreamService(w.svc, platform, cache, logger.Nop()).(*clientStreamService)
	return svc, platform
}

func newTestFileCache(t *testing.T) *store.FileCache {
	t.Helper()
	cache, err := store.NewFileCache(t.TempDir(), store.DefaultCacheTTL, logger.Nop())
	require.NoError(t, err)
	return cache
}

func TestRequestStreamAccess_NotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestStream(t, ctrl, nil, mock.NewMockCache(ctrl))

	_, err := svc.RequestStreamAccess(context.Background(), "A", "t1")
	assert.ErrorIs(t, err, ErrWalletNotConnected)
}

func TestRequestStreamAccess_TokenNotOwned(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestStream(t, ctrl, connectedState("0xabc", tokenA1), mock.NewMockCache(ctrl))

	_, err := svc.RequestStreamAccess(context.Background(), "A", "t9")
	assert.ErrorIs(t, err, ErrTokenNotOwned)

	_, err = svc.RequestStreamAccess(context.Background(), "C", "")
	assert.ErrorIs(t, err, ErrTokenNotOwned)
}

func TestRequestStreamAccess_CachesUntilNearExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	cache := newTestFileCache(t)
	svc, platform := newTestStream(t, ctrl, connectedState("0xabc", tokenA1, tokenA2), cache)

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	accessToken := signedAccessToken(t, exp)
	platform.EXPECT().RequestStreamAccess(gomock.Any(), "A", "t1").Return(accessToken, nil).Times(1)

	first, err := svc.RequestStreamAccess(context.Background(), "A", "")
	require.NoError(t, err)
	assert.Equal(t, "t1", first.TokenID)
	assert.Equal(t, accessToken, first.AccessToken)
	assert.True(t, exp.Equal(first.ExpiresAt))

	second, err := svc.RequestStreamAccess(context.Background(), "A", "t1")
	require.NoError(t, err)
	assert.Equal(t, accessToken, second.AccessToken)
	assert.True(t, exp.Equal(second.ExpiresAt))
}

func TestRequestStreamAccess_RefetchesWithinMargin(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheMock := mock.NewMockCache(ctrl)
	svc, platform := newTestStream(t, ctrl, connectedState("0xabc", tokenA1), cacheMock)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	stale := models.StreamAccess{ContentID: "A", TokenID: "t1", AccessToken: "old", ExpiresAt: now.Add(10 * time.Second)}
	key := streamAccessKey("A", "t1", "0xabc")

	cacheMock.EXPECT().Get(key, gomock.Any()).DoAndReturn(func(_ string, out any) (bool, error) {
		*out.(*models.StreamAccess) = stale
		return true, nil
	})
	platform.EXPECT().RequestStreamAccess(gomock.Any(), "A", "t1").Return("opaque-credential", nil)
	cacheMock.EXPECT().Set(key, gomock.Any(), streamAccessFallbackTTL-streamAccessMargin).Return(nil)

	access, err := svc.RequestStreamAccess(context.Background(), "A", "t1")
	require.NoError(t, err)
	assert.Equal(t, "opaque-credential", access.AccessToken)
	assert.Equal(t, now.Add(streamAccessFallbackTTL), access.ExpiresAt)
}

func TestRequestStreamAccess_ShortLivedNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheMock := mock.NewMockCache(ctrl)
	svc, platform := newTestStream(t, ctrl, connectedState("0xabc", tokenA1), cacheMock)

	cacheMock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(false, nil)
	platform.EXPECT().RequestStreamAccess(gomock.Any(), "A", "t1").
		Return(signedAccessToken(t, time.Now().Add(10*time.Second)), nil)

	_, err := svc.RequestStreamAccess(context.Background(), "A", "t1")
	require.NoError(t, err)
}

func TestRequestStreamAccess_CacheErrorsAreSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheMock := mock.NewMockCache(ctrl)
	svc, platform := newTestStream(t, ctrl, connectedState("0xabc", tokenA1), cacheMock)

	cacheMock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(false, errors.New("permission denied"))
	platform.EXPECT().RequestStreamAccess(gomock.Any(), "A", "t1").Return("opaque", nil)
	cacheMock.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	access, err := svc.RequestStreamAccess(context.Background(), "A", "t1")
	require.NoError(t, err)
	assert.Equal(t, "opaque", access.AccessToken)
}

func TestRequestStreamAccess_PlatformError(t *testing.T) {
	ctrl := gomock.NewController(t)
	cacheMock := mock.NewMockCache(ctrl)
	svc, platform := newTestStream(t, ctrl, connectedState("0xabc", tokenA1), cacheMock)

	cacheMock.EXPECT().Get(gomock.Any(), gomock.Any()).Return(false, nil)
	platform.EXPECT().RequestStreamAccess(gomock.Any(), "A", "t1").Return("", errors.New("forbidden"))

	_, err := svc.RequestStreamAccess(context.Background(), "A", "t1")
	assert.Error(t, err)
}
