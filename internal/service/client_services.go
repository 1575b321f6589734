package service

import (
	"github.com/MKhiriev/go-license-keeper/internal/adapter"
	"github.com/MKhiriev/go-license-keeper/internal/config"
	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/store"
	"github.com/MKhiriev/go-license-keeper/internal/utils"
)

// ClientServices is built once at startup and handed to the front-end and
// the monitor.
type ClientServices struct {
	WalletService  ClientWalletService
	PairingService ClientPairingService
	LicenseService ClientLicenseService
	StreamService  ClientStreamService
	CacheJob       ClientJob
	WalletJob      ClientJob
}

func NewClientServices(
	cfg config.ClientConfig,
	storages *store.ClientStorages,
	walletAdapter adapter.WalletAdapter,
	platformAdapter adapter.PlatformAdapter,
	log *logger.Logger,
) *ClientServices {
	pairingSvc := NewClientPairingService(walletAdapter, utils.NewUUIDGenerator(), cfg.Workers, log)
	walletSvc := NewClientWalletService(walletAdapter, storages.Wallet, pairingSvc, cfg.Wallet, log)

	return &ClientServices{
		WalletService:  walletSvc,
		PairingService: pairingSvc,
		LicenseService: NewClientLicenseService(walletSvc, platformAdapter, storages.Verifications, cfg.Workers.LicenseVerifyInterval, log),
		StreamService:  NewClientStreamService(walletSvc, platformAdapter, storages.Cache, log),
		CacheJob:       NewClientCacheJob(storages.Cache, storages.Verifications, cfg.Workers.CachePruneInterval, cfg.Storage.VerificationRetention, log),
		WalletJob:      NewClientWalletJob(walletSvc, cfg.Workers.WalletStatusInterval, log),
	}
}
