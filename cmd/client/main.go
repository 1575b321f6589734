package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-license-keeper/internal/adapter"
	"github.com/MKhiriev/go-license-keeper/internal/client"
	"github.com/MKhiriev/go-license-keeper/internal/config"
	"github.com/MKhiriev/go-license-keeper/internal/logger"
	"github.com/MKhiriev/go-license-keeper/internal/service"
	"github.com/MKhiriev/go-license-keeper/internal/store"
	"github.com/MKhiriev/go-license-keeper/internal/tui"
	"github.com/MKhiriev/go-license-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewClientLogger("license-keeper-client", cfg.App.LogFile)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	walletAdapter, err := adapter.NewHTTPWalletAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create wallet adapter")
	}

	platformAdapter, err := adapter.NewHTTPPlatformAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create platform adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("close local storage")
		}
	}()

	services := service.NewClientServices(*cfg, storages, walletAdapter, platformAdapter, log)

	ui := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	monitor := client.NewMonitor(services, ui.Notifier(), cfg.Workers, log)

	go reloadOnHangup(ctx, monitor, log)

	if err = ui.Run(ctx, monitor); err != nil {
		log.Error().Err(err).Msg("client run error")
	}
}

// reloadOnHangup re-reads the configuration on SIGHUP and hands it to the
// monitor.
func reloadOnHangup(ctx context.Context, host client.HostEvents, log *logger.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			cfg, err := config.GetClientConfig()
			if err != nil {
				log.Err(err).Msg("reload configs")
				continue
			}
			_ = host.OnSettingsChanged(*cfg)
		}
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
