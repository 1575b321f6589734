// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-license-keeper/internal/config"
)

// HostEvents is the set of lifecycle callbacks a host application delivers
// to the client runtime.
type HostEvents interface {
	// OnStartup starts background workers and schedules the wallet
	// auto-connect. It returns immediately.
	OnStartup(ctx context.Context)

	// OnShutdown stops every worker and waits for them to exit.
	OnShutdown()

	// OnAbortRequested behaves like OnShutdown. Hosts call it when the user
	// asks to quit while work may still be in flight.
	OnAbortRequested()

	// OnSettingsChanged applies a reloaded configuration.
	OnSettingsChanged(cfg config.ClientConfig) error

	// OnPlaybackStarted starts license verification for the title.
	OnPlaybackStarted(contentID, tokenID string)

	// OnPlaybackStopped stops license verification.
	OnPlaybackStopped()
}
