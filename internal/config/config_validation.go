// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.WalletFile == "" || cfg.Storage.CacheDir == "" || cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	for _, raw := range []string{cfg.Adapter.WalletAddress, cfg.Adapter.PlatformAddress} {
		if err := validateBaseURL(raw); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidAdapterConfigs, err)
		}
	}

	return nil
}

func validateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("address %q must include host and scheme", raw)
	}
	return nil
}
