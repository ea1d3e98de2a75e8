// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty DSN", ErrInvalidStorageConfigs)
	}

	if _, err := url.Parse(cfg.Storage.DB.DSN); err != nil {
		return fmt.Errorf("%w: malformed DSN: %w", ErrInvalidStorageConfigs, err)
	}

	if cfg.Storage.Files.UploadsDir == "" {
		return fmt.Errorf("%w: empty uploads directory", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: empty token sign key", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: empty http address", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
