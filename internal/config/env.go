// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// parseEnv populates cfg from environment variables using the caarlos0/env
// library. Struct fields are mapped via their `env` and `envPrefix` tags
// defined on [StructuredConfig] and its nested types.
//
// Returns a wrapped error if env.Parse fails (e.g. a value cannot be
// converted to the target type).
func parseEnv(cfg any) error {
	err := env.Parse(cfg)
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// parseDotEnv reads the .env file at path and maps its variables onto a
// fresh [StructuredConfig] with the same tags as [parseEnv]. The process
// environment is not modified. A missing file yields an empty config.
func parseDotEnv(path string) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	if err := parseDotEnvInto(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseClientDotEnv(path string) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseDotEnvInto(path, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func parseDotEnvInto(path string, cfg any) error {
	vars, err := godotenv.Read(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error reading .env file %q: %w", path, err)
	}

	if err = env.ParseWithOptions(cfg, env.Options{Environment: vars}); err != nil {
		return fmt.Errorf("error getting .env configs: %w", err)
	}

	return nil
}
