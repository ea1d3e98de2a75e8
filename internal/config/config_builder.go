package config

import (
	"errors"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Default values applied when no other source sets a field.
const (
	DefaultHTTPAddress    = "localhost:5000"
	DefaultRequestTimeout = 30 * time.Second
	DefaultUploadsDir     = "uploads"
	DefaultTokenIssuer    = "perf-dashboard"
	DefaultTokenDuration  = time.Hour
	DefaultDotEnvPath     = ".env"
	DefaultVersion        = "dev"
)

type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 5),
	}
}

// build merges the collected configs in insertion order: a field keeps the
// first non-zero value it receives.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withDotEnv() *configBuilder {
	path := DefaultDotEnvPath
	for _, cfg := range b.configs {
		if cfg.DotEnvPath != "" {
			path = cfg.DotEnvPath
			break
		}
	}

	dotEnvCfg, err := parseDotEnv(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, dotEnvCfg)
	return b
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
			break
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, jsonCfg)
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append(b.configs, &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       DefaultVersion,
		},
		Storage: Storage{
			Files: Files{UploadsDir: DefaultUploadsDir},
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		DotEnvPath: DefaultDotEnvPath,
	})
	return b
}
