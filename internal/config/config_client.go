package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
)

// Client defaults.
const (
	DefaultAdapterAddress        = "http://localhost:5000"
	DefaultAdapterRequestTimeout = 30 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the dashboard server.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// RequestTimeout is the default timeout for outbound client requests.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// Token is the bearer token attached to authenticated requests.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// ClientConfig is the top-level configuration of the dashctl client.
type ClientConfig struct {
	// Adapter contains the server address, timeout and token.
	Adapter ClientAdapter `envPrefix:"ADAPTER_"`
}

// GetClientConfig builds and validates the client configuration from the
// environment, then the .env file in the working directory, then defaults.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(DefaultDotEnvPath)
}

func getClientConfig(dotEnvPath string) (*ClientConfig, error) {
	envCfg := &ClientConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	dotEnvCfg, err := parseClientDotEnv(dotEnvPath)
	if err != nil {
		return nil, err
	}

	defaults := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultAdapterRequestTimeout,
		},
	}

	clientCfg := new(ClientConfig)
	for _, cfg := range []*ClientConfig{envCfg, dotEnvCfg, defaults} {
		if err = mergo.Merge(clientCfg, cfg); err != nil {
			return nil, fmt.Errorf("error merging client configs: %w", err)
		}
	}

	return clientCfg, clientCfg.validate()
}
