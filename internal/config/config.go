// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the dashboard
// server. It aggregates all sub-configurations and is populated by merging
// values from command-line flags, environment variables, an optional .env
// file, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database and the
	// uploads directory.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the path of the .env file read on startup.
	// Env: DOTENV, flag: -env-file. Defaults to ".env"; a missing file is
	// not an error.
	DotEnvPath string `env:"DOTENV"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system storage settings for uploads.
	Files Files `envPrefix:"FILES_"`
}

// App holds application-level configuration values that control token
// lifecycle and versioning.
type App struct {
	// TokenSignKey is the secret key used to sign and verify JWT tokens.
	// Rotating it invalidates every outstanding token.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued JWT token.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration specifies how long a JWT token remains valid after
	// issuance (e.g. "1h", "30m").
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// Version is the semantic version string of the running application.
	// Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:5000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the driver by its scheme: "postgres://" or "postgresql://"
	// open PostgreSQL through pgx, "sqlite://" or "file:" open SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for uploaded files.
type Files struct {
	// UploadsDir is the single directory where uploaded images and datasets
	// are written and from which /uploads/* is served.
	// Env: STORAGE_FILES_UPLOADS_DIR
	UploadsDir string `env:"UPLOADS_DIR"`
}

// GetStructuredConfig loads, merges, and validates the server configuration.
// For every field the first non-zero value in the following order wins:
//  1. Command-line flags
//  2. Environment variables
//  3. .env file
//  4. JSON file (path resolved from the sources above)
//  5. Defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(os.Args[1:]).
		withEnv().
		withDotEnv().
		withJSON().
		withDefaults().
		build()
}
