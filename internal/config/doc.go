// Package config provides configuration loading, merging, and validation
// facilities for the dashboard server and the dashctl client.
//
// Server configuration is assembled from multiple sources. For each field the
// first source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Environment variables
//  3. .env file
//  4. JSON config file
//  5. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the command-line client.
package config
