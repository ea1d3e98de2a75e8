// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements dashctl, the non-interactive command-line client
// of the dashboard API.
//
// Each subcommand maps to one call of [adapter.DashboardAdapter] and prints
// the result as indented JSON on the output writer. Logs go to stderr so the
// output stays machine-readable.
package client
