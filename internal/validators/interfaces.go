// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads before they reach the service
// layer.
//
// A [Validator] accepts any supported value and, optionally, a list of field
// names that restricts which rules are applied. Without field names every
// rule of the value's type runs in a fixed order and the first violation is
// returned.
package validators

import "context"

// Validator validates a value, optionally restricted to the named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
