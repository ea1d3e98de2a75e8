// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

// ErrorClassification is the result type returned by
// [ErrorClassificator.Classify].
type ErrorClassification int

const (
	// NonRetryable indicates that the failed operation should not be
	// retried. This is the default for unrecognised errors.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. after a transient connection loss or a deadlock rollback).
	Retryable

	// UniqueViolation indicates that a unique constraint rejected the write.
	UniqueViolation

	// ForeignKeyViolation indicates that a write referenced a row that does
	// not exist.
	ForeignKeyViolation
)

// ErrorClassificator turns driver-specific errors into driver-independent
// classifications.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	// UniqueColumn names the column whose unique constraint rejected the
	// write, or "" when err is not a unique violation on a known column.
	UniqueColumn(err error) string
}
