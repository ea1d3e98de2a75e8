// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request parsing errors of the transport layer. Callers can match against
// them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidJSON is returned when a JSON body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid json body")

	// ErrInvalidForm is returned when a multipart body cannot be parsed.
	ErrInvalidForm = errors.New("invalid multipart form")

	// ErrTooManyFiles is returned when an upload carries more files than the
	// route accepts.
	ErrTooManyFiles = errors.New("too many files in upload")

	// ErrInvalidID is returned when a {id} path parameter is not a positive
	// integer.
	ErrInvalidID = errors.New("invalid id path parameter")

	// ErrNoCaller is returned when a protected handler runs without the
	// identity the auth middleware stores in the context.
	ErrNoCaller = errors.New("no authenticated user in context")
)
