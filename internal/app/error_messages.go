// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the human-readable messages written into the
// {"message": ...} bodies of the dashboard API.
//
// Keeping them in one place keeps the wording identical between handlers,
// middleware and the dashctl client, which matches on some of them.
package app

// Failure messages.
const (
	// MsgInvalidJSON is returned when a JSON body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidForm is returned when a multipart body cannot be parsed.
	MsgInvalidForm = "Invalid multipart form"

	// MsgInternalServerError is returned for every unexpected failure. The
	// underlying error is logged, never echoed.
	MsgInternalServerError = "Internal server error"

	// MsgServiceUnavailable is returned when the database reports a
	// transient failure.
	MsgServiceUnavailable = "Service temporarily unavailable"

	MsgUserNotFound       = "User not found"
	MsgInvalidCredentials = "Invalid credentials"

	MsgUsernameExists = "Username already exists"
	MsgEmailExists    = "Email already exists"

	MsgPasswordsDoNotMatch      = "Passwords do not match"
	MsgCurrentPasswordIncorrect = "Current password is incorrect"

	MsgAnalystNotFound = "Analyst not found"

	// MsgNoTokenProvided is returned by the authorization gate when the
	// Authorization header is missing or malformed.
	MsgNoTokenProvided = "No token, authorization denied"

	// MsgTokenIsExpired is returned when the bearer token has expired.
	MsgTokenIsExpired = "Token is expired"

	// MsgTokenIsInvalid is returned for any other token failure.
	MsgTokenIsInvalid = "Token is not valid"

	// MsgAccessDenied is returned when the caller role is not allowed on the
	// route.
	MsgAccessDenied = "Access denied"

	MsgNoFilesUploaded  = "No files uploaded"
	MsgInvalidFileType  = "Invalid file type"
	MsgFileTooLarge     = "File too large"
	MsgTooManyFiles     = "Too many files"
	MsgFileNotFound     = "File not found"
	MsgNotCSV           = "File is not a CSV dataset"
	MsgInvalidID        = "Invalid id"
	MsgNotFound         = "Not found"
)

// Success messages.
const (
	MsgAdminCreated    = "Admin created successfully"
	MsgAnalystCreated  = "Analyst created successfully"
	MsgAnalystDeleted  = "Analyst deleted successfully"
	MsgProfileUpdated  = "Profile updated successfully"
	MsgPasswordUpdated = "Password updated successfully"
	MsgFileUploaded    = "File uploaded successfully"
	MsgFilesUploaded   = "Files uploaded successfully"
	MsgFileDeleted     = "File deleted successfully"
)
