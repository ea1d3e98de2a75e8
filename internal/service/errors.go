package service

import "errors"

var (
	// ErrValidation wraps every input rule violation reported by the
	// validators package.
	ErrValidation = errors.New("validation failed")

	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrUserNotFound             = errors.New("user not found")
	ErrUsernameExists           = errors.New("username already exists")
	ErrEmailExists              = errors.New("email already exists")
	ErrPasswordsDoNotMatch      = errors.New("passwords do not match")
	ErrCurrentPasswordIncorrect = errors.New("current password is incorrect")
	ErrAnalystNotFound          = errors.New("analyst not found")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrNoFilesUploaded = errors.New("no files uploaded")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrFileNotFound    = errors.New("file not found")
	ErrNotCSV          = errors.New("file is not a csv dataset")
	ErrPolicyDir       = errors.New("upload policy directory differs from storage directory")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
