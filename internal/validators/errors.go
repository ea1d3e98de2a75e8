package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUsernameRequired        = errors.New("username is required")
	ErrEmailRequired           = errors.New("email is required")
	ErrInvalidEmail            = errors.New("email is invalid")
	ErrPasswordRequired        = errors.New("password is required")
	ErrPasswordTooShort        = errors.New("password is too short")
	ErrCurrentPasswordRequired = errors.New("current password is required")
	ErrIdentifierRequired      = errors.New("identifier is required")
	ErrInvalidRole             = errors.New("role is invalid")
)
