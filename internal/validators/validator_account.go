package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/perf-dashboard/models"
)

// Field names accepted by [AccountValidator.Validate].
const (
	FieldUsername        = "username"
	FieldEmail           = "email"
	FieldOptionalEmail   = "optional_email"
	FieldPassword        = "password"
	FieldPasswordPresent = "password_present"
	FieldNewPassword     = "new_password"
	FieldCurrentPassword = "current_password"
	FieldIdentifier      = "identifier"
	FieldRole            = "role"
)

// MinPasswordLength is the shortest password accepted for new credentials.
const MinPasswordLength = 6

// AccountValidator validates the account-related request models:
// LoginRequest, AdminRegistration, AnalystCreation, ProfileUpdate and
// PasswordChange. Values and pointers are both accepted.
type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLogin(value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(*value, fields...)

	case models.AdminRegistration:
		return v.validateAdminRegistration(value, fields...)
	case *models.AdminRegistration:
		return v.validateAdminRegistration(*value, fields...)

	case models.AnalystCreation:
		return v.validateAnalystCreation(value, fields...)
	case *models.AnalystCreation:
		return v.validateAnalystCreation(*value, fields...)

	case models.ProfileUpdate:
		return v.validateProfileUpdate(value, fields...)
	case *models.ProfileUpdate:
		return v.validateProfileUpdate(*value, fields...)

	case models.PasswordChange:
		return v.validatePasswordChange(value, fields...)
	case *models.PasswordChange:
		return v.validatePasswordChange(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateLogin(req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier, FieldPasswordPresent, FieldRole}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentifier:
			if isBlank(req.LookupValue()) {
				return ErrIdentifierRequired
			}
		case FieldPasswordPresent:
			if req.Password == "" {
				return ErrPasswordRequired
			}
		case FieldRole:
			// no role selects the email lookup
			if req.Role != "" && !req.Role.Valid() {
				return ErrInvalidRole
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateAdminRegistration(reg models.AdminRegistration, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := checkUsername(reg.Username); err != nil {
				return err
			}
		case FieldEmail:
			if isBlank(reg.Email) {
				return ErrEmailRequired
			}
			if err := checkEmail(reg.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := checkPassword(reg.Password, ErrPasswordRequired); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validateAnalystCreation(req models.AnalystCreation, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if err := checkUsername(req.Username); err != nil {
				return err
			}
		case FieldPassword:
			if err := checkPassword(req.Password, ErrPasswordRequired); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateProfileUpdate only checks the fields that were supplied; an empty
// field means "leave unchanged".
func (v *AccountValidator) validateProfileUpdate(update models.ProfileUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOptionalEmail}
	}

	for _, f := range fields {
		switch f {
		case FieldOptionalEmail:
			if update.Email == "" {
				continue
			}
			if err := checkEmail(update.Email); err != nil {
				return err
			}
		case FieldUsername:
			if update.Username == "" {
				continue
			}
			if err := checkUsername(update.Username); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *AccountValidator) validatePasswordChange(req models.PasswordChange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCurrentPassword, FieldNewPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldCurrentPassword:
			if req.CurrentPassword == "" {
				return ErrCurrentPasswordRequired
			}
		case FieldNewPassword:
			if err := checkPassword(req.NewPassword, ErrPasswordRequired); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func checkUsername(username string) error {
	if isBlank(username) {
		return ErrUsernameRequired
	}
	return nil
}

func checkEmail(email string) error {
	local, domain, ok := strings.Cut(strings.TrimSpace(email), "@")
	if !ok || local == "" || domain == "" || strings.ContainsAny(email, " \t") {
		return ErrInvalidEmail
	}
	return nil
}

func checkPassword(password string, required error) error {
	if password == "" {
		return required
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
