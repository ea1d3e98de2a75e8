package models

// LoginRequest is the body of POST /api/auth/login.
//
// Identifier is resolved by role: admins are looked up by email, analysts by
// username. Without a role the legacy flow applies and the account is looked
// up by email, taken from Identifier or Email.
type LoginRequest struct {
	Identifier string `json:"identifier"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       Role   `json:"role,omitempty"`
}

// LookupValue returns the value the account is searched by.
func (r LoginRequest) LookupValue() string {
	if r.Identifier != "" {
		return r.Identifier
	}
	return r.Email
}

// AdminRegistration carries the form fields of POST /api/auth/register-admin.
type AdminRegistration struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// AnalystCreation is the body of POST /api/auth/create-analyst.
type AnalystCreation struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ProfileUpdate carries the optional form fields of PUT /api/auth/me.
type ProfileUpdate struct {
	Username string
	Email    string
}

// PasswordChange is the body of POST /api/auth/change-password.
type PasswordChange struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}
