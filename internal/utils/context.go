// Package utils provides general-purpose helper utilities used across the
// dashboard: typed context keys, JSON response writing, JWT issuing and
// validation, bearer header parsing and trace id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/perf-dashboard/models"
)

// contextKey is a private type for context keys.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// Context keys set by the authentication middleware.
var (
	UserIDCtxKey = contextKey("userID")
	RoleCtxKey   = contextKey("role")
)

// WithUser returns a copy of ctx carrying the authenticated user id and role.
func WithUser(ctx context.Context, userID int64, role models.Role) context.Context {
	ctx = context.WithValue(ctx, UserIDCtxKey, userID)
	return context.WithValue(ctx, RoleCtxKey, role)
}

// GetUserIDFromContext retrieves the user identifier from the context.
// ok is false when the value is missing or has an unexpected type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// GetRoleFromContext retrieves the caller role from the context.
func GetRoleFromContext(ctx context.Context) (models.Role, bool) {
	role, ok := ctx.Value(RoleCtxKey).(models.Role)
	return role, ok
}
