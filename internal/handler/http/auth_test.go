// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/perf-dashboard/internal/app"
	"github.com/MKhiriev/perf-dashboard/internal/service"
	"github.com/MKhiriev/perf-dashboard/models"
)

func strPtr(s string) *string { return &s }

var bob = models.User{
	UserID:       1,
	Username:     "bob",
	Email:        strPtr("bob@x.com"),
	PasswordHash: "$2a$10$hash",
	Role:         models.RoleAdmin,
	Logo:         strPtr("/uploads/1718000000000.png"),
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h, d := newTestHandler(t)
	req := models.LoginRequest{Identifier: "bob@x.com", Password: "secret12", Role: models.RoleAdmin}

	d.auth.EXPECT().Login(gomock.Any(), req).Return(bob, nil)
	d.auth.EXPECT().CreateToken(gomock.Any(), bob).Return(models.Token{SignedString: "signed.jwt.token"}, nil)

	rec := serve(h, jsonRequest(t, http.MethodPost, "/api/auth/login", req))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "$2a$", "password hash must never be serialised")

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed.jwt.token", resp.Token)
	assert.Equal(t, bob.Public(), resp.User)
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expect      func(d testDeps)
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "invalid json",
			body:        `{"identifier":`,
			expect:      func(d testDeps) {},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidJSON,
		},
		{
			name: "unknown account",
			body: `{"identifier":"ghost","password":"x","role":"analyst"}`,
			expect: func(d testDeps) {
				d.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrUserNotFound)
			},
			wantStatus:  http.StatusNotFound,
			wantMessage: app.MsgUserNotFound,
		},
		{
			name: "wrong password",
			body: `{"email":"bob@x.com","password":"nope"}`,
			expect: func(d testDeps) {
				d.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidCredentials,
		},
		{
			name: "token signing failure is hidden",
			body: `{"email":"bob@x.com","password":"secret12"}`,
			expect: func(d testDeps) {
				d.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(bob, nil)
				d.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, errors.New("hmac: key too short"))
			},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: app.MsgInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, d := newTestHandler(t)
			tt.expect(d)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rec := serve(h, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}
}

// ─────────────────────────────────────────────
// register-admin
// ─────────────────────────────────────────────

var bobForm = map[string]string{
	"username":        "bob",
	"email":           "bob@x.com",
	"password":        "secret12",
	"confirmPassword": "secret12",
}

func TestRegisterAdmin_WithLogo(t *testing.T) {
	h, d := newTestHandler(t)

	d.accounts.EXPECT().RegisterAdmin(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, reg models.AdminRegistration, logo *models.IncomingFile) (models.User, error) {
			assert.Equal(t, models.AdminRegistration{Username: "bob", Email: "bob@x.com", Password: "secret12", ConfirmPassword: "secret12"}, reg)
			require.NotNil(t, logo)
			assert.Equal(t, "logo", logo.FieldName)
			assert.Equal(t, "logo.png", logo.OriginalName)
			assert.Equal(t, "image/png", logo.MIMEType)
			assert.Equal(t, int64(len("png-bytes")), logo.Size)
			assert.Equal(t, "png-bytes", readAll(t, *logo))
			return bob, nil
		})

	req := multipartRequest(t, http.MethodPost, "/api/auth/register-admin", bobForm,
		formFile{field: "logo", filename: "logo.png", contentType: "image/png", content: "png-bytes"})
	rec := serve(h, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp models.ProfileResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, app.MsgAdminCreated, resp.Message)
	assert.Equal(t, bob.Public(), resp.User)
}

func TestRegisterAdmin_WithoutLogo(t *testing.T) {
	h, d := newTestHandler(t)
	d.accounts.EXPECT().RegisterAdmin(gomock.Any(), gomock.Any(), nil).Return(bob, nil)

	rec := serve(h, multipartRequest(t, http.MethodPost, "/api/auth/register-admin", bobForm))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRegisterAdmin_Failures(t *testing.T) {
	tests := []struct {
		name        string
		serviceErr  error
		wantMessage string
	}{
		{name: "duplicate email", serviceErr: service.ErrEmailExists, wantMessage: app.MsgEmailExists},
		{name: "duplicate username", serviceErr: service.ErrUsernameExists, wantMessage: app.MsgUsernameExists},
		{name: "confirmation differs", serviceErr: service.ErrPasswordsDoNotMatch, wantMessage: app.MsgPasswordsDoNotMatch},
		{name: "logo of wrong kind", serviceErr: service.ErrInvalidFileType, wantMessage: app.MsgInvalidFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, d := newTestHandler(t)
			d.accounts.EXPECT().RegisterAdmin(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, tt.serviceErr)

			rec := serve(h, multipartRequest(t, http.MethodPost, "/api/auth/register-admin", bobForm))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeMessage(t, rec))
		})
	}
}

func TestRegisterAdmin_NotMultipart(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, jsonRequest(t, http.MethodPost, "/api/auth/register-admin", bobForm))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidForm, decodeMessage(t, rec))
}
