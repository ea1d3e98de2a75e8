package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/perf-dashboard/internal/app"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/utils"
	"github.com/MKhiriev/perf-dashboard/models"
)

// Multipart fields of the account forms.
const (
	formUsername        = "username"
	formEmail           = "email"
	formPassword        = "password"
	formConfirmPassword = "confirmPassword"
	formLogo            = "logo"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.login")
		return
	}

	user, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.login")
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		h.writeError(w, r, err, "*Handler.login")
		return
	}

	log.Info().Str("func", "*Handler.login").Int64("id", user.UserID).Str("user_role", string(user.Role)).Msg("user logged in")
	utils.WriteJSON(w, models.LoginResponse{Token: token.SignedString, User: user.Public()}, http.StatusOK)
}

// registerAdmin handles the multipart admin sign-up form with an optional
// logo image.
func (h *Handler) registerAdmin(w http.ResponseWriter, r *http.Request) {
	if err := parseForm(w, r, h.services.ImagePolicy, 1); err != nil {
		h.writeError(w, r, err, "*Handler.registerAdmin")
		return
	}

	logos, closeForm, err := formFiles(r, formLogo)
	defer closeForm()
	if err != nil {
		h.writeError(w, r, err, "*Handler.registerAdmin")
		return
	}

	reg := models.AdminRegistration{
		Username:        formValue(r, formUsername),
		Email:           formValue(r, formEmail),
		Password:        formValue(r, formPassword),
		ConfirmPassword: formValue(r, formConfirmPassword),
	}

	admin, err := h.services.AccountService.RegisterAdmin(r.Context(), reg, optionalFile(logos))
	if err != nil {
		h.writeError(w, r, err, "*Handler.registerAdmin")
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Message: app.MsgAdminCreated, User: admin.Public()}, http.StatusCreated)
}
