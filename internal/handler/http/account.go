package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/perf-dashboard/internal/app"
	"github.com/MKhiriev/perf-dashboard/internal/utils"
	"github.com/MKhiriev/perf-dashboard/models"
)

func (h *Handler) createAnalyst(w http.ResponseWriter, r *http.Request) {
	var req models.AnalystCreation
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.createAnalyst")
		return
	}

	analyst, err := h.services.AccountService.CreateAnalyst(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err, "*Handler.createAnalyst")
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Message: app.MsgAnalystCreated, User: analyst.Public()}, http.StatusCreated)
}

func (h *Handler) listAnalysts(w http.ResponseWriter, r *http.Request) {
	analysts, err := h.services.AccountService.ListAnalysts(r.Context())
	if err != nil {
		h.writeError(w, r, err, "*Handler.listAnalysts")
		return
	}

	public := make([]models.PublicUser, 0, len(analysts))
	for _, analyst := range analysts {
		public = append(public, analyst.Public())
	}

	utils.WriteJSON(w, public, http.StatusOK)
}

func (h *Handler) deleteAnalyst(w http.ResponseWriter, r *http.Request) {
	analystID, err := idParam(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.deleteAnalyst")
		return
	}

	if err = h.services.AccountService.DeleteAnalyst(r.Context(), analystID); err != nil {
		h.writeError(w, r, err, "*Handler.deleteAnalyst")
		return
	}

	utils.WriteMessage(w, app.MsgAnalystDeleted, http.StatusOK)
}

func (h *Handler) getSelf(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getSelf")
		return
	}

	user, err := h.services.AccountService.GetSelf(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err, "*Handler.getSelf")
		return
	}

	utils.WriteJSON(w, user.Public(), http.StatusOK)
}

// updateSelf handles the multipart profile form. Empty fields keep their
// current value.
func (h *Handler) updateSelf(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateSelf")
		return
	}

	if err = parseForm(w, r, h.services.ImagePolicy, 1); err != nil {
		h.writeError(w, r, err, "*Handler.updateSelf")
		return
	}

	logos, closeForm, err := formFiles(r, formLogo)
	defer closeForm()
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateSelf")
		return
	}

	update := models.ProfileUpdate{
		Username: formValue(r, formUsername),
		Email:    formValue(r, formEmail),
	}

	user, err := h.services.AccountService.UpdateSelf(r.Context(), userID, update, optionalFile(logos))
	if err != nil {
		h.writeError(w, r, err, "*Handler.updateSelf")
		return
	}

	utils.WriteJSON(w, models.ProfileResponse{Message: app.MsgProfileUpdated, User: user.Public()}, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		h.writeError(w, r, err, "*Handler.changePassword")
		return
	}

	var req models.PasswordChange
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err), "*Handler.changePassword")
		return
	}

	if err = h.services.AccountService.ChangePassword(r.Context(), userID, req); err != nil {
		h.writeError(w, r, err, "*Handler.changePassword")
		return
	}

	utils.WriteMessage(w, app.MsgPasswordUpdated, http.StatusOK)
}
