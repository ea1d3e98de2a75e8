package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/perf-dashboard/internal/validators"
	"github.com/MKhiriev/perf-dashboard/models"
)

// AccountValidationService checks request payloads before handing them to
// the wrapped AccountService. Rule violations are returned wrapped in
// ErrValidation.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) RegisterAdmin(ctx context.Context, reg models.AdminRegistration, logo *models.IncomingFile) (models.User, error) {
	if err := v.validator.Validate(ctx, reg); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.RegisterAdmin(ctx, reg, logo)
}

func (v *AccountValidationService) CreateAnalyst(ctx context.Context, req models.AnalystCreation) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.CreateAnalyst(ctx, req)
}

func (v *AccountValidationService) ListAnalysts(ctx context.Context) ([]models.User, error) {
	return v.inner.ListAnalysts(ctx)
}

func (v *AccountValidationService) DeleteAnalyst(ctx context.Context, analystID int64) error {
	if analystID <= 0 {
		return ErrAnalystNotFound
	}
	return v.inner.DeleteAnalyst(ctx, analystID)
}

func (v *AccountValidationService) GetSelf(ctx context.Context, userID int64) (models.User, error) {
	return v.inner.GetSelf(ctx, userID)
}

func (v *AccountValidationService) UpdateSelf(ctx context.Context, userID int64, update models.ProfileUpdate, logo *models.IncomingFile) (models.User, error) {
	if err := v.validator.Validate(ctx, update, validators.FieldOptionalEmail); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.UpdateSelf(ctx, userID, update, logo)
}

func (v *AccountValidationService) ChangePassword(ctx context.Context, userID int64, req models.PasswordChange) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.ChangePassword(ctx, userID, req)
}

func (v *AccountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}
