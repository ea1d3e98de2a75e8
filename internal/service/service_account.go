package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/perf-dashboard/internal/crypto"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/store"
	"github.com/MKhiriev/perf-dashboard/models"
)

// accountService is the concrete implementation of AccountService.
//
// Username and email uniqueness is checked up front to report the friendly
// error early, but the database constraints remain authoritative: a
// violation during the write is mapped to the same errors.
type accountService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher

	fileIntake FileIntakeService
	logoPolicy models.UploadPolicy

	logger *logger.Logger
}

func NewAccountService(userRepository store.UserRepository, hasher crypto.PasswordHasher, fileIntake FileIntakeService, logoPolicy models.UploadPolicy, logger *logger.Logger) AccountService {
	return &accountService{
		userRepository: userRepository,
		hasher:         hasher,
		fileIntake:     fileIntake,
		logoPolicy:     logoPolicy,
		logger:         logger,
	}
}

// RegisterAdmin checks username, then email, then the password
// confirmation, stores the optional logo and creates the admin account. If
// the account cannot be created the stored logo is discarded.
func (a *accountService) RegisterAdmin(ctx context.Context, reg models.AdminRegistration, logo *models.IncomingFile) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.ensureUsernameFree(ctx, reg.Username, 0); err != nil {
		return models.User{}, err
	}
	if err := a.ensureEmailFree(ctx, reg.Email, 0); err != nil {
		return models.User{}, err
	}
	if reg.Password != reg.ConfirmPassword {
		return models.User{}, ErrPasswordsDoNotMatch
	}

	passwordHash, err := a.hashPassword(reg.Password)
	if err != nil {
		return models.User{}, err
	}

	logoFiles, logoURL, err := a.acceptLogo(ctx, nil, logo)
	if err != nil {
		return models.User{}, err
	}

	email := reg.Email
	admin, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     reg.Username,
		Email:        &email,
		PasswordHash: passwordHash,
		Role:         models.RoleAdmin,
		Logo:         logoURL,
	})
	if err != nil {
		log.Err(err).Str("func", "*accountService.RegisterAdmin").Str("username", reg.Username).Msg("admin creation failed")
		a.fileIntake.Discard(ctx, logoFiles...)
		return models.User{}, mapAccountError(err, "admin creation failed")
	}

	log.Info().Str("func", "*accountService.RegisterAdmin").Int64("id", admin.UserID).Msg("admin registered")
	return admin, nil
}

func (a *accountService) CreateAnalyst(ctx context.Context, req models.AnalystCreation) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.ensureUsernameFree(ctx, req.Username, 0); err != nil {
		return models.User{}, err
	}

	passwordHash, err := a.hashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}

	analyst, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         models.RoleAnalyst,
	})
	if err != nil {
		log.Err(err).Str("func", "*accountService.CreateAnalyst").Str("username", req.Username).Msg("analyst creation failed")
		return models.User{}, mapAccountError(err, "analyst creation failed")
	}

	log.Info().Str("func", "*accountService.CreateAnalyst").Int64("id", analyst.UserID).Msg("analyst created")
	return analyst, nil
}

func (a *accountService) ListAnalysts(ctx context.Context) ([]models.User, error) {
	analysts, err := a.userRepository.ListUsersByRole(ctx, models.RoleAnalyst)
	if err != nil {
		return nil, fmt.Errorf("error listing analysts: %w", err)
	}
	return analysts, nil
}

// DeleteAnalyst removes an analyst account. Ids of admin accounts are
// reported as ErrAnalystNotFound.
func (a *accountService) DeleteAnalyst(ctx context.Context, analystID int64) error {
	err := a.userRepository.DeleteUserWithRole(ctx, analystID, models.RoleAnalyst)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrAnalystNotFound
	}
	if err != nil {
		return fmt.Errorf("error deleting analyst: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "*accountService.DeleteAnalyst").Int64("id", analystID).Msg("analyst deleted")
	return nil
}

func (a *accountService) GetSelf(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("error loading user: %w", err)
	}
	return user, nil
}

// UpdateSelf changes only the supplied fields. Empty strings mean "keep".
func (a *accountService) UpdateSelf(ctx context.Context, userID int64, update models.ProfileUpdate, logo *models.IncomingFile) (models.User, error) {
	log := logger.FromContext(ctx)

	current, err := a.GetSelf(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	change := models.UserUpdate{UserID: userID}

	if username := strings.TrimSpace(update.Username); username != "" && username != current.Username {
		if err = a.ensureUsernameFree(ctx, username, userID); err != nil {
			return models.User{}, err
		}
		change.Username = &username
	}

	if email := strings.TrimSpace(update.Email); email != "" && (current.Email == nil || email != *current.Email) {
		if err = a.ensureEmailFree(ctx, email, userID); err != nil {
			return models.User{}, err
		}
		change.Email = &email
	}

	logoFiles, logoURL, err := a.acceptLogo(ctx, &userID, logo)
	if err != nil {
		return models.User{}, err
	}
	change.Logo = logoURL

	if change.Empty() {
		return current, nil
	}

	updated, err := a.userRepository.UpdateUser(ctx, change)
	if err != nil {
		log.Err(err).Str("func", "*accountService.UpdateSelf").Int64("id", userID).Msg("profile update failed")
		a.fileIntake.Discard(ctx, logoFiles...)
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, mapAccountError(err, "profile update failed")
	}

	return updated, nil
}

// ChangePassword replaces the password hash after the confirmation and the
// current password were checked. On any failure the stored hash is kept.
func (a *accountService) ChangePassword(ctx context.Context, userID int64, req models.PasswordChange) error {
	log := logger.FromContext(ctx)

	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordsDoNotMatch
	}

	user, err := a.GetSelf(ctx, userID)
	if err != nil {
		return err
	}

	ok, err := a.hasher.Verify(req.CurrentPassword, user.PasswordHash)
	if err != nil {
		return fmt.Errorf("error verifying current password: %w", err)
	}
	if !ok {
		log.Info().Str("func", "*accountService.ChangePassword").Int64("id", userID).Msg("current password is incorrect")
		return ErrCurrentPasswordIncorrect
	}

	passwordHash, err := a.hashPassword(req.NewPassword)
	if err != nil {
		return err
	}

	err = a.userRepository.UpdatePasswordHash(ctx, userID, passwordHash)
	if errors.Is(err, store.ErrUserNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("error updating password: %w", err)
	}

	log.Info().Str("func", "*accountService.ChangePassword").Int64("id", userID).Msg("password updated")
	return nil
}

// ensureUsernameFree fails with ErrUsernameExists when another account
// (not selfID) already uses username.
func (a *accountService) ensureUsernameFree(ctx context.Context, username string, selfID int64) error {
	existing, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking username: %w", err)
	}
	if existing.UserID != selfID {
		return ErrUsernameExists
	}
	return nil
}

func (a *accountService) ensureEmailFree(ctx context.Context, email string, selfID int64) error {
	existing, err := a.userRepository.FindUserByEmail(ctx, email)
	if errors.Is(err, store.ErrUserNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking email: %w", err)
	}
	if existing.UserID != selfID {
		return ErrEmailExists
	}
	return nil
}

func (a *accountService) hashPassword(password string) (string, error) {
	hash, err := a.hasher.Hash(password)
	if errors.Is(err, crypto.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return hash, nil
}

// acceptLogo stores logo through the image-only policy. It returns the
// stored files (for a later Discard) and the public URL, both empty when no
// logo was sent.
func (a *accountService) acceptLogo(ctx context.Context, uploaderID *int64, logo *models.IncomingFile) ([]models.StoredFile, *string, error) {
	if logo == nil {
		return nil, nil, nil
	}

	stored, err := a.fileIntake.Accept(ctx, a.logoPolicy, uploaderID, *logo)
	if err != nil {
		return nil, nil, err
	}

	url := stored[0].URL()
	return stored, &url, nil
}

func mapAccountError(err error, msg string) error {
	switch {
	case errors.Is(err, store.ErrUsernameAlreadyExists):
		return ErrUsernameExists
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrEmailExists
	}
	return fmt.Errorf("%s: %w", msg, err)
}
