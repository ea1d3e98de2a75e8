package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/perf-dashboard/internal/config"
	"github.com/MKhiriev/perf-dashboard/internal/crypto"
	"github.com/MKhiriev/perf-dashboard/internal/logger"
	"github.com/MKhiriev/perf-dashboard/internal/store"
	"github.com/MKhiriev/perf-dashboard/internal/utils"
	"github.com/MKhiriev/perf-dashboard/internal/validators"
	"github.com/MKhiriev/perf-dashboard/models"
)

// authService is the concrete implementation of AuthService.
// Passwords are checked with a PasswordHasher; tokens are HS256 JWTs signed
// with the process-wide key.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	validator      validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. All state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		validator:      validators.NewAccountValidator(),
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Login authenticates an account.
//
// The lookup depends on the requested role: admins are found by email,
// analysts by username. Without a role the account is looked up by email.
// When a role is requested it must equal the stored role.
//
// Returns:
//   - ErrValidation if the identifier or password is missing.
//   - ErrUserNotFound if no account matches the lookup value.
//   - ErrInvalidCredentials on a wrong password or a role mismatch.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Info().Err(err).Str("func", "*authService.Login").Msg("invalid login request")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	lookup := strings.TrimSpace(req.LookupValue())

	var (
		user models.User
		err  error
	)
	switch req.Role {
	case models.RoleAnalyst:
		user, err = a.userRepository.FindUserByUsername(ctx, lookup)
	default:
		user, err = a.userRepository.FindUserByEmail(ctx, lookup)
	}
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("func", "*authService.Login").Str("role", string(req.Role)).Msg("login for unknown account")
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	ok, err := a.hasher.Verify(req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Int64("id", user.UserID).Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("error verifying password: %w", err)
	}
	if !ok {
		log.Info().Str("func", "*authService.Login").Int64("id", user.UserID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	if req.Role != "" && user.Role != req.Role {
		log.Info().Str("func", "*authService.Login").Int64("id", user.UserID).
			Str("requested_role", string(req.Role)).
			Str("role", string(user.Role)).
			Msg("role mismatch")
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateToken issues a signed JWT carrying the user id and role.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, user.Role, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw JWT string. An expired token yields
// ErrTokenIsExpired; every other failure (bad signature, wrong issuer or
// algorithm, malformed claims) yields ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if errors.Is(err, utils.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
