package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/perf-dashboard/models"
	"github.com/golang-jwt/jwt/v5"
)

// Token validation failures. Callers branch on these with errors.Is.
var (
	ErrTokenExpired = errors.New("token is expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token for userID and role.
//
// The token carries the registered claims iss, sub (the user id as a
// string), iat and exp, plus the private claims "id" and "role".
// All parameters are required.
func GenerateJWTToken(issuer string, userID int64, role models.Role, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || !role.Valid() {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(userID, 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
		Role:   role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, Role: role}, nil
}

// ValidateAndParseJWTToken verifies the signature (HS256 only), issuer and
// expiry of tokenString and extracts the user id and role.
//
// An expired token yields an error wrapping [ErrTokenExpired]; any other
// failure wraps [ErrTokenInvalid].
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	userIDStr, err := claims.GetSubject()
	if err != nil || userIDStr == "" {
		return models.Token{}, fmt.Errorf("%w: empty subject", ErrTokenInvalid)
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: subject is not a user id: %w", ErrTokenInvalid, err)
	}

	if claims.UserID != 0 && claims.UserID != userID {
		return models.Token{}, fmt.Errorf("%w: id claim does not match subject", ErrTokenInvalid)
	}

	if !claims.Role.Valid() {
		return models.Token{}, fmt.Errorf("%w: unknown role %q", ErrTokenInvalid, claims.Role)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID, Role: claims.Role}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
