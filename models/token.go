package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by every session token.
//
// Besides the registered claims (sub, iss, iat, exp) it embeds the account
// identifier and role so that the authorization gate can decide without a
// database lookup.
type Claims struct {
	jwt.RegisteredClaims

	// UserID duplicates the subject as a number.
	UserID int64 `json:"id"`

	// Role is the role of the account at issuance time.
	Role Role `json:"role"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be returned to the client.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier taken from the "id" claim.
	UserID int64 `json:"-"`

	// Role is the role taken from the "role" claim.
	Role Role `json:"-"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject) claim
// and parses it as a base-10 int64.
func (t *Token) GetUserID() (int64, error) {
	if t.Token == nil {
		return 0, fmt.Errorf("error extracting UserID from token: token is not parsed")
	}

	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
