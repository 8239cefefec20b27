package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT bearer token presented to the configuration API.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [jwt.RegisteredClaims] for standard claim access (subject, expiry, etc.).
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) as received in the Authorization header.
//
// ClientID is a cached copy of the "sub" (subject) claim: the identity of
// the caller (a deployment, a CI job, an operator) the token was issued for.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// RegisteredClaims provides access to the standard JWT claim set
	// (sub, exp, iat, nbf, iss, aud, jti) as defined by RFC 7519.
	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// ClientID is the caller identifier extracted from the "sub" claim.
	ClientID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
