package utils // utils provides helpers for session tokens and password hashing

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken represents a signed JWT session token along with its
// expiry. The token is the only session state the server hands out;
// clients keep it across reloads and present it as a bearer token.
type AccessToken struct {
	Token string    // the serialized JWT string
	Exp   time.Time // the UTC expiration time
}

// NewAccessToken builds and signs an HS256 JWT for a staff session.
// The claims carry the user id (sub), display name, the session role
// string, expiration and issued-at. The role claim is the canonical
// session Role, already mapped from the user record's lower-cased role
// at login.
func NewAccessToken(secret, userID, name, role string, ttlMin int) (AccessToken, error) {
	now := time.Now().UTC()
	exp := now.Add(time.Duration(ttlMin) * time.Minute)
	claims := jwt.MapClaims{
		"sub":  userID,
		"name": name,
		"role": role,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{Token: signed, Exp: exp}, nil
}
