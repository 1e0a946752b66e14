package scope

import "github.com/golang-jwt/jwt/v5"

// Payload is the identity carried by a session token.
type Payload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

type claims struct {
	Payload
	jwt.RegisteredClaims
}
