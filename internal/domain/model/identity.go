package model

import "time"

// Identity is the verified caller of a request. It is constructed only by
// the token verifier; handlers never build one by hand. Both fields are
// guaranteed non-zero for a resolved identity.
type Identity struct {
	Subject string
	ID      int64
}

// TokenResult is what a successful login returns to the client.
type TokenResult struct {
	Token     string        `json:"token"`
	TokenType string        `json:"token_type"`
	ExpiresIn time.Duration `json:"-"`
}
