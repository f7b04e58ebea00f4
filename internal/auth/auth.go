// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package auth

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Authentication is a credential that can decorate an outgoing API request.
//
// Implementations must render a redacted form from String so that they are
// safe to log.
type Authentication interface {
	// Apply attaches the credential to req.
	Apply(req *resty.Request)

	fmt.Stringer
}

// BasicAuthentication authenticates with an API username and API key.
// APIKey is never serialized.
type BasicAuthentication struct {
	Username string `json:"username" yaml:"username"`
	APIKey   string `json:"-" yaml:"-"`
}

// NewBasicAuthentication returns a *BasicAuthentication for the given
// username and API key.
func NewBasicAuthentication(username, apiKey string) *BasicAuthentication {
	return &BasicAuthentication{Username: username, APIKey: apiKey}
}

// Apply sets HTTP basic auth with Username and APIKey.
func (a *BasicAuthentication) Apply(req *resty.Request) {
	req.SetBasicAuth(a.Username, a.APIKey)
}

func (a *BasicAuthentication) String() string {
	return fmt.Sprintf("BasicAuthentication(username=%s, api_key=%s)", a.Username, Redact(a.APIKey))
}

// TokenAuthentication authenticates with a previously issued portal token.
// AuthToken is never serialized.
type TokenAuthentication struct {
	UserID    int64  `json:"user_id" yaml:"user_id"`
	AuthToken string `json:"-" yaml:"-"`
}

// NewTokenAuthentication returns a *TokenAuthentication for the given user
// id and token.
func NewTokenAuthentication(userID int64, authToken string) *TokenAuthentication {
	return &TokenAuthentication{UserID: userID, AuthToken: authToken}
}

// Apply sends AuthToken as a bearer token.
func (a *TokenAuthentication) Apply(req *resty.Request) {
	req.SetAuthToken(a.AuthToken)
}

func (a *TokenAuthentication) String() string {
	return fmt.Sprintf("TokenAuthentication(user_id=%d, auth_token=%s)", a.UserID, Redact(a.AuthToken))
}

// Redact hides a secret value, keeping only its last four characters when
// the value is long enough for that to be harmless.
func Redact(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return "[REDACTED]"
	}
	return "****" + secret[len(secret)-4:]
}
