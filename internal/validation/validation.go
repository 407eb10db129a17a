// Package validation provides functionality for validating inbound webhook
// authorization to verify request authenticity.
package validation

import (
	"crypto/subtle"
	"errors"
)

// WebhookSecret represents the shared secret Listcord attaches to outbound
// vote notifications in the authorization header.
type WebhookSecret string

// NewWebhookSecret creates a new WebhookSecret instance from the provided secret string and returns its address.
func NewWebhookSecret(secret string) *WebhookSecret {
	s := WebhookSecret(secret)
	return &s
}

// ValidateAuthorization checks the request's lower-cased headers for an
// authorization value matching the secret. The comparison is constant-time.
func (s *WebhookSecret) ValidateAuthorization(headers map[string]string) error {
	if s == nil || *s == "" {
		return errors.New("missing webhook secret")
	}
	authorization, found := headers["authorization"]
	if !found {
		return errors.New("missing authorization header")
	}
	if subtle.ConstantTimeCompare([]byte(authorization), []byte(*s)) != 1 {
		return errors.New("authorization mismatch")
	}
	return nil
}
