package oauth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsConfigured(t *testing.T) {
	assert.False(t, NewGoogleOAuthService("", "", "").IsConfigured())
	assert.False(t, NewGoogleOAuthService("id", "", "").IsConfigured())
	assert.True(t, NewGoogleOAuthService("id", "secret", "http://localhost/cb").IsConfigured())
}

func TestAuthCodeURL(t *testing.T) {
	svc := NewGoogleOAuthService("id", "secret", "http://localhost/cb")
	url := svc.AuthCodeURL("state-token")
	assert.Contains(t, url, "client_id=id")
	assert.Contains(t, url, "state=state-token")
	assert.Contains(t, url, "access_type=offline")
}
