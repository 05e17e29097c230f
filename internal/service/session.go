package service

import (
	"time"

	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the opaque session token.
const SessionCookieName = "sessionId"

// SessionTTL is the validity window of an issued session cookie.
const SessionTTL = 7 * 24 * time.Hour

// NewSessionToken mints a globally-unique opaque session token. The token
// carries no claims; possession is the whole auth model.
func NewSessionToken() string {
	return uuid.NewString()
}
