package admin

import (
	"time"

	"github.com/zimadm/zimadm/pkg/soap"
)

// Session holds the authentication token issued by the service and tracks
// its expiry. It is created alongside the client, mutated only by Login,
// and never explicitly destroyed; an expired session is replaced by logging
// in again.
type Session struct {
	token  string
	expiry time.Time

	now func() time.Time
}

// NewSession returns an unauthenticated session.
func NewSession() *Session {
	return &Session{now: time.Now}
}

// establish stores a freshly issued token. The expiry is the moment the
// token was received plus the lifetime the server reported.
func (s *Session) establish(token string, lifetime time.Duration) {
	s.token = token
	s.expiry = s.now().Add(lifetime)
}

// Token returns the current authentication token, or "" before login.
func (s *Session) Token() string {
	return s.token
}

// ExpiresAt returns the token expiry. The zero time means no login has
// happened yet.
func (s *Session) ExpiresAt() time.Time {
	return s.expiry
}

// IsAuthenticated reports whether a token is present and not yet expired.
func (s *Session) IsAuthenticated() bool {
	return s.token != "" && !s.now().After(s.expiry)
}

// AuthContext builds the <context> header element attached to every
// authenticated call. It fails with ErrNotAuthenticated when no valid token
// is held; there is no automatic re-login.
func (s *Session) AuthContext() (*soap.Element, error) {
	if !s.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	el := soap.NewElement("context")
	el.Space = soap.ContextNS
	el.Add(
		soap.Text("authToken", s.token),
		soap.NewElement("sessionId"),
	)
	return el, nil
}
