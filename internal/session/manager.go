package session

import (
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/shelfnotes/shelfnotes-server/internal/config"
	"github.com/shelfnotes/shelfnotes-server/internal/logger"
)

const (
	// CookieName is the name of the session cookie set on the browser.
	CookieName = "shelfnotes_session"

	userIDKey = "user_id"
)

// Manager is the session facade used by the HTTP layer. It serializes an
// authenticated user into a session (storing only the user id) and reads the
// id back on later requests; resolving the id to a full user record is the
// caller's concern.
//
// The manager owns no global state: each server instance constructs its own,
// so tests can run isolated instances side by side.
type Manager struct {
	store  sessions.Store
	logger *logger.Logger
}

// NewManager constructs a Manager backed by an in-memory store configured
// from cfg (secret and TTL).
func NewManager(cfg config.Auth, logger *logger.Logger) *Manager {
	logger.Debug().Dur("ttl", cfg.SessionTTL).Msg("creating session manager")
	return &Manager{
		store:  NewMemoryStore(cfg.SessionTTL, []byte(cfg.SessionSecret)),
		logger: logger,
	}
}

// NewManagerWithStore constructs a Manager on top of an externally provided
// [sessions.Store]. Used by tests and by deployments that replace the
// in-memory store with a shared backend.
func NewManagerWithStore(store sessions.Store, logger *logger.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
	}
}

// Establish writes an authenticated session for userID and sets the session
// cookie on the response. Called after successful registration and login.
func (m *Manager) Establish(w http.ResponseWriter, r *http.Request, userID int64) error {
	session, err := m.store.Get(r, CookieName)
	if err != nil {
		return fmt.Errorf("error getting session: %w", err)
	}

	session.Values[userIDKey] = userID
	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

// Clear destroys the caller's session and expires the cookie. Clearing an
// absent session is a no-op, not an error.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	session, err := m.store.Get(r, CookieName)
	if err != nil {
		return fmt.Errorf("error getting session: %w", err)
	}

	session.Options.MaxAge = -1
	delete(session.Values, userIDKey)

	if err := session.Save(r, w); err != nil {
		return fmt.Errorf("error destroying session: %w", err)
	}

	return nil
}

// UserID reports the user id stored in the caller's session, if any.
func (m *Manager) UserID(r *http.Request) (int64, bool) {
	session, err := m.store.Get(r, CookieName)
	if err != nil {
		return 0, false
	}

	userID, ok := session.Values[userIDKey].(int64)
	return userID, ok
}
