// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Shelfnotes Authors

package session

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
)

// MemoryStore is an in-process implementation of [sessions.Store]. The
// cookie value is the session id encoded and authenticated with
// securecookie; session values never leave the server.
//
// Expired entries are dropped lazily when the session id is next presented.
type MemoryStore struct {
	Codecs  []securecookie.Codec
	Options *sessions.Options

	mu      sync.Mutex
	entries map[string]*memoryEntry
	ttl     time.Duration
}

type memoryEntry struct {
	values    map[interface{}]interface{}
	expiresAt time.Time
}

// NewMemoryStore constructs a [MemoryStore] whose cookies are authenticated
// with the given key pairs (see [securecookie.CodecsFromPairs]) and whose
// sessions expire after ttl.
func NewMemoryStore(ttl time.Duration, keyPairs ...[]byte) *MemoryStore {
	maxAge := int(ttl / time.Second)

	store := &MemoryStore{
		Codecs: securecookie.CodecsFromPairs(keyPairs...),
		Options: &sessions.Options{
			Path:     "/",
			MaxAge:   maxAge,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		entries: make(map[string]*memoryEntry),
		ttl:     ttl,
	}

	for _, codec := range store.Codecs {
		if sc, ok := codec.(*securecookie.SecureCookie); ok {
			sc.MaxAge(maxAge)
		}
	}

	return store
}

// Get implements [sessions.Store]. It returns the cached session from the
// per-request registry, creating it on first use.
func (s *MemoryStore) Get(r *http.Request, name string) (*sessions.Session, error) {
	return sessions.GetRegistry(r).Get(s, name)
}

// New implements [sessions.Store]. It decodes the session id from the
// request cookie and restores the stored values. A missing cookie, a cookie
// that fails authentication, or an expired server-side entry all yield a
// fresh session with IsNew set.
func (s *MemoryStore) New(r *http.Request, name string) (*sessions.Session, error) {
	session := sessions.NewSession(s, name)
	opts := *s.Options
	session.Options = &opts
	session.IsNew = true

	cookie, err := r.Cookie(name)
	if err != nil {
		return session, nil
	}

	var id string
	if err := securecookie.DecodeMulti(name, cookie.Value, &id, s.Codecs...); err != nil {
		// tampered or stale cookie: hand out a fresh session
		return session, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return session, nil
	}

	if time.Now().After(entry.expiresAt) {
		delete(s.entries, id)
		return session, nil
	}

	session.ID = id
	session.IsNew = false
	session.Values = make(map[interface{}]interface{}, len(entry.values))
	for k, v := range entry.values {
		session.Values[k] = v
	}

	return session, nil
}

// Save implements [sessions.Store]. A session whose Options.MaxAge is
// non-positive is deleted from the store and its cookie expired; otherwise
// the values are written to the store under a (possibly new) session id and
// the encoded id is set as the cookie value.
func (s *MemoryStore) Save(r *http.Request, w http.ResponseWriter, session *sessions.Session) error {
	if session.Options.MaxAge <= 0 {
		s.mu.Lock()
		delete(s.entries, session.ID)
		s.mu.Unlock()

		http.SetCookie(w, sessions.NewCookie(session.Name(), "", session.Options))
		return nil
	}

	if session.ID == "" {
		session.ID = uuid.NewString()
	}

	values := make(map[interface{}]interface{}, len(session.Values))
	for k, v := range session.Values {
		values[k] = v
	}

	s.mu.Lock()
	s.entries[session.ID] = &memoryEntry{
		values:    values,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	encoded, err := securecookie.EncodeMulti(session.Name(), session.ID, s.Codecs...)
	if err != nil {
		return err
	}

	http.SetCookie(w, sessions.NewCookie(session.Name(), encoded, session.Options))
	return nil
}

// Len reports the number of live server-side entries. Used by tests and
// diagnostics only.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
