// Package session holds the client's authentication session: the opaque
// server token and the profile fetched with it. The Store is the single
// source of truth for "is a user logged in" and the only writer of the
// persisted credential; every other component reads it or mutates it through
// the auth service.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/dperalta/libris/internal/client/models"
	"github.com/dperalta/libris/internal/client/repositories/credentials"
)

// Store pairs the token with the profile fetched under it.
//
// Invariants:
//   - a non-nil profile always belongs to the current token: any token
//     change, including a clear, drops the profile;
//   - the persisted credential entry mirrors the in-memory token: SetToken
//     writes through before memory is updated, so a restart never resumes a
//     token the process did not hold.
//
// Token, Profile and IsAuthenticated are pure in-memory reads and are safe
// to call on any goroutine, including per-request from the transport.
type Store struct {
	repo credentials.Repository

	mu      sync.Mutex
	token   string
	profile *models.Profile
	subs    map[uuid.UUID]func()
}

func NewStore(repo credentials.Repository) *Store {
	return &Store{repo: repo, subs: make(map[uuid.UUID]func())}
}

// Restore hydrates the in-memory token from the persisted entry. It is meant
// to run once at process start, before any consumer reads the store. The
// profile is never persisted, so it stays nil until a fetch succeeds.
func (s *Store) Restore(ctx context.Context) error {
	token, err := s.repo.Load(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.token = token
	s.profile = nil
	s.mu.Unlock()

	s.notify()
	return nil
}

// Token returns the current credential, or "" when logged out. It satisfies
// the transport's TokenSource, which reads it at send time.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *Store) Profile() *models.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// IsAuthenticated reports whether both the token and the profile are
// present. A token alone is an intermediate state (login in progress, or a
// resumed session whose profile has not loaded yet) and deliberately reads
// as not authenticated.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.profile != nil
}

// SetToken durably persists the credential ("" removes the persisted entry)
// and swaps it in memory. The profile is dropped on every token change: it
// described whoever owned the previous token. On a persistence error the
// store is left unchanged.
func (s *Store) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()

	var err error
	if token == "" {
		err = s.repo.Delete(ctx)
	} else {
		err = s.repo.Save(ctx, token)
	}
	if err != nil {
		s.mu.Unlock()
		return err
	}

	s.token = token
	s.profile = nil
	s.mu.Unlock()

	s.notify()
	return nil
}

// SetProfile updates the in-memory profile. It never persists anything. A
// profile set while no token is held is discarded: it would have been
// fetched with a credential the store no longer owns.
func (s *Store) SetProfile(p *models.Profile) {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return
	}
	s.profile = p
	s.mu.Unlock()

	s.notify()
}

// Clear wipes the session: token, profile and the persisted entry. Used by
// logout and by forced logout when the server rejects the credential. Unlike
// SetToken, the in-memory state is cleared even when removing the persisted
// entry fails; the error is returned for diagnostics only. A user must never
// stay locally logged in because a cleanup step failed.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	err := s.repo.Delete(ctx)
	s.token = ""
	s.profile = nil
	s.mu.Unlock()

	s.notify()
	return err
}

// Subscribe registers fn to run after every store mutation. The returned
// function removes the subscription. fn is called outside the store lock and
// must re-read whatever state it needs.
func (s *Store) Subscribe(fn func()) (unsubscribe func()) {
	id := uuid.New()

	s.mu.Lock()
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
