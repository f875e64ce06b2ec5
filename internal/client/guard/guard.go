// Package guard gates access to protected parts of the client. A Guard is a
// small state machine created per evaluation: it reads the session store,
// triggers a profile fetch when a token exists without a profile yet, and
// settles on granted or denied. Decisions are never cached across
// evaluations; a later session change is picked up by the next Guard.
package guard

import (
	"context"
	"sync"

	"github.com/dperalta/libris/internal/client/session"
)

// State of one evaluation. Protected content may only be shown in
// StateGranted; StateInit and StateResolving must render as a neutral
// loading state, never as a redirect, because a resumed token whose profile
// has not loaded yet would otherwise bounce a valid user to login.
type State int

const (
	StateInit State = iota
	StateResolving
	StateGranted
	StateDenied
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateResolving:
		return "resolving"
	case StateGranted:
		return "granted"
	case StateDenied:
		return "denied"
	default:
		return "unknown"
	}
}

// ProfileFetcher is the slice of the auth service a guard needs.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context) error
}

// Guard decides one access check. Granted and denied are terminal; reuse
// means constructing a new Guard, which re-derives from the store.
type Guard struct {
	store *session.Store
	auth  ProfileFetcher

	mu        sync.Mutex
	state     State
	abandoned bool
}

func New(store *session.Store, auth ProfileFetcher) *Guard {
	return &Guard{store: store, auth: auth, state: StateInit}
}

func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Abandon marks the evaluation as no longer wanted. A fetch already in
// flight may still complete and update the session store, but its outcome is
// not applied to this guard: the state stays where it was instead of
// reaching a terminal decision nobody is looking at.
func (g *Guard) Abandon() {
	g.mu.Lock()
	g.abandoned = true
	g.mu.Unlock()
}

// Resolve drives the evaluation to a terminal state and returns it.
//
// Granted when the session is already authenticated, or becomes so after a
// profile fetch triggered here (only when a token exists with no profile).
// Denied when no token exists (decided locally, no network call) or the
// fetch fails. A second call returns the recorded decision.
func (g *Guard) Resolve(ctx context.Context) State {
	g.mu.Lock()
	if g.state != StateInit {
		s := g.state
		g.mu.Unlock()
		return s
	}
	g.state = StateResolving
	g.mu.Unlock()

	if g.store.IsAuthenticated() {
		return g.finish(StateGranted)
	}
	if g.store.Token() == "" {
		return g.finish(StateDenied)
	}

	if err := g.auth.FetchProfile(ctx); err != nil {
		return g.finish(StateDenied)
	}
	if g.store.IsAuthenticated() {
		return g.finish(StateGranted)
	}
	return g.finish(StateDenied)
}

// finish records the terminal state unless the guard was abandoned while
// resolving, in which case the late result is dropped.
func (g *Guard) finish(s State) State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.abandoned {
		return g.state
	}
	g.state = s
	return s
}
