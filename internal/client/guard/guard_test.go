package guard

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dperalta/libris/internal/client/api"
	"github.com/dperalta/libris/internal/client/models"
	"github.com/dperalta/libris/internal/client/session"
)

// ---- fakes ----

type memRepo struct {
	mu    sync.Mutex
	token string
}

func (m *memRepo) Load(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token, nil
}

func (m *memRepo) Save(ctx context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	return nil
}

func (m *memRepo) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	return nil
}

// fakeFetcher mimics the auth service's profile fetch against a store,
// including the forced local logout on a rejected token.
type fakeFetcher struct {
	store *session.Store

	profile *models.Profile
	err     error

	calls  int
	during func() // runs while the fetch is in flight
}

func (f *fakeFetcher) FetchProfile(ctx context.Context) error {
	f.calls++
	if f.during != nil {
		f.during()
	}
	if f.err != nil {
		if f.err == api.ErrUnauthorized {
			_ = f.store.Clear(ctx)
		}
		return f.err
	}
	f.store.SetProfile(f.profile)
	return nil
}

func profileFixture() *models.Profile {
	return &models.Profile{ID: 7, Username: "ana", Email: "ana@example.com", DateJoined: "2024-05-01"}
}

func newStore(t *testing.T, token string) (*session.Store, *memRepo) {
	t.Helper()
	repo := &memRepo{token: token}
	store := session.NewStore(repo)
	require.NoError(t, store.Restore(context.Background()))
	return store, repo
}

// ---- TESTS ----

func TestResolve_NoToken_DeniedWithoutNetworkCall(t *testing.T) {
	store, _ := newStore(t, "")
	fetcher := &fakeFetcher{store: store}
	g := New(store, fetcher)

	require.Equal(t, StateInit, g.State())
	require.Equal(t, StateDenied, g.Resolve(context.Background()))
	require.Zero(t, fetcher.calls)
}

func TestResolve_AlreadyAuthenticated_GrantedWithoutFetch(t *testing.T) {
	store, _ := newStore(t, "tok-1")
	store.SetProfile(profileFixture())
	fetcher := &fakeFetcher{store: store}
	g := New(store, fetcher)

	require.Equal(t, StateGranted, g.Resolve(context.Background()))
	require.Zero(t, fetcher.calls)
}

func TestResolve_PersistedToken_FetchSucceeds_Granted(t *testing.T) {
	store, _ := newStore(t, "persisted")
	fetcher := &fakeFetcher{store: store, profile: profileFixture()}
	g := New(store, fetcher)

	require.Equal(t, StateGranted, g.Resolve(context.Background()))
	require.Equal(t, 1, fetcher.calls)
	require.True(t, store.IsAuthenticated())
}

func TestResolve_PersistedToken_Rejected_DeniedAndCleared(t *testing.T) {
	store, repo := newStore(t, "persisted")
	fetcher := &fakeFetcher{store: store, err: api.ErrUnauthorized}
	g := New(store, fetcher)

	require.Equal(t, StateDenied, g.Resolve(context.Background()))

	require.Empty(t, store.Token())
	require.Nil(t, store.Profile())
	repo.mu.Lock()
	require.Empty(t, repo.token)
	repo.mu.Unlock()
}

func TestResolve_FetchUnreachable_Denied(t *testing.T) {
	store, _ := newStore(t, "persisted")
	fetcher := &fakeFetcher{store: store, err: api.ErrUnavailable}
	g := New(store, fetcher)

	require.Equal(t, StateDenied, g.Resolve(context.Background()))
	// Network trouble denies access but does not invalidate the credential.
	require.Equal(t, "persisted", store.Token())
}

func TestResolve_NeverGrantedWhileResolving(t *testing.T) {
	store, _ := newStore(t, "persisted")
	fetcher := &fakeFetcher{store: store, profile: profileFixture()}
	g := New(store, fetcher)

	fetcher.during = func() {
		require.Equal(t, StateResolving, g.State())
	}

	require.Equal(t, StateGranted, g.Resolve(context.Background()))
}

func TestResolve_SecondCall_ReturnsRecordedDecision(t *testing.T) {
	store, _ := newStore(t, "persisted")
	fetcher := &fakeFetcher{store: store, profile: profileFixture()}
	g := New(store, fetcher)

	require.Equal(t, StateGranted, g.Resolve(context.Background()))
	require.Equal(t, StateGranted, g.Resolve(context.Background()))
	require.Equal(t, 1, fetcher.calls)
}

func TestResolve_SessionChange_PickedUpByNextGuard(t *testing.T) {
	store, _ := newStore(t, "tok-1")
	store.SetProfile(profileFixture())
	fetcher := &fakeFetcher{store: store}

	require.Equal(t, StateGranted, New(store, fetcher).Resolve(context.Background()))

	// A forced logout elsewhere must not be masked by a cached decision.
	require.NoError(t, store.Clear(context.Background()))
	require.Equal(t, StateDenied, New(store, fetcher).Resolve(context.Background()))
}

func TestAbandon_LateResultIgnored(t *testing.T) {
	store, _ := newStore(t, "persisted")
	fetcher := &fakeFetcher{store: store, profile: profileFixture()}
	g := New(store, fetcher)

	// The evaluation is abandoned while the fetch is in flight; the fetch
	// itself may still update the store, but the guard must not reach a
	// terminal decision.
	fetcher.during = g.Abandon

	require.Equal(t, StateResolving, g.Resolve(context.Background()))
	require.Equal(t, StateResolving, g.State())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "init", StateInit.String())
	require.Equal(t, "resolving", StateResolving.String())
	require.Equal(t, "granted", StateGranted.String())
	require.Equal(t, "denied", StateDenied.String())
}
