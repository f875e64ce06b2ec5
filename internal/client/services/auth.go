// Package services contains application services for the libris client.
// This file defines the authentication service: login, registration, profile
// synchronization, logout, and resuming a persisted session at startup.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dperalta/libris/internal/client/api"
	"github.com/dperalta/libris/internal/client/session"
	"github.com/dperalta/libris/internal/logging"
)

// resumeTimeout bounds the background profile fetch at startup.
const resumeTimeout = 15 * time.Second

// AuthService owns every session mutation.
//
// Contract:
//   - Login: obtain a token, then resolve the profile. Either both land in
//     the store or neither does; a failed login leaves the store untouched.
//   - Register: create the account, then establish a session exactly as
//     Login would with the same credentials.
//   - FetchProfile: refresh the profile for the current token. A server
//     rejection of the token clears the whole session, persisted entry
//     included.
//   - Logout: best-effort server notification, unconditional local clear.
//   - ResumeSession: once per process, kick off a background profile fetch
//     when a persisted token was restored. Never blocks the caller.
//
// All methods must honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, email, password, passwordConfirmation string) error
	FetchProfile(ctx context.Context) error
	Logout(ctx context.Context)
	ResumeSession()
}

// authService is the concrete AuthService backed by the remote API client
// and the session store.
type authService struct {
	client api.Client
	store  *session.Store
	log    logging.Logger

	resumeOnce sync.Once
}

// NewAuthService constructs an AuthService bound to the given API client,
// session store and logger.
func NewAuthService(client api.Client, store *session.Store, log logging.Logger) AuthService {
	return &authService{client: client, store: store, log: log}
}

// Login performs the two-phase flow: exchange credentials for a token, then
// fetch the profile under it. The intermediate token-only state is real but
// reads as not authenticated, so observers never see a half-built session as
// logged in. If the profile step fails the freshly persisted token is
// removed again; no orphaned credential survives a failed login.
func (a *authService) Login(ctx context.Context, username, password string) error {
	token, err := a.client.Login(ctx, api.Credentials{Username: username, Password: password})
	if err != nil {
		return fmt.Errorf("login error: %w", err)
	}

	if err := a.store.SetToken(ctx, token); err != nil {
		return fmt.Errorf("credential saving error: %w", err)
	}

	if err := a.FetchProfile(ctx); err != nil {
		// FetchProfile already cleared the session on a server rejection;
		// on any other failure roll the token back ourselves.
		if a.store.Token() != "" {
			if cerr := a.store.Clear(ctx); cerr != nil {
				a.log.Error(ctx, "failed to roll back credential after profile error", "error", cerr)
			}
		}
		return err
	}
	return nil
}

// Register creates the account and then runs the regular login flow with the
// same credentials, so one register action yields an established session.
func (a *authService) Register(ctx context.Context, username, email, password, passwordConfirmation string) error {
	reg := api.Registration{
		Username:             username,
		Email:                email,
		Password:             password,
		PasswordConfirmation: passwordConfirmation,
	}
	if err := a.client.Register(ctx, reg); err != nil {
		return fmt.Errorf("registration error: %w", err)
	}
	return a.Login(ctx, username, password)
}

// FetchProfile resolves the identity behind the current token. The request
// is credentialed by the transport. When the server rejects the token, the
// token is known-invalid and the whole session is cleared locally, persisted
// entry included. Other failures (network, 5xx) leave the session as is.
func (a *authService) FetchProfile(ctx context.Context) error {
	p, err := a.client.Profile(ctx)
	if err != nil {
		if errors.Is(err, api.ErrUnauthorized) {
			if cerr := a.store.Clear(ctx); cerr != nil {
				a.log.Error(ctx, "failed to clear rejected session", "error", cerr)
			}
		}
		return fmt.Errorf("profile fetch error: %w", err)
	}

	a.store.SetProfile(p)
	return nil
}

// Logout notifies the server and clears the local session. The server call
// is best-effort: its failure is logged and otherwise ignored, the local
// clear always happens.
func (a *authService) Logout(ctx context.Context) {
	if a.store.Token() != "" {
		if err := a.client.Logout(ctx); err != nil {
			a.log.Warn(ctx, "server logout failed, clearing local session anyway", "error", err)
		}
	}
	if err := a.store.Clear(ctx); err != nil {
		a.log.Error(ctx, "failed to remove persisted credential", "error", err)
	}
}

// ResumeSession runs at most once per process. If the store restored a
// persisted token, the profile is fetched on a background goroutine so
// startup never waits on the network; consumers observe the store update
// whenever it lands. With no persisted token this is a no-op and no network
// call is made.
func (a *authService) ResumeSession() {
	a.resumeOnce.Do(func() {
		if a.store.Token() == "" {
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), resumeTimeout)
			defer cancel()

			if err := a.FetchProfile(ctx); err != nil {
				a.log.Warn(ctx, "could not resume persisted session", "error", err)
			}
		}()
	})
}
