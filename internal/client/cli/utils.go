package cli

import (
	"context"
	"errors"

	"github.com/dperalta/libris/internal/client/api"
	"github.com/dperalta/libris/internal/client/guard"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// errorMessage turns a service error into a line fit for the user.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, api.ErrUnavailable):
		return "No response from the server. Check your connection and try again."
	case errors.Is(err, api.ErrUnauthorized):
		return "The server rejected your credentials. Please login again."
	}
	var se *api.ServerError
	if errors.As(err, &se) {
		return se.Message
	}
	return err.Error()
}

// requireAuth runs a fresh access check before a protected command. While
// the check is resolving (a restored token whose profile is still unknown)
// the user sees a neutral progress note, never a premature login hint.
func (a *App) requireAuth(ctx context.Context) bool {
	if !a.store.IsAuthenticated() && a.store.Token() != "" {
		printlnFn("Checking session...")
	}

	g := guard.New(a.store, a.authService)
	if g.Resolve(ctx) == guard.StateGranted {
		return true
	}
	printlnFn("Please login first.")
	return false
}
