// Package cli implements the interactive libris client: a REPL over the
// book-catalog API with a persisted login session.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/dperalta/libris/internal/client/api"
	"github.com/dperalta/libris/internal/client/config"
	"github.com/dperalta/libris/internal/client/repositories/credentials"
	"github.com/dperalta/libris/internal/client/services"
	"github.com/dperalta/libris/internal/client/session"
	"github.com/dperalta/libris/internal/client/storage"
	"github.com/dperalta/libris/internal/logging"
)

type App struct {
	config      *config.Config
	store       *session.Store
	authService services.AuthService
	bookService services.BookService
	log         logging.Logger
	reader      *bufio.Reader

	mu               sync.Mutex
	wasAuthenticated bool
}

// NewApp wires the client together: local database, session store, HTTP
// transport, services. A persisted token is restored synchronously (a local
// read) and its profile fetch is kicked off in the background, so the REPL
// prompt appears immediately whether or not the server is reachable.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store := session.NewStore(credentials.NewSQLiteRepository(db))
	if err := store.Restore(ctx); err != nil {
		return nil, fmt.Errorf("error restoring session: %w", err)
	}

	apiClient := api.NewHTTPClient(cfg.ServerEndpointAddr, cfg.RequestTimeout, store)

	as := services.NewAuthService(apiClient, store, log)
	bs := services.NewBookService(apiClient)

	a := &App{
		config:      cfg,
		store:       store,
		authService: as,
		bookService: bs,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
	}

	a.wasAuthenticated = store.IsAuthenticated()
	store.Subscribe(a.onSessionChange)

	as.ResumeSession()

	return a, nil
}

// onSessionChange runs on every store mutation. Its one job is telling the
// user when an established session dies underneath them, e.g. when the
// server rejected a resumed token and forced a local logout.
func (a *App) onSessionChange() {
	authenticated := a.store.IsAuthenticated()

	a.mu.Lock()
	ended := a.wasAuthenticated && !authenticated
	a.wasAuthenticated = authenticated
	a.mu.Unlock()

	if ended {
		printlnFn("Your session has ended. Use 'login' to sign in again.")
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
