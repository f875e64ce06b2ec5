// Package api is the transport layer of the libris client. It defines the
// Client interface the services are written against and one HTTP
// implementation of it. All transport failures are normalized here into
// ErrUnavailable, ErrUnauthorized or *ServerError; raw net/http errors never
// leave this package.
package api

import (
	"context"

	"github.com/dperalta/libris/internal/client/models"
)

// Credentials is the login request body.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the account-creation request body.
type Registration struct {
	Username             string `json:"username"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Client is the remote book-catalog API.
//
// Contract:
//   - Login: exchange credentials for an opaque token.
//   - Register: create an account; establishing a session is the caller's job.
//   - Profile / Logout: credentialed account operations.
//   - Books...BookStats: credentialed catalog operations.
//
// All methods must honor context cancellation/timeouts.
type Client interface {
	Login(ctx context.Context, creds Credentials) (string, error)
	Register(ctx context.Context, reg Registration) error
	Profile(ctx context.Context) (*models.Profile, error)
	Logout(ctx context.Context) error

	Books(ctx context.Context) ([]models.Book, error)
	Book(ctx context.Context, id string) (*models.Book, error)
	CreateBook(ctx context.Context, in models.BookInput) (*models.Book, error)
	UpdateBook(ctx context.Context, id string, in models.BookInput) (*models.Book, error)
	DeleteBook(ctx context.Context, id string) error
	BookStats(ctx context.Context, year int) (*models.BookStats, error)
}
