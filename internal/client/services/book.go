package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/dperalta/libris/internal/client/api"
	"github.com/dperalta/libris/internal/client/models"
)

// BookService exposes the catalog operations. Every call goes through the
// shared transport and therefore inherits credential attachment; the service
// never touches the session store.
type BookService interface {
	List(ctx context.Context) ([]models.Book, error)
	Get(ctx context.Context, id string) (*models.Book, error)
	Create(ctx context.Context, in models.BookInput) (*models.Book, error)
	Update(ctx context.Context, id string, in models.BookInput) (*models.Book, error)
	Delete(ctx context.Context, id string) error
	StatsByYear(ctx context.Context, year int) (*models.BookStats, error)
}

type bookService struct {
	client api.Client
}

func NewBookService(client api.Client) BookService {
	return &bookService{client: client}
}

func (b *bookService) List(ctx context.Context) ([]models.Book, error) {
	books, err := b.client.Books(ctx)
	if err != nil {
		return nil, fmt.Errorf("book list error: %w", err)
	}
	return books, nil
}

func (b *bookService) Get(ctx context.Context, id string) (*models.Book, error) {
	book, err := b.client.Book(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("book fetch error: %w", err)
	}
	return book, nil
}

func (b *bookService) Create(ctx context.Context, in models.BookInput) (*models.Book, error) {
	book, err := b.client.CreateBook(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("book creation error: %w", err)
	}
	return book, nil
}

func (b *bookService) Update(ctx context.Context, id string, in models.BookInput) (*models.Book, error) {
	book, err := b.client.UpdateBook(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("book update error: %w", err)
	}
	return book, nil
}

func (b *bookService) Delete(ctx context.Context, id string) error {
	if err := b.client.DeleteBook(ctx, id); err != nil {
		return fmt.Errorf("book deletion error: %w", err)
	}
	return nil
}

// StatsByYear returns nil stats without an error when the server has no data
// for the requested year.
func (b *bookService) StatsByYear(ctx context.Context, year int) (*models.BookStats, error) {
	stats, err := b.client.BookStats(ctx, year)
	if err != nil {
		var se *api.ServerError
		if errors.As(err, &se) && se.Status == http.StatusNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("stats fetch error: %w", err)
	}
	return stats, nil
}
