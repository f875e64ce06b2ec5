package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/dperalta/libris/internal/client/models"
)

// List prints the whole catalog.
func (a *App) List(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	books, err := a.bookService.List(ctx)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	if len(books) == 0 {
		printlnFn("The catalog is empty.")
		return nil
	}
	for _, b := range books {
		printlnFn(fmt.Sprintf("%s  %-30s  %-20s  %s  %8.2f", b.ID, b.Title, b.Author, b.PublishedDate, b.Price))
	}
	return nil
}

// Show prints one book in full.
func (a *App) Show(ctx context.Context, id string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	b, err := a.bookService.Get(ctx, id)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	printBook(b)
	return nil
}

// Add prompts for the book fields and creates a catalog entry.
func (a *App) Add(ctx context.Context) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	in, ok, err := a.promptBook(models.BookInput{})
	if err != nil || !ok {
		return err
	}

	b, err := a.bookService.Create(ctx, *in)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Created %q (%s).", b.Title, b.ID))
	return nil
}

// Edit fetches a book, prompts for new values (empty input keeps the current
// one) and submits the update.
func (a *App) Edit(ctx context.Context, id string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	current, err := a.bookService.Get(ctx, id)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	in, ok, err := a.promptBook(models.BookInput{
		Title:         current.Title,
		Author:        current.Author,
		PublishedDate: current.PublishedDate,
		Genre:         current.Genre,
		Price:         current.Price,
		Description:   current.Description,
	})
	if err != nil || !ok {
		return err
	}

	b, err := a.bookService.Update(ctx, id, *in)
	if err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	printlnFn(fmt.Sprintf("Updated %q.", b.Title))
	return nil
}

// Delete removes a book after confirmation.
func (a *App) Delete(ctx context.Context, id string) error {
	if !a.requireAuth(ctx) {
		return nil
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete book %s? (y/N)", id), os.Stdout)
	if err != nil {
		return err
	}
	if answer != "y" && answer != "Y" {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.bookService.Delete(ctx, id); err != nil {
		printlnFn(errorMessage(err))
		return err
	}

	printlnFn("Deleted.")
	return nil
}

// promptBook collects the editable fields. defaults pre-fill the prompts for
// edits; on validation problems it reports to the user and returns ok=false.
func (a *App) promptBook(defaults models.BookInput) (*models.BookInput, bool, error) {
	in := defaults

	title, err := getSimpleText(a.reader, promptWithDefault("Title", defaults.Title), os.Stdout)
	if err != nil {
		return nil, false, err
	}
	if title != "" {
		in.Title = title
	}
	if in.Title == "" {
		printlnFn("Title is required.")
		return nil, false, nil
	}

	author, err := getSimpleText(a.reader, promptWithDefault("Author", defaults.Author), os.Stdout)
	if err != nil {
		return nil, false, err
	}
	if author != "" {
		in.Author = author
	}
	if in.Author == "" {
		printlnFn("Author is required.")
		return nil, false, nil
	}

	published, err := getSimpleText(a.reader, promptWithDefault("Published date (YYYY-MM-DD)", defaults.PublishedDate), os.Stdout)
	if err != nil {
		return nil, false, err
	}
	if published != "" {
		in.PublishedDate = published
	}
	if _, err := time.Parse("2006-01-02", in.PublishedDate); err != nil {
		printlnFn("Published date must be in YYYY-MM-DD format.")
		return nil, false, nil
	}

	genre, err := getSimpleText(a.reader, promptWithDefault("Genre", defaults.Genre), os.Stdout)
	if err != nil {
		return nil, false, err
	}
	if genre != "" {
		in.Genre = genre
	}

	price, err := getSimpleText(a.reader, promptWithDefault("Price", formatPrice(defaults.Price)), os.Stdout)
	if err != nil {
		return nil, false, err
	}
	if price != "" {
		parsed, err := strconv.ParseFloat(price, 64)
		if err != nil || parsed < 0 {
			printlnFn("Price must be a non-negative number.")
			return nil, false, nil
		}
		in.Price = parsed
	}

	description, err := getSimpleText(a.reader, promptWithDefault("Description (optional)", defaults.Description), os.Stdout)
	if err != nil {
		return nil, false, err
	}
	if description != "" {
		in.Description = description
	}

	return &in, true, nil
}

func promptWithDefault(label, value string) string {
	if value == "" {
		return label
	}
	return fmt.Sprintf("%s [%s]", label, value)
}

func formatPrice(p float64) string {
	if p == 0 {
		return ""
	}
	return strconv.FormatFloat(p, 'f', 2, 64)
}

func printBook(b *models.Book) {
	printlnFn(fmt.Sprintf("Title:      %s", b.Title))
	printlnFn(fmt.Sprintf("Author:     %s", b.Author))
	printlnFn(fmt.Sprintf("Published:  %s", b.PublishedDate))
	printlnFn(fmt.Sprintf("Genre:      %s", b.Genre))
	printlnFn(fmt.Sprintf("Price:      %.2f", b.Price))
	if b.Description != "" {
		printlnFn(fmt.Sprintf("Description: %s", b.Description))
	}
	printlnFn(fmt.Sprintf("Created:    %s", b.CreatedAt))
	printlnFn(fmt.Sprintf("Updated:    %s", b.UpdatedAt))
}
