// Package models defines the data types exchanged with the book-catalog API.
package models

// Book is a single catalog entry as returned by the server.
type Book struct {
	ID            string  `json:"_id"`
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	PublishedDate string  `json:"published_date"`
	Genre         string  `json:"genre"`
	Price         float64 `json:"price"`
	Description   string  `json:"description,omitempty"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

// BookInput carries the user-editable fields for create and update calls.
// The server owns identifiers and timestamps.
type BookInput struct {
	Title         string  `json:"title"`
	Author        string  `json:"author"`
	PublishedDate string  `json:"published_date"`
	Genre         string  `json:"genre"`
	Price         float64 `json:"price"`
	Description   string  `json:"description,omitempty"`
}

// BookStats aggregates the catalog for a single publication year.
type BookStats struct {
	Year         int            `json:"year"`
	TotalBooks   int            `json:"total_books"`
	AveragePrice float64        `json:"average_price"`
	MinPrice     float64        `json:"min_price"`
	MaxPrice     float64        `json:"max_price"`
	Genres       map[string]int `json:"genres"`
}
