package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dperalta/libris/internal/client/models"
)

// TokenSource supplies the current session credential. It is consulted on
// every request at send time, so calls issued right after a login or logout
// carry the current token, never a stale snapshot.
type TokenSource interface {
	Token() string
}

// HTTPClient implements Client against the REST backend.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
}

// NewHTTPClient builds an HTTPClient for the given base URL, e.g.
// "http://localhost:8000/api". tokens may not be nil.
func NewHTTPClient(baseURL string, timeout time.Duration, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		tokens:  tokens,
	}
}

// errorBody is the subset of an error response body worth surfacing.
// The backend is inconsistent about the field name.
type errorBody struct {
	Message string `json:"message"`
	Detail  string `json:"detail"`
}

// do performs one request. A non-nil in is sent as a JSON body; a non-nil out
// receives the decoded JSON response. The current token, if any, is attached
// as "Authorization: Token <t>".
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encoding %s %s request: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, path, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t := c.tokens.Token(); t != "" {
		req.Header.Set("Authorization", "Token "+t)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.mapError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding %s %s response: %w", method, path, err)
		}
	}
	return nil
}

// mapError normalizes an error response into the package's error taxonomy.
func (c *HTTPClient) mapError(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}

	msg := http.StatusText(resp.StatusCode)
	var eb errorBody
	if err := json.NewDecoder(resp.Body).Decode(&eb); err == nil {
		if eb.Message != "" {
			msg = eb.Message
		} else if eb.Detail != "" {
			msg = eb.Detail
		}
	}
	return &ServerError{Status: resp.StatusCode, Message: msg}
}

func (c *HTTPClient) Login(ctx context.Context, creds Credentials) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/token/", creds, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *HTTPClient) Register(ctx context.Context, reg Registration) error {
	return c.do(ctx, http.MethodPost, "/register/", reg, nil)
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.Profile, error) {
	var p models.Profile
	if err := c.do(ctx, http.MethodGet, "/user/profile/", nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/user/logout/", nil, nil)
}

func (c *HTTPClient) Books(ctx context.Context) ([]models.Book, error) {
	var books []models.Book
	if err := c.do(ctx, http.MethodGet, "/books/", nil, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (c *HTTPClient) Book(ctx context.Context, id string) (*models.Book, error) {
	var b models.Book
	if err := c.do(ctx, http.MethodGet, "/books/"+url.PathEscape(id)+"/", nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) CreateBook(ctx context.Context, in models.BookInput) (*models.Book, error) {
	var b models.Book
	if err := c.do(ctx, http.MethodPost, "/books/", in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) UpdateBook(ctx context.Context, id string, in models.BookInput) (*models.Book, error) {
	var b models.Book
	if err := c.do(ctx, http.MethodPut, "/books/"+url.PathEscape(id)+"/", in, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *HTTPClient) DeleteBook(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/books/"+url.PathEscape(id)+"/", nil, nil)
}

func (c *HTTPClient) BookStats(ctx context.Context, year int) (*models.BookStats, error) {
	var s models.BookStats
	if err := c.do(ctx, http.MethodGet, "/books/stats/?year="+strconv.Itoa(year), nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}
