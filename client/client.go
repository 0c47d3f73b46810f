// Package client is the Go SDK for the portfolio server HTTP API.
package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/lionetto/portfolio-server/internal/model"
)

// Client talks to one portfolio server instance. Mutating calls carry the
// shared admin password configured with WithPassword; read calls never need
// it.
type Client struct {
	http     *resty.Client
	password string
}

// Option configures the Client.
type Option func(*Client)

// WithPassword sets the admin credential sent with mutating calls.
func WithPassword(password string) Option {
	return func(c *Client) { c.password = password }
}

// WithTimeout overrides the default 30s request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.SetTimeout(d) }
}

// New constructs a Client for the given base URL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		panic("baseURL cannot be empty")
	}
	c := &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(30 * time.Second),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Login verifies the configured password against the server.
func (c *Client) Login(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"password": c.password}).
		Post("/api/login")
	if err != nil {
		return fmt.Errorf("login request failed: %w", err)
	}
	return statusToError(resp)
}

// SiteContent fetches the full site-content document. When the server is
// unreachable or answers with an error, the bundled default document is
// returned so renderers always have something to show.
func (c *Client) SiteContent(ctx context.Context) (*model.SiteContent, error) {
	var doc model.SiteContent
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&doc).
		Get("/api/site-content")
	if err != nil || resp.IsError() {
		return model.DefaultSiteContent(), nil
	}
	return &doc, nil
}

// SaveSiteContent replaces the whole site-content document.
func (c *Client) SaveSiteContent(ctx context.Context, doc *model.SiteContent) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]any{"content": doc, "password": c.password}).
		Post("/api/site-content")
	if err != nil {
		return fmt.Errorf("save site content failed: %w", err)
	}
	return statusToError(resp)
}

// UploadProfileImage stores a new profile image and returns its public URL.
// The caller still has to write the URL into the content document.
func (c *Client) UploadProfileImage(ctx context.Context, image io.Reader, filename string) (string, error) {
	var out struct {
		ImageURL string `json:"imageUrl"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("image", filename, image).
		SetFormData(map[string]string{"password": c.password}).
		SetResult(&out).
		Post("/api/profile-image")
	if err != nil {
		return "", fmt.Errorf("profile image upload failed: %w", err)
	}
	if err := statusToError(resp); err != nil {
		return "", err
	}
	return out.ImageURL, nil
}

// Portfolio lists all gallery items. Falls back to the bundled default list
// when the server cannot be reached, mirroring SiteContent.
func (c *Client) Portfolio(ctx context.Context) ([]model.PortfolioItem, error) {
	var items []model.PortfolioItem
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&items).
		Get("/api/portfolio")
	if err != nil || resp.IsError() {
		return model.DefaultPortfolio(), nil
	}
	return items, nil
}

// CreatePortfolioItem uploads an image and appends a gallery item for it.
func (c *Client) CreatePortfolioItem(ctx context.Context, image io.Reader, filename, title, link string) (*model.PortfolioItem, error) {
	var item model.PortfolioItem
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("image", filename, image).
		SetFormData(map[string]string{
			"title":    title,
			"link":     link,
			"password": c.password,
		}).
		SetResult(&item).
		Post("/api/portfolio")
	if err != nil {
		return nil, fmt.Errorf("create portfolio item failed: %w", err)
	}
	if err := statusToError(resp); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeletePortfolioItem removes a gallery item and its stored image.
func (c *Client) DeletePortfolioItem(ctx context.Context, id string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"password": c.password}).
		Delete("/api/portfolio/" + id)
	if err != nil {
		return fmt.Errorf("delete portfolio item failed: %w", err)
	}
	return statusToError(resp)
}

// ChatSession identifies one assistant conversation on the server.
type ChatSession struct {
	ID       string `json:"sessionId"`
	Greeting string `json:"greeting"`
}

// StartChat opens an assistant session and returns its greeting.
func (c *Client) StartChat(ctx context.Context) (*ChatSession, error) {
	var sess ChatSession
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&sess).
		Post("/api/chat/sessions")
	if err != nil {
		return nil, fmt.Errorf("start chat failed: %w", err)
	}
	if err := statusToError(resp); err != nil {
		return nil, err
	}
	return &sess, nil
}

// SendChat relays one user message and returns the assistant reply.
func (c *Client) SendChat(ctx context.Context, sessionID, message string) (string, error) {
	var out struct {
		Reply string `json:"reply"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(map[string]string{"message": message}).
		SetResult(&out).
		Post("/api/chat/sessions/" + sessionID + "/messages")
	if err != nil {
		return "", fmt.Errorf("send chat failed: %w", err)
	}
	if err := statusToError(resp); err != nil {
		return "", err
	}
	return out.Reply, nil
}

// Health reports whether the server answers its health probe.
func (c *Client) Health(ctx context.Context) error {
	resp, err := c.http.R().
		SetContext(ctx).
		Get("/api/health")
	if err != nil {
		return fmt.Errorf("health probe failed: %w", err)
	}
	return statusToError(resp)
}
