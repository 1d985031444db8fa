package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bengkelpos/backend/pkg/config"
	"github.com/bengkelpos/backend/pkg/logger"
)

const pingTimeout = 5 * time.Second

// Client talks to a Supabase-compatible storage API over its REST surface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	serviceKey string
}

// Pinger exposes the health-check surface.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Uploader is the surface controllers and services depend on.
type Uploader interface {
	Upload(ctx context.Context, bucket, name, contentType string, body io.Reader, upsert bool) (string, error)
	PublicURL(bucket, name string) string
	Remove(ctx context.Context, bucket, name string) error
}

// New builds a storage client and verifies the endpoint is reachable.
func New(ctx context.Context, cfg config.StorageConfig, logg *logger.Logger) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("storage base url is required")
	}
	if cfg.ServiceKey == "" {
		return nil, errors.New("storage service key is required")
	}

	client := &Client{
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		serviceKey: cfg.ServiceKey,
	}

	if err := client.Ping(ctx); err != nil {
		return nil, fmt.Errorf("storage health check failed: %w", err)
	}

	if logg != nil {
		logg.Info(ctx, "storage client initialized")
	}

	return client, nil
}

// Ping lists buckets to confirm the endpoint and key are valid.
func (c *Client) Ping(ctx context.Context) error {
	if c == nil || c.httpClient == nil {
		return errors.New("storage client not initialized")
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/storage/v1/bucket", nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("storage bucket check failed: %s", readableStatus(resp))
	}

	return nil
}

// Upload writes an object and returns its public URL.
func (c *Client) Upload(ctx context.Context, bucket, name, contentType string, body io.Reader, upsert bool) (string, error) {
	if bucket == "" || name == "" {
		return "", errors.New("bucket and object name are required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.objectURL(bucket, name), body)
	if err != nil {
		return "", err
	}
	c.authorize(req)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if upsert {
		req.Header.Set("x-upsert", "true")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("storage upload failed: %s", readableStatus(resp))
	}

	return c.PublicURL(bucket, name), nil
}

// PublicURL returns the unauthenticated download URL of an object.
func (c *Client) PublicURL(bucket, name string) string {
	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s",
		c.baseURL, url.PathEscape(bucket), url.PathEscape(name))
}

// Remove deletes an object from the bucket.
func (c *Client) Remove(ctx context.Context, bucket, name string) error {
	if bucket == "" || name == "" {
		return errors.New("bucket and object name are required")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.objectURL(bucket, name), nil)
	if err != nil {
		return err
	}
	c.authorize(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("storage remove failed: %s", readableStatus(resp))
	}

	return nil
}

// Close is a no-op; the client holds no persistent connections.
func (c *Client) Close() error {
	return nil
}

func (c *Client) objectURL(bucket, name string) string {
	return fmt.Sprintf("%s/storage/v1/object/%s/%s",
		c.baseURL, url.PathEscape(bucket), url.PathEscape(name))
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	req.Header.Set("apikey", c.serviceKey)
}

func readableStatus(resp *http.Response) string {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
	if len(b) > 0 {
		return fmt.Sprintf("%s: %s", resp.Status, strings.TrimSpace(string(b)))
	}
	return resp.Status
}
