// Package eero talks to the router vendor's cloud API.
package eero

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"minirack-dashboard/internal/device"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -o eerofakes/fake_client.go . Client

const (
	DefaultBaseURL = "https://api-user.e2ro.com/2.2"
	DefaultTimeout = 10 * time.Second
	// TokenHeader carries the user token on every request.
	TokenHeader = "X-User-Token"
)

var (
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrUnexpectedShape  = errors.New("unexpected response shape")
)

// Client fetches the device list of a network. Any failure is returned as an error
// with a nil list; callers treat that the same as an empty list.
type Client interface {
	FetchDevices(ctx context.Context, networkID, token string) ([]device.Device, error)
}

type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Logger    zerolog.Logger
	// HTTPClient overrides the default client; its Timeout is left untouched.
	HTTPClient *http.Client
}

type eeroClient struct {
	baseURL   string
	userAgent string
	http      *http.Client
	log       zerolog.Logger
}

func New(opts Options) Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: opts.Timeout}
	}
	return &eeroClient{
		baseURL:   strings.TrimSuffix(opts.BaseURL, "/"),
		userAgent: opts.UserAgent,
		http:      hc,
		log:       opts.Logger,
	}
}

func (c *eeroClient) FetchDevices(ctx context.Context, networkID, token string) ([]device.Device, error) {
	endpoint := fmt.Sprintf("%s/networks/%s/devices", c.baseURL, url.PathEscape(networkID))
	c.log.Debug().Str("url", endpoint).Msg("Fetching devices")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if token != "" {
		req.Header.Set(TokenHeader, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch devices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("fetch devices: %w: HTTP %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read devices response: %w", err)
	}
	devices, err := DecodeDevices(body)
	if err != nil {
		return nil, fmt.Errorf("decode devices response: %w", err)
	}
	c.log.Info().Int("devices", len(devices)).Msg("Fetched devices")
	return devices, nil
}
