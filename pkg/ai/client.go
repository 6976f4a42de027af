package ai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Role tells the provider which kind of resume text is being rewritten.
type Role string

const (
	RoleSummary    Role = "summary"
	RoleExperience Role = "experience"
)

// ErrEmptyResult is returned when the service answers without usable text.
var ErrEmptyResult = errors.New("ai: empty enhancement result")

// Provider rewrites a piece of resume text. There is exactly one concrete
// provider; it is selected in NewClient.
type Provider interface {
	Rewrite(ctx context.Context, text string, role Role) (string, error)
}

// Config selects and configures the enhancement provider.
type Config struct {
	Endpoint string
	Timeout  time.Duration
}

// Client wraps a Provider with the degrade-to-original contract: enhancement
// never loses the caller's text.
type Client struct {
	provider Provider
	log      *zap.Logger
}

// NewClient builds a client backed by the HTTP gateway provider.
func NewClient(cfg Config, log *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	gw := NewGatewayProvider(cfg.Endpoint, &http.Client{Timeout: timeout})
	return NewClientWithProvider(gw, log)
}

// NewClientWithProvider wraps an arbitrary provider, mainly for tests.
func NewClientWithProvider(p Provider, log *zap.Logger) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{provider: p, log: log}
}

// Enhance returns the rewritten text, or text unchanged when it is blank or
// the provider fails for any reason.
func (c *Client) Enhance(ctx context.Context, text string, role Role) string {
	out, _ := c.TryEnhance(ctx, text, role)
	return out
}

// TryEnhance behaves like Enhance but also reports why the original text was
// returned. Blank input is not a failure and makes no request.
func (c *Client) TryEnhance(ctx context.Context, text string, role Role) (string, error) {
	if strings.TrimSpace(text) == "" {
		return text, nil
	}

	out, err := c.provider.Rewrite(ctx, text, role)
	if err == nil && strings.TrimSpace(out) == "" {
		err = ErrEmptyResult
	}
	if err != nil {
		c.log.Warn("enhancement failed, keeping original text",
			zap.String("role", string(role)),
			zap.Error(err))
		return text, err
	}

	c.log.Debug("enhancement succeeded",
		zap.String("role", string(role)),
		zap.Int("in_len", len(text)),
		zap.Int("out_len", len(out)))
	return out, nil
}
