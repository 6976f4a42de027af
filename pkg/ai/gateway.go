package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// GatewayProvider calls a text-enhancement endpoint that takes
// {"text", "systemPrompt"} and answers {"result"}.
type GatewayProvider struct {
	Endpoint string
	HTTP     *http.Client
}

func NewGatewayProvider(endpoint string, httpClient *http.Client) *GatewayProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GatewayProvider{Endpoint: endpoint, HTTP: httpClient}
}

type enhanceRequest struct {
	Text         string `json:"text"`
	SystemPrompt string `json:"systemPrompt"`
}

type enhanceResponse struct {
	Result string `json:"result"`
}

// Rewrite performs a single POST; there is no retry.
func (g *GatewayProvider) Rewrite(ctx context.Context, text string, role Role) (string, error) {
	b, err := json.Marshal(enhanceRequest{Text: text, SystemPrompt: SystemPrompt(role)})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.Endpoint, bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("ai: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("ai: post %s: %w", g.Endpoint, err)
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("ai: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("ai: enhancement service returned status %d", resp.StatusCode)
	}

	var out enhanceResponse
	if err := json.Unmarshal(rb, &out); err != nil {
		return "", fmt.Errorf("ai: enhancement service returned non-json content: %w", err)
	}
	if out.Result == "" {
		return "", ErrEmptyResult
	}
	return out.Result, nil
}
