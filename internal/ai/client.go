// Package ai implements a minimal client for an OpenAI-compatible
// chat-completions endpoint. The service is treated as an opaque
// text-completion collaborator: the client sends role/content messages and
// returns the generated text, classifying only the status codes the caller
// must react to differently (rate limiting and exhausted credits).
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// Upstream conditions with distinct caller semantics.
var (
	// ErrRateLimited signals HTTP 429 from the completion service. The
	// operation may be retried later by the caller; the client itself never
	// retries.
	ErrRateLimited = errors.New("completion service rate limited")

	// ErrBillingExhausted signals HTTP 402: the account has no credits left.
	// Retrying will not help; an operator has to intervene.
	ErrBillingExhausted = errors.New("completion service credits exhausted")

	// ErrEmptyCompletion signals a 2xx response that carried no usable text.
	ErrEmptyCompletion = errors.New("empty completion")
)

// HTTPError is any other non-2xx upstream response.
type HTTPError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	return fmt.Sprintf("completion service: status %d: %s", e.StatusCode, truncateBody(e.Body))
}

func truncateBody(s string) string {
	const max = 256
	if len(s) > max {
		return s[:max] + "…"
	}
	return s
}

// Message is one chat turn sent to the completion service.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content,omitempty"`
		} `json:"message,omitempty"`
		Text string `json:"text,omitempty"`
	} `json:"choices"`
}

// Client calls a chat-completions endpoint. The zero value is not usable;
// construct with New.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	timeout time.Duration

	httpClient *http.Client
}

// New builds a Client for the given base URL (scheme + host, no trailing
// slash needed), API key, and model identifier.
func New(baseURL, apiKey, model string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("ai: base URL required")
	}
	if strings.TrimSpace(model) == "" {
		return nil, errors.New("ai: model required")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:   true,
		MaxIdleConns:        100,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     strings.TrimSpace(apiKey),
		model:      model,
		timeout:    timeout,
		httpClient: &http.Client{Transport: tr},
	}, nil
}

// NewWithHTTPClient is intended for tests; it avoids network access by using
// a custom RoundTripper.
func NewWithHTTPClient(baseURL, apiKey, model string, timeout time.Duration, hc *http.Client) (*Client, error) {
	c, err := New(baseURL, apiKey, model, timeout)
	if err != nil {
		return nil, err
	}
	if hc != nil {
		c.httpClient = hc
	}
	return c, nil
}

// Complete posts the messages and returns the generated text of the first
// non-empty choice. 429 maps to ErrRateLimited, 402 to ErrBillingExhausted,
// any other non-2xx to *HTTPError.
func (c *Client) Complete(ctx context.Context, messages []Message) (string, error) {
	msgs := make([]Message, 0, len(messages))
	for _, m := range messages {
		if strings.TrimSpace(m.Role) == "" || strings.TrimSpace(m.Content) == "" {
			continue
		}
		msgs = append(msgs, m)
	}
	if len(msgs) == 0 {
		return "", errors.New("ai: no messages")
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(chatCompletionRequest{Model: c.model, Messages: msgs}); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		switch resp.StatusCode {
		case http.StatusTooManyRequests:
			return "", ErrRateLimited
		case http.StatusPaymentRequired:
			return "", ErrBillingExhausted
		default:
			return "", &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
		}
	}

	var out chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}

	for _, choice := range out.Choices {
		if strings.TrimSpace(choice.Message.Content) != "" {
			return choice.Message.Content, nil
		}
		if strings.TrimSpace(choice.Text) != "" {
			return choice.Text, nil
		}
	}
	return "", ErrEmptyCompletion
}
