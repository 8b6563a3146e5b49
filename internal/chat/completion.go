package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type CompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionClient produces the bot's side of an exchange.
type CompletionClient interface {
	Complete(ctx context.Context, messages []CompletionMessage) (string, error)
}

type completionRequest struct {
	APIKey   string              `json:"apiKey"`
	Messages []CompletionMessage `json:"messages"`
}

type completionResponse struct {
	Text string `json:"text"`
}

// HTTPCompletionClient talks to an external chat completion endpoint.
type HTTPCompletionClient struct {
	client   *http.Client
	endpoint string
	apiKey   string
}

func NewHTTPCompletionClient(endpoint, apiKey string) *HTTPCompletionClient {
	return &HTTPCompletionClient{
		client:   &http.Client{Timeout: 15 * time.Second},
		endpoint: endpoint,
		apiKey:   apiKey,
	}
}

func (c *HTTPCompletionClient) Complete(ctx context.Context, messages []CompletionMessage) (string, error) {
	body, err := json.Marshal(completionRequest{APIKey: c.apiKey, Messages: messages})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return "", fmt.Errorf("completion endpoint returned %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var parsed completionResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return "", err
	}
	if parsed.Text == "" {
		return "", fmt.Errorf("completion endpoint returned an empty reply")
	}
	return parsed.Text, nil
}

// StubClient answers locally from the keyword reply table. It is the
// default when no completion endpoint is configured.
type StubClient struct{}

func (StubClient) Complete(_ context.Context, messages []CompletionMessage) (string, error) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return replyFor(messages[i].Content), nil
		}
	}
	return replyFor(""), nil
}
