package complete

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Client submits completion requests to the inference endpoint. It speaks
// the Ollama /api/generate wire format.
type Client struct {
	endpoint string
	model    string
	client   *http.Client
}

// NewClient creates a client for the given endpoint and model. timeout 0
// disables the HTTP timeout; a hung endpoint then blocks the invocation.
func NewClient(endpoint, model string, timeout time.Duration) *Client {
	return &Client{
		endpoint: endpoint,
		model:    model,
		client:   &http.Client{Timeout: timeout},
	}
}

// Model returns the configured model name.
func (c *Client) Model() string { return c.model }

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Raw     bool            `json:"raw"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64  `json:"temperature"`
	NumPredict  int      `json:"num_predict"`
	Stop        []string `json:"stop"`
}

type generateResponse struct {
	// Response is the generated text. An absent field decodes to "" and is
	// treated as an empty completion.
	Response string `json:"response"`
}

// Submit sends one completion request and returns the raw completion text.
// A single attempt is made; the user re-invokes to retry. Transport
// failures, non-success statuses, and malformed bodies all return an error.
func (c *Client) Submit(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Model:  c.model,
		Prompt: prompt,
		Raw:    true,
		Stream: false,
		Options: generateOptions{
			Temperature: genTemperature,
			NumPredict:  genNumPredict,
			Stop:        stopSequences,
		},
	})
	if err != nil {
		return "", err
	}

	// The payload is spooled through a scratch file handed to the
	// transport; the file is removed on every exit path.
	tmp, err := os.CreateTemp("", "copilot-req-*.json")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())
	defer tmp.Close()

	if _, err := tmp.Write(payload); err != nil {
		return "", err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, tmp)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.ContentLength = int64(len(payload))

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != 200 {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result generateResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse response: %w (body: %s)", err, string(body))
	}

	return result.Response, nil
}
