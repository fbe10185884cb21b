package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// ErrNotConfigured means no extractor endpoint is set up. Callers surface
// this as "feature off" rather than as a failure.
var ErrNotConfigured = errors.New("no extractor configured")

// OllamaExtractor extracts posting fields with a model served by a local
// Ollama instance.
type OllamaExtractor struct {
	baseURL string
	model   string
	client  *http.Client
}

var _ Extractor = &OllamaExtractor{}

// NewOllamaExtractor returns an extractor talking to the Ollama server at
// baseURL. Local models can be slow on first load, hence the long timeout.
func NewOllamaExtractor(baseURL, model string) *OllamaExtractor {
	return &OllamaExtractor{
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
		client: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
	Format string `json:"format,omitempty"`
}

type ollamaGenerateResponse struct {
	Model    string `json:"model"`
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

const extractPrompt = `You are reading the text of a job posting page. Extract these fields:

- company: the hiring company's name
- role: the job title
- location: where the job is based (or "Remote")
- salary: the pay or pay range as written

Reply with a JSON object containing exactly those four string keys. Use an
empty string for anything the page does not state. Page text follows:

`

// Extract sends the page text to Ollama and parses the structured reply.
func (o *OllamaExtractor) Extract(ctx context.Context, text string) (*Posting, error) {
	if o.baseURL == "" {
		return nil, ErrNotConfigured
	}

	reqPayload := ollamaGenerateRequest{
		Model:  o.model,
		Prompt: extractPrompt + text,
		Stream: false,
		Format: "json",
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := o.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var genResp ollamaGenerateResponse
	if err := json.Unmarshal(bodyBytes, &genResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	var posting Posting
	if err := json.Unmarshal([]byte(genResp.Response), &posting); err != nil {
		return nil, fmt.Errorf("model reply is not the expected JSON: %w", err)
	}

	posting.Company = strings.TrimSpace(posting.Company)
	posting.Role = strings.TrimSpace(posting.Role)
	posting.Location = strings.TrimSpace(posting.Location)
	posting.Salary = strings.TrimSpace(posting.Salary)

	return &posting, nil
}
