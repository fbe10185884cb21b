package extract

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// mockExtractor records the text it was given and returns a fixed posting
type mockExtractor struct {
	gotText string
	posting *Posting
	err     error
}

func (m *mockExtractor) Extract(ctx context.Context, text string) (*Posting, error) {
	m.gotText = text
	if m.err != nil {
		return nil, m.err
	}
	return m.posting, nil
}

// newOllamaStub serves /api/generate, returning reply as the model output
func newOllamaStub(t *testing.T, reply string, gotReq *ollamaGenerateRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" {
			t.Errorf("Expected path /api/generate, got %s", r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(gotReq); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}
		resp := ollamaGenerateResponse{Response: reply, Done: true}
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			t.Errorf("Failed to encode response: %v", err)
		}
	}))
}

// ============================================================================
// TEST CASES - OLLAMA EXTRACTOR
// ============================================================================

func TestOllamaExtract(t *testing.T) {
	t.Parallel()

	var gotReq ollamaGenerateRequest
	server := newOllamaStub(t, `{"company": " Initech ", "role": "Backend Engineer", "location": "Remote", "salary": "$150k"}`, &gotReq)
	defer server.Close()

	extractor := NewOllamaExtractor(server.URL, "llama3.2")

	posting, err := extractor.Extract(context.Background(), "We are Initech, hiring a Backend Engineer...")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gotReq.Model != "llama3.2" {
		t.Errorf("Expected model llama3.2, got %s", gotReq.Model)
	}
	if gotReq.Format != "json" {
		t.Errorf("Expected format json, got %s", gotReq.Format)
	}
	if gotReq.Stream {
		t.Error("Expected stream to be false")
	}
	if !strings.Contains(gotReq.Prompt, "We are Initech") {
		t.Error("Expected page text in the prompt")
	}

	// Fields come back trimmed
	if posting.Company != "Initech" {
		t.Errorf("Expected company Initech, got %q", posting.Company)
	}
	if posting.Role != "Backend Engineer" {
		t.Errorf("Expected role Backend Engineer, got %q", posting.Role)
	}
	if posting.Location != "Remote" {
		t.Errorf("Expected location Remote, got %q", posting.Location)
	}
	if posting.Salary != "$150k" {
		t.Errorf("Expected salary $150k, got %q", posting.Salary)
	}
}

func TestOllamaExtractPartialFields(t *testing.T) {
	t.Parallel()

	var gotReq ollamaGenerateRequest
	server := newOllamaStub(t, `{"company": "Globex", "role": "SRE", "location": "", "salary": ""}`, &gotReq)
	defer server.Close()

	extractor := NewOllamaExtractor(server.URL, "llama3.2")

	posting, err := extractor.Extract(context.Background(), "page text")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if posting.Location != "" || posting.Salary != "" {
		t.Errorf("Expected empty location and salary, got %q and %q", posting.Location, posting.Salary)
	}
}

func TestOllamaExtractServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer server.Close()

	extractor := NewOllamaExtractor(server.URL, "nope")

	_, err := extractor.Extract(context.Background(), "page text")
	if err == nil {
		t.Fatal("Expected an error for server failure, got nil")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("Expected status in error, got %v", err)
	}
}

func TestOllamaExtractBadReply(t *testing.T) {
	t.Parallel()

	var gotReq ollamaGenerateRequest
	server := newOllamaStub(t, "Sure! The company is Initech.", &gotReq)
	defer server.Close()

	extractor := NewOllamaExtractor(server.URL, "llama3.2")

	_, err := extractor.Extract(context.Background(), "page text")
	if err == nil {
		t.Fatal("Expected an error for non-JSON reply, got nil")
	}
}

func TestOllamaExtractNotConfigured(t *testing.T) {
	t.Parallel()

	extractor := NewOllamaExtractor("", "llama3.2")

	_, err := extractor.Extract(context.Background(), "page text")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Expected ErrNotConfigured, got %v", err)
	}
}

// ============================================================================
// TEST CASES - PAGE TEXT
// ============================================================================

func TestFetchText(t *testing.T) {
	t.Parallel()

	page := `<!DOCTYPE html>
<html>
<head><title>Careers</title><style>body { color: red }</style></head>
<body>
  <script>analytics.track("view")</script>
  <h1>Backend   Engineer</h1>
  <p>Initech is hiring in <b>Austin, TX</b>.</p>
</body>
</html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer server.Close()

	text, err := FetchText(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if strings.Contains(text, "analytics") {
		t.Errorf("Expected script content stripped, got %q", text)
	}
	if strings.Contains(text, "color: red") {
		t.Errorf("Expected style content stripped, got %q", text)
	}
	if strings.Contains(text, "Careers") {
		t.Errorf("Expected head content stripped, got %q", text)
	}
	if !strings.Contains(text, "Backend Engineer") {
		t.Errorf("Expected collapsed heading text, got %q", text)
	}
	if !strings.Contains(text, "Austin, TX") {
		t.Errorf("Expected body text, got %q", text)
	}
}

func TestFetchTextStatusError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusGone)
	}))
	defer server.Close()

	_, err := FetchText(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Expected an error for non-200 status, got nil")
	}
}

func TestFetchTextCapsLength(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("posting word ", 10000)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>" + long + "</body></html>"))
	}))
	defer server.Close()

	text, err := FetchText(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(text) > maxTextBytes {
		t.Errorf("Expected text capped at %d bytes, got %d", maxTextBytes, len(text))
	}
	if strings.HasSuffix(text, " ") {
		t.Errorf("Expected cap to land on a word boundary")
	}
}

func TestHTMLToTextNestedSkips(t *testing.T) {
	t.Parallel()

	doc := `<div>before<svg><script>inner()</script><circle/></svg>after</div>`
	text, err := htmlToText(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if text != "before after" {
		t.Errorf("Expected %q, got %q", "before after", text)
	}
}

// ============================================================================
// TEST CASES - FROM URL
// ============================================================================

func TestFromURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><h1>SRE at Globex</h1></body></html>"))
	}))
	defer server.Close()

	mock := &mockExtractor{posting: &Posting{Company: "Globex", Role: "SRE"}}

	posting, err := FromURL(context.Background(), mock, server.URL)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if posting.Company != "Globex" {
		t.Errorf("Expected company Globex, got %s", posting.Company)
	}
	if !strings.Contains(mock.gotText, "SRE at Globex") {
		t.Errorf("Expected page text passed to the extractor, got %q", mock.gotText)
	}
}

func TestFromURLEmptyPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><script>only()</script></body></html>"))
	}))
	defer server.Close()

	mock := &mockExtractor{posting: &Posting{}}

	_, err := FromURL(context.Background(), mock, server.URL)
	if err == nil {
		t.Fatal("Expected an error for a page with no text, got nil")
	}
	if mock.gotText != "" {
		t.Error("Expected the extractor not to be called for an empty page")
	}
}

func TestFromURLExtractorError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body>text</body></html>"))
	}))
	defer server.Close()

	mock := &mockExtractor{err: errors.New("model offline")}

	_, err := FromURL(context.Background(), mock, server.URL)
	if err == nil {
		t.Fatal("Expected the extractor error to propagate, got nil")
	}
	if !strings.Contains(err.Error(), "model offline") {
		t.Errorf("Expected wrapped extractor error, got %v", err)
	}
}
