package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Caps on how much page we download and how much text we hand to the model.
const (
	maxPageBytes = 2 << 20
	maxTextBytes = 16 << 10
)

var pageClient = &http.Client{Timeout: 30 * time.Second}

// FetchText downloads a posting page and reduces it to readable text:
// markup stripped, whitespace collapsed, length capped.
func FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "huntboard/1.0")

	resp, err := pageClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("page returned status %d", resp.StatusCode)
	}

	text, err := htmlToText(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("read page: %w", err)
	}

	if len(text) > maxTextBytes {
		cut := strings.LastIndexByte(text[:maxTextBytes], ' ')
		if cut < 0 {
			cut = maxTextBytes
		}
		text = text[:cut]
	}
	return text, nil
}

// Subtrees that never contain posting text.
func skippedTag(name string) bool {
	switch name {
	case "script", "style", "noscript", "head", "template", "svg", "iframe":
		return true
	}
	return false
}

// htmlToText collects the visible text of an HTML document. Truncated input
// is fine; the tokenizer yields whatever text came before the cut.
func htmlToText(r io.Reader) (string, error) {
	z := html.NewTokenizer(r)
	var b strings.Builder
	skip := 0

	for {
		switch z.Next() {
		case html.ErrorToken:
			err := z.Err()
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return strings.Join(strings.Fields(b.String()), " "), nil
			}
			return "", err

		case html.StartTagToken:
			name, _ := z.TagName()
			if skippedTag(string(name)) {
				skip++
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if skippedTag(string(name)) && skip > 0 {
				skip--
			}

		case html.TextToken:
			if skip == 0 {
				b.Write(z.Text())
				b.WriteByte(' ')
			}
		}
	}
}
