// Package extract pulls structured job-posting fields out of free text,
// using a local LLM. The CLI uses it to prefill an application from a
// posting URL; everything it returns still goes through normal create
// validation.
package extract

import (
	"context"
	"fmt"
	"strings"
)

// Posting is the set of fields an extractor can recover from a job posting.
// Any of them may come back empty; callers treat empty as "not found".
type Posting struct {
	Company  string `json:"company"`
	Role     string `json:"role"`
	Location string `json:"location"`
	Salary   string `json:"salary"`
}

// Extractor recovers posting fields from page text.
type Extractor interface {
	Extract(ctx context.Context, text string) (*Posting, error)
}

// FromURL fetches a posting page and runs the extractor over its text.
func FromURL(ctx context.Context, extractor Extractor, url string) (*Posting, error) {
	text, err := FetchText(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posting: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("posting page at %s has no readable text", url)
	}

	posting, err := extractor.Extract(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to extract posting fields: %w", err)
	}
	return posting, nil
}
