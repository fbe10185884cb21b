package cli

import (
	"testing"

	"huntboard/internal/models"
)

// ============================================================================
// Application ID Parsing Tests
// ============================================================================

func TestParseApplicationID_Valid(t *testing.T) {
	tests := []struct {
		arg  string
		want int
	}{
		{"1", 1},
		{"42", 42},
		{" 7 ", 7},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			id, err := ParseApplicationID(tt.arg)
			if err != nil {
				t.Errorf("Expected %q to parse, got error: %v", tt.arg, err)
			}
			if id != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, id)
			}
		})
	}
}

func TestParseApplicationID_Invalid(t *testing.T) {
	tests := []struct {
		arg         string
		description string
	}{
		{"", "empty string"},
		{"abc", "not a number"},
		{"0", "zero"},
		{"-3", "negative"},
		{"1.5", "fractional"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if _, err := ParseApplicationID(tt.arg); err == nil {
				t.Errorf("Expected %q to be rejected", tt.arg)
			}
		})
	}
}

// ============================================================================
// Status Parsing Tests
// ============================================================================

func TestParseStatusFlag_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  models.Status
	}{
		{"wishlist", models.StatusWishlist},
		{"APPLIED", models.StatusApplied},
		{"Interview", models.StatusInterview},
		{" offer ", models.StatusOffer},
		{"accepted", models.StatusAccepted},
		{"rejected", models.StatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			status, err := ParseStatusFlag(tt.input)
			if err != nil {
				t.Errorf("Expected %q to parse, got error: %v", tt.input, err)
			}
			if status != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, status)
			}
		})
	}
}

func TestParseStatusFlag_Invalid(t *testing.T) {
	tests := []string{"", "archived", "wish list", "todo"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			if _, err := ParseStatusFlag(input); err == nil {
				t.Errorf("Expected %q to be rejected", input)
			}
		})
	}
}
