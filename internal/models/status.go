package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownStatus is returned when user input names a pipeline stage
// outside the known set.
var ErrUnknownStatus = errors.New("unknown status")

// Status identifies the pipeline column an application lives in. The set is
// closed: every record is in exactly one of these stages, and the board
// renders them in the order AllStatuses returns.
type Status string

const (
	StatusWishlist  Status = "WISHLIST"
	StatusApplied   Status = "APPLIED"
	StatusInterview Status = "INTERVIEW"
	StatusOffer     Status = "OFFER"
	StatusAccepted  Status = "ACCEPTED"
	StatusRejected  Status = "REJECTED"
)

// AllStatuses returns every pipeline stage in board display order.
func AllStatuses() []Status {
	return []Status{
		StatusWishlist,
		StatusApplied,
		StatusInterview,
		StatusOffer,
		StatusAccepted,
		StatusRejected,
	}
}

// Valid reports whether s is one of the known pipeline stages.
func (s Status) Valid() bool {
	switch s {
	case StatusWishlist, StatusApplied, StatusInterview, StatusOffer, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Display returns the stage name formatted for column headers.
func (s Status) Display() string {
	str := string(s)
	if len(str) < 2 {
		return str
	}
	return str[:1] + strings.ToLower(str[1:])
}

// ParseStatus converts user input to a Status, accepting any casing and
// surrounding whitespace.
func ParseStatus(input string) (Status, error) {
	s := Status(strings.ToUpper(strings.TrimSpace(input)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, input)
	}
	return s, nil
}
