package events

import "testing"

// A typed-nil *Client stored in an EventPublisher is not == nil, which is
// why callers hold the concrete *Client and nil-check that instead.
func TestPublisherTypedNil(t *testing.T) {
	var publisher EventPublisher
	if publisher != nil {
		t.Error("zero-value interface should be nil")
	}

	var client *Client
	publisher = client
	if publisher == nil {
		t.Error("interface holding a typed nil should not compare equal to nil")
	}
}

func TestClientSatisfiesPublisher(t *testing.T) {
	var _ EventPublisher = (*Client)(nil)
}
