package notifications

// Severity picks the notification's border color.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)
