package cli

import (
	"fmt"
	"strconv"
	"strings"

	"huntboard/internal/models"
)

// ParseApplicationID parses an application ID from a positional argument
func ParseApplicationID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid application ID '%s' (must be a positive integer)", arg)
	}
	return id, nil
}

// ParseStatusFlag maps user input to a pipeline status, accepting any casing
func ParseStatusFlag(input string) (models.Status, error) {
	status, err := models.ParseStatus(input)
	if err != nil {
		return "", fmt.Errorf("invalid status '%s' (must be: %s)", input, statusNames())
	}
	return status, nil
}

// StatusSuggestion is the suggestion line shown when a status fails to parse
func StatusSuggestion() string {
	return "Valid statuses are: " + statusNames()
}

func statusNames() string {
	names := make([]string, 0, len(models.AllStatuses()))
	for _, s := range models.AllStatuses() {
		names = append(names, strings.ToLower(string(s)))
	}
	return strings.Join(names, ", ")
}
