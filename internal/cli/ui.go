package cli

import (
	"fmt"
	"time"

	"github.com/Kronuz/base-x-go/internal/format"
)

const (
	// TruncationLimit is the character threshold from which an encoded or
	// decoded string is truncated in standard output to avoid cluttering
	// the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of characters to display at the
	// beginning and end of a truncated string.
	DisplayEdges = 25
)

// FormatExecutionDuration delegates to format.FormatExecutionDuration.
func FormatExecutionDuration(d time.Duration) string {
	return format.FormatExecutionDuration(d)
}

// truncate shortens s to its first and last DisplayEdges characters,
// joined by an ellipsis marker, when s exceeds TruncationLimit.
func truncate(s string) (out string, truncated bool) {
	if len(s) <= TruncationLimit {
		return s, false
	}
	return fmt.Sprintf("%s...%s", s[:DisplayEdges], s[len(s)-DisplayEdges:]), true
}
