package cli

import (
	"fmt"
)

// FormatError renders err as a one-line message for stderr.
func FormatError(err error) string {
	return fmt.Sprintf("Error: %v", err)
}

// FormatSuccess marks msg as a completed action.
func FormatSuccess(msg string) string {
	return fmt.Sprintf("✓ %s", msg)
}

// FormatWarning marks msg as a notice that does not stop the run.
func FormatWarning(msg string) string {
	return fmt.Sprintf("⚠ %s", msg)
}
