// Package emoji provides symbol constants for CLI status lines.
package emoji

// Symbols prefixing one-line confirmations printed by commands.
const (
	// Success marks a completed remote change.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Skipped marks a domain or locale left untouched.
	Skipped = "-"
)
