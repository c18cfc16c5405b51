package util

import "fmt"

// DefaultLogMaxLen is the default maximum length for truncated log output (1KB)
const DefaultLogMaxLen = 1024

// DefaultSecretPrefixLen is how many leading characters of a secret are kept
// for log correlation.
const DefaultSecretPrefixLen = 10

// SecretPrefix returns a fixed-length prefix of a secret value. Tokens and
// client secrets never reach logs or response bodies in full.
func SecretPrefix(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// TruncateLog truncates long strings for verbose logging.
// This helps control log file growth while maintaining diagnostics capability.
func TruncateLog(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + fmt.Sprintf("... [truncated, %d bytes total]", len(s))
}
