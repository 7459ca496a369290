// internal/app/system/normalize/normalize.go
package normalize

import "strings"

// Email lowercases and trims an email address for lookups and storage.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name collapses interior whitespace runs and trims the ends.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Role canonicalizes a role value for comparisons.
func Role(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
