// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// DedupeAndTrimUpper trims, uppercases and de-duplicates values, dropping
// blanks. First-seen order is kept. Registration numbers go through this before
// fan-out since the vehicle store compares them case-insensitively.
//
// Example:
//
//	DedupeAndTrimUpper([]string{" abc123", "XYZ789", "ABC123 ", ""})
//	// Returns: []string{"ABC123", "XYZ789"}
func DedupeAndTrimUpper(values []string) []string {
	return dedupe(values, NormalizeKey)
}

// NormalizeKey is the per-value normalization DedupeAndTrimUpper applies.
// Callers use it to find the slot a raw value was folded into.
func NormalizeKey(value string) string {
	return strings.ToUpper(strings.TrimSpace(value))
}

func dedupe(values []string, normalize func(string) string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		n := normalize(v)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			result = append(result, n)
		}
	}

	return result
}
