// Package autocomplete holds the per-key query value history used for input suggestions.
package autocomplete

import "strings"

// HasPrefixFold reports whether s starts with prefix, ignoring case.
func HasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

// filterByPrefix keeps non-empty candidates that start with input (case-insensitive),
// in their original order, up to limit (limit <= 0 means no limit).
func filterByPrefix(candidates []string, input string, limit int) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if input != "" && !HasPrefixFold(c, input) {
			continue
		}
		out = append(out, c)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
