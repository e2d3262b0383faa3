// Package url parses tab URLs into editable components and synthesizes URLs back from them.
package url

import (
	"net/url"
	"strings"

	"github.com/bnema/urlsmith/internal/domain/entity"
)

// Normalize adds an https:// prefix to host-like input without a scheme.
// Returns the input unchanged if it already has a scheme or doesn't look like a URL.
func Normalize(input string) string {
	return NormalizeWithProtocol(input, entity.DefaultProtocol)
}

// NormalizeWithProtocol is Normalize with a caller-chosen scheme for
// host-like input. An invalid protocol falls back to the default.
func NormalizeWithProtocol(input string, protocol entity.Protocol) string {
	if !protocol.Valid() {
		protocol = entity.DefaultProtocol
	}
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	if hasScheme(input) {
		return input
	}

	if LooksLikeURL(input) {
		return protocol.String() + "://" + input
	}

	return input
}

// LooksLikeURL checks if the input appears to be a URL rather than free text.
// Returns true for explicit http(s) URLs, "localhost[:port]" and strings like
// "github.com/user" that contain a dot and no spaces.
func LooksLikeURL(input string) bool {
	if input == "" {
		return false
	}

	if hasScheme(input) {
		return true
	}

	if strings.Contains(input, " ") {
		return false
	}

	host := input
	if i := strings.IndexAny(host, "/?#"); i >= 0 {
		host = host[:i]
	}
	if host == "localhost" || strings.HasPrefix(host, "localhost:") {
		return true
	}

	return strings.Contains(host, ".")
}

// ExtractDomain extracts the host (without "www.") from a URL string.
func ExtractDomain(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return strings.TrimPrefix(parsed.Hostname(), "www.")
}

func hasScheme(input string) bool {
	lower := strings.ToLower(input)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
