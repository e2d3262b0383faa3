package url

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/bnema/urlsmith/internal/domain/entity"
)

// ErrInvalidURL is returned when a string cannot be split into scheme, host and path.
var ErrInvalidURL = errors.New("invalid URL")

// ErrUnsupportedProtocol wraps ErrInvalidURL for schemes other than http and https.
var ErrUnsupportedProtocol = fmt.Errorf("%w: unsupported protocol", ErrInvalidURL)

var defaultPorts = map[entity.Protocol]string{
	entity.ProtocolHTTP:  "80",
	entity.ProtocolHTTPS: "443",
}

// Parse splits raw into its components and the ordered query pairs.
//
// Query keys and values are decoded; duplicates and order are preserved.
// The fragment is kept in its escaped form and stored without '#'.
// A port equal to the protocol default is dropped.
func Parse(raw string) (entity.URLComponents, []entity.QueryPair, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return entity.URLComponents{}, nil, fmt.Errorf("%w: empty string", ErrInvalidURL)
	}

	u, err := url.Parse(raw)
	if err != nil {
		return entity.URLComponents{}, nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return entity.URLComponents{}, nil, fmt.Errorf("%w: %q has no scheme or host", ErrInvalidURL, raw)
	}

	protocol, err := entity.ParseProtocol(u.Scheme)
	if err != nil {
		return entity.URLComponents{}, nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, u.Scheme)
	}

	port := u.Port()
	if port == defaultPorts[protocol] {
		port = ""
	}

	path := u.EscapedPath()
	if path == "" {
		path = "/"
	}

	components := entity.URLComponents{
		Protocol: protocol,
		Hostname: u.Hostname(),
		Port:     port,
		Pathname: path,
		Fragment: u.EscapedFragment(),
	}

	return components, ParseQuery(u.RawQuery), nil
}

// ParseQuery decodes a raw query string (without '?') into ordered pairs.
// Empty segments are skipped, a segment without '=' has an empty value,
// and segments that fail to decode are kept verbatim.
func ParseQuery(rawQuery string) []entity.QueryPair {
	pairs := make([]entity.QueryPair, 0)
	for _, segment := range strings.Split(rawQuery, "&") {
		if segment == "" {
			continue
		}
		key, value, _ := strings.Cut(segment, "=")
		pairs = append(pairs, entity.QueryPair{
			Key:   unescape(key),
			Value: unescape(value),
		})
	}
	return pairs
}

// DecodeFragment returns the human-readable form of an escaped fragment,
// or the input unchanged when it is not valid percent-encoding.
func DecodeFragment(fragment string) string {
	decoded, err := url.PathUnescape(fragment)
	if err != nil {
		return fragment
	}
	return decoded
}

// EncodeFragment escapes a fragment typed by the user so it can be written
// after '#'. It is the inverse of DecodeFragment for edited text.
func EncodeFragment(fragment string) string {
	u := url.URL{Fragment: fragment}
	return u.EscapedFragment()
}

func unescape(s string) string {
	decoded, err := url.QueryUnescape(s)
	if err != nil {
		return s
	}
	return decoded
}
