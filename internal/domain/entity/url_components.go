package entity

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned when a component edit would break an invariant.
var (
	ErrInvalidProtocol = errors.New("invalid protocol")
	ErrInvalidPort     = errors.New("invalid port")
)

// Protocol is the URL scheme, restricted to what the editor can synthesize.
type Protocol string

const (
	ProtocolHTTP  Protocol = "http"
	ProtocolHTTPS Protocol = "https"
)

// DefaultProtocol is used before a tab URL has been parsed.
const DefaultProtocol = ProtocolHTTPS

// Protocols lists the selectable protocols in display order.
func Protocols() []Protocol {
	return []Protocol{ProtocolHTTPS, ProtocolHTTP}
}

// ParseProtocol accepts "http" or "https" (case-insensitive, optional trailing ':').
func ParseProtocol(s string) (Protocol, error) {
	p := Protocol(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), ":"))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidProtocol, s)
	}
	return p, nil
}

// Valid reports whether p is one of the supported protocols.
func (p Protocol) Valid() bool {
	return p == ProtocolHTTP || p == ProtocolHTTPS
}

// Next cycles to the other protocol.
func (p Protocol) Next() Protocol {
	if p == ProtocolHTTP {
		return ProtocolHTTPS
	}
	return ProtocolHTTP
}

func (p Protocol) String() string {
	return string(p)
}

// URLComponents holds the editable parts of a URL, minus the query.
// Fragment is stored without its leading '#'. An empty Port means
// no explicit port in the output.
type URLComponents struct {
	Protocol Protocol `json:"protocol"`
	Hostname string   `json:"hostname"`
	Port     string   `json:"port"`
	Pathname string   `json:"pathname"`
	Fragment string   `json:"fragment"`
}

// DefaultURLComponents returns the blank component set used while loading
// and as the fallback for unparseable URLs.
func DefaultURLComponents() URLComponents {
	return URLComponents{Protocol: DefaultProtocol}
}

// ValidatePort accepts an empty string or ASCII digits only.
func ValidatePort(port string) error {
	for _, r := range port {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: %q", ErrInvalidPort, port)
		}
	}
	return nil
}

// QueryPair is one decoded key/value pair as it appeared in a query string.
type QueryPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
