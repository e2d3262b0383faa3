package entity

// SessionState is the lifecycle state of an editor session.
type SessionState int

const (
	// SessionLoading: tab lookup and cache load are still in flight.
	SessionLoading SessionState = iota
	// SessionReady: the session accepts edits.
	SessionReady
	// SessionCommitting: the cache is being flushed before a URL is built.
	SessionCommitting
)

func (s SessionState) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionReady:
		return "ready"
	case SessionCommitting:
		return "committing"
	default:
		return "unknown"
	}
}

// FieldKind names the input whose edit was committed (blur-equivalent).
type FieldKind int

const (
	FieldProtocol FieldKind = iota
	FieldHostname
	FieldPort
	FieldPathname
	FieldFragment
	FieldKey
	FieldValue
)

func (k FieldKind) String() string {
	switch k {
	case FieldProtocol:
		return "protocol"
	case FieldHostname:
		return "hostname"
	case FieldPort:
		return "port"
	case FieldPathname:
		return "pathname"
	case FieldFragment:
		return "fragment"
	case FieldKey:
		return "key"
	case FieldValue:
		return "value"
	default:
		return "unknown"
	}
}

// IsQueryField reports whether the field belongs to a query item.
func (k FieldKind) IsQueryField() bool {
	return k == FieldKey || k == FieldValue
}
