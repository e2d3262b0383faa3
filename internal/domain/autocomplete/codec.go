package autocomplete

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

// BlobVersion is the current schema version of the persisted history.
// Increment when making breaking changes to the serialization format.
const BlobVersion = 1

// Codec errors.
var (
	ErrMalformedBlob      = errors.New("malformed autocomplete blob")
	ErrUnsupportedVersion = errors.New("unsupported autocomplete blob version")
)

// Blob is the persisted form of a History.
type Blob struct {
	Version int     `json:"version" yaml:"version" jsonschema:"minimum=1"`
	Entries []Entry `json:"entries" yaml:"entries"`
}

// ToBlob converts a history into its persisted form.
func ToBlob(h *History) Blob {
	return Blob{Version: BlobVersion, Entries: h.Entries()}
}

// Encode serializes h as a versioned JSON document.
func Encode(h *History) ([]byte, error) {
	data, err := json.Marshal(ToBlob(h))
	if err != nil {
		return nil, fmt.Errorf("encode autocomplete blob: %w", err)
	}
	return data, nil
}

// Decode parses a persisted history.
//
// Accepted forms:
//   - {"version":1,"entries":[...]}: the current format
//   - [{"key":..,"values":[..]}, ...]: version 0, a bare array, migrated
//   - a JSON string holding either of the above (raw extension storage exports)
//
// It returns the version found in data alongside the history.
func Decode(data []byte) (*History, int, error) {
	return decode(data, true)
}

func decode(data []byte, allowQuoted bool) (*History, int, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, 0, fmt.Errorf("%w: empty", ErrMalformedBlob)
	}

	switch data[0] {
	case '[':
		var entries []Entry
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrMalformedBlob, err)
		}
		return NewHistoryFromEntries(entries), 0, nil

	case '{':
		var blob Blob
		if err := json.Unmarshal(data, &blob); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrMalformedBlob, err)
		}
		if blob.Version < 1 {
			return nil, blob.Version, fmt.Errorf("%w: missing version", ErrMalformedBlob)
		}
		if blob.Version > BlobVersion {
			return nil, blob.Version, fmt.Errorf("%w: %d (max %d)", ErrUnsupportedVersion, blob.Version, BlobVersion)
		}
		return NewHistoryFromEntries(blob.Entries), blob.Version, nil

	case '"':
		if !allowQuoted {
			break
		}
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrMalformedBlob, err)
		}
		return decode([]byte(inner), false)
	}

	return nil, 0, fmt.Errorf("%w: unexpected leading byte %q", ErrMalformedBlob, data[0])
}
