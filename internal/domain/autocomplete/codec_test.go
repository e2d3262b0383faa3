package autocomplete_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/urlsmith/internal/domain/autocomplete"
)

func TestEncodeDecode(t *testing.T) {
	h := autocomplete.NewHistory()
	h.RecordValue("x", "1")
	h.RecordValue("x", "2")
	h.RecordValue("y", "")

	data, err := autocomplete.Encode(h)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"entries":[{"key":"x","values":["1","2"]},{"key":"y","values":[""]}]}`, string(data))

	decoded, version, err := autocomplete.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, autocomplete.BlobVersion, version)
	assert.Equal(t, h.Entries(), decoded.Entries())
}

func TestEncode_EmptyHistory(t *testing.T) {
	data, err := autocomplete.Encode(autocomplete.NewHistory())
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"entries":[]}`, string(data))
}

func TestDecode_LegacyArray(t *testing.T) {
	legacy := `[{"key":"lang","values":["en","fr"]},{"key":"debug","values":[""]}]`

	h, version, err := autocomplete.Decode([]byte(legacy))
	require.NoError(t, err)
	assert.Equal(t, 0, version)
	assert.Equal(t, []string{"lang", "debug"}, h.Keys())
	assert.Equal(t, []string{"en", "fr"}, h.ValuesFor("lang"))
}

func TestDecode_QuotedLegacyArray(t *testing.T) {
	inner := `[{"key":"lang","values":["en"]}]`
	quoted, err := json.Marshal(inner)
	require.NoError(t, err)

	h, version, err := autocomplete.Decode(quoted)
	require.NoError(t, err)
	assert.Equal(t, 0, version)
	assert.Equal(t, []string{"en"}, h.ValuesFor("lang"))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr error
	}{
		{"empty", "", autocomplete.ErrMalformedBlob},
		{"garbage", "not json", autocomplete.ErrMalformedBlob},
		{"truncated", `{"version":1,"entries":[`, autocomplete.ErrMalformedBlob},
		{"missing version", `{"entries":[]}`, autocomplete.ErrMalformedBlob},
		{"wrong shape", `[1,2,3]`, autocomplete.ErrMalformedBlob},
		{"double quoted", `"\"[]\""`, autocomplete.ErrMalformedBlob},
		{"future version", `{"version":99,"entries":[]}`, autocomplete.ErrUnsupportedVersion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := autocomplete.Decode([]byte(tt.data))
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecode_FutureVersionReportsVersion(t *testing.T) {
	_, version, err := autocomplete.Decode([]byte(`{"version":2,"entries":[]}`))
	require.ErrorIs(t, err, autocomplete.ErrUnsupportedVersion)
	assert.Equal(t, 2, version)
}

func TestSchemaJSON(t *testing.T) {
	data, err := autocomplete.SchemaJSON()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "urlsmith autocomplete history", doc["title"])
	assert.Contains(t, string(data), `"entries"`)
	assert.Contains(t, string(data), `"version"`)
}
