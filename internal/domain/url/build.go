package url

import (
	"strings"

	"github.com/bnema/urlsmith/internal/domain/entity"
)

// Build synthesizes protocol://hostname[:port]pathname[?query][#fragment].
//
// Only enabled items contribute to the query, in list order, as key=value joined
// by '&'. Keys and values are concatenated verbatim: no percent-encoding is
// applied here, so the output is exactly what the user sees in the editor.
func Build(c entity.URLComponents, items *entity.QueryItemList) string {
	var b strings.Builder

	b.WriteString(c.Protocol.String())
	b.WriteString("://")
	if strings.Contains(c.Hostname, ":") && !strings.HasPrefix(c.Hostname, "[") {
		b.WriteString("[" + c.Hostname + "]")
	} else {
		b.WriteString(c.Hostname)
	}
	if c.Port != "" {
		b.WriteString(":")
		b.WriteString(c.Port)
	}
	b.WriteString(c.Pathname)

	if query := BuildQuery(items); query != "" {
		b.WriteString("?")
		b.WriteString(query)
	}

	if c.Fragment != "" {
		b.WriteString("#")
		b.WriteString(c.Fragment)
	}

	return b.String()
}

// BuildQuery joins the enabled items as key=value pairs.
func BuildQuery(items *entity.QueryItemList) string {
	enabled := items.Enabled()
	if len(enabled) == 0 {
		return ""
	}

	parts := make([]string, len(enabled))
	for i, it := range enabled {
		parts[i] = it.Key + "=" + it.Value
	}
	return strings.Join(parts, "&")
}
