package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/urlsmith/internal/domain/autocomplete"
	"github.com/bnema/urlsmith/internal/domain/entity"
	"github.com/bnema/urlsmith/internal/infrastructure/config"
)

func TestRenderComponents(t *testing.T) {
	theme := NewTheme(config.DefaultConfig())

	out := theme.RenderComponents(
		entity.URLComponents{Protocol: entity.ProtocolHTTPS, Hostname: "example.com", Pathname: "/a"},
		[]entity.QueryItem{{Key: "q", Value: "go", Enabled: true}, {Key: "page", Value: "2"}},
	)

	assert.Contains(t, out, "example.com")
	assert.Contains(t, out, "/a")
	assert.Contains(t, out, "q")
	assert.Contains(t, out, "page")
	assert.Contains(t, out, "on")
	assert.Contains(t, out, "off")
}

func TestRenderComponents_NoItems(t *testing.T) {
	theme := NewTheme(nil)

	out := theme.RenderComponents(entity.DefaultURLComponents(), nil)
	assert.Contains(t, out, "no query items")
}

func TestRenderEntries(t *testing.T) {
	theme := NewTheme(nil)

	assert.Contains(t, theme.RenderEntries(nil), "empty")

	out := theme.RenderEntries([]autocomplete.Entry{
		{Key: "utm_source", Values: []string{"mail"}},
		{Key: "q", Values: []string{"a", "b"}},
	})
	assert.Contains(t, out, "utm_source")
	assert.Contains(t, out, "1 value")
	assert.Contains(t, out, "2 values")
}

func TestNewTheme_LightScheme(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Appearance.ColorScheme = config.ColorSchemeLight

	theme := NewTheme(cfg)
	assert.Equal(t, cfg.Appearance.LightPalette.Accent, string(theme.Accent))
}
