package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/urlsmith/internal/domain/build"
	"github.com/bnema/urlsmith/internal/infrastructure/config"
)

func TestAboutRenderer_Render(t *testing.T) {
	r := NewAboutRenderer(NewTheme(config.DefaultConfig()))

	out := r.Render(AboutInfo{
		Build:      build.Info{Version: "1.2.0", Commit: "abc1234", GoVersion: "go1.25"},
		ConfigPath: "/home/u/.config/urlsmith/config.toml",
		Storage:    "sqlite",
	})

	assert.Contains(t, out, "1.2.0")
	assert.Contains(t, out, "abc1234")
	assert.Contains(t, out, "config.toml")
	assert.Contains(t, out, "sqlite")
	assert.Contains(t, out, build.RepoURL())
	assert.Contains(t, out, "unknown", "empty build date renders as unknown")
}
