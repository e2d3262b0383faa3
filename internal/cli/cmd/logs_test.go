package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/urlsmith/internal/cli/styles"
	"github.com/bnema/urlsmith/internal/infrastructure/config"
)

const testLogPath = "/logs/urlsmith.log"

var testLogLines = []string{
	`{"level":"debug","time":"2026-03-01T10:00:00Z","session_id":"3f2a9c11-0000","message":"session started"}`,
	`{"level":"info","time":"2026-03-01T10:00:01Z","session_id":"3f2a9c11-0000","component":"editor","message":"url opened"}`,
	`{"level":"error","time":"2026-03-02T09:00:00Z","session_id":"3f2b0000-1111","message":"clipboard write failed"}`,
	`{"level":"info","time":"2026-03-02T09:00:01Z","message":"app initialized"}`,
	`not json at all`,
}

func seedLog(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, testLogPath, []byte(strings.Join(testLogLines, "\n")+"\n"), 0o600))
	return fsys
}

func testTheme() *styles.Theme {
	return styles.NewTheme(config.DefaultConfig())
}

func TestCollectSessions_NewestFirst(t *testing.T) {
	sessions := collectSessions(testLogLines)

	require.Len(t, sessions, 2)
	assert.Equal(t, "3f2b0000-1111", sessions[0].SessionID)
	assert.Equal(t, "3f2b0000", sessions[0].ShortID)
	assert.Equal(t, 1, sessions[0].Errors)
	assert.Equal(t, "3f2a9c11-0000", sessions[1].SessionID)
	assert.Equal(t, 2, sessions[1].Lines)
}

func TestFindSession(t *testing.T) {
	sessions := collectSessions(testLogLines)

	s, err := findSession(sessions, "3F2A")
	require.NoError(t, err)
	assert.Equal(t, "3f2a9c11-0000", s.SessionID)

	_, err = findSession(sessions, "3f2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple sessions")

	_, err = findSession(sessions, "ffff")
	assert.Error(t, err)

	_, err = findSession(nil, "3f2a")
	assert.Error(t, err)
}

func TestShowLog_FiltersBySession(t *testing.T) {
	fsys := seedLog(t)
	var out bytes.Buffer

	require.NoError(t, showLog(fsys, testLogPath, "3f2a9c11-0000", 1, &out, testTheme()))

	assert.Contains(t, out.String(), "url opened")
	assert.NotContains(t, out.String(), "session started", "only the last line is kept")
	assert.NotContains(t, out.String(), "clipboard write failed")
}

func TestShowLog_AllLines(t *testing.T) {
	fsys := seedLog(t)
	var out bytes.Buffer

	require.NoError(t, showLog(fsys, testLogPath, "", 0, &out, testTheme()))

	assert.Contains(t, out.String(), "app initialized")
	assert.Contains(t, out.String(), "not json at all")
	assert.Contains(t, out.String(), "editor:")
}

func TestListSessions_MissingFile(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listSessions(afero.NewMemMapFs(), testLogPath, &out, testTheme()))
	assert.Contains(t, out.String(), "No sessions found")
}

func TestListSessions(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, listSessions(seedLog(t), testLogPath, &out, testTheme()))

	assert.Contains(t, out.String(), "3f2a9c11")
	assert.Contains(t, out.String(), "1 errors")
}

func TestClearLog(t *testing.T) {
	fsys := seedLog(t)

	size, err := clearLog(fsys, testLogPath)
	require.NoError(t, err)
	assert.Positive(t, size)

	data, err := afero.ReadFile(fsys, testLogPath)
	require.NoError(t, err)
	assert.Empty(t, data)

	size, err = clearLog(afero.NewMemMapFs(), testLogPath)
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestFormatSize(t *testing.T) {
	assert.Equal(t, "512 B", formatSize(512))
	assert.Equal(t, "1.5 KiB", formatSize(1536))
	assert.Equal(t, "2.0 MiB", formatSize(2*1024*1024))
}
