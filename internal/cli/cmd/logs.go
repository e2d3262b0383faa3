package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/bnema/urlsmith/internal/cli/styles"
	"github.com/bnema/urlsmith/internal/logging"
)

var (
	logsFollow bool
	logsLines  int
)

const (
	defaultLogsLines = 50
	shortSessionLen  = 8
	followInterval   = 100 * time.Millisecond
)

var logsCmd = &cobra.Command{
	Use:   "logs [session]",
	Short: "View editor logs",
	Long: `View the log file written by 'urlsmith edit'.

Without arguments, lists the editing sessions found in the log.
With a session ID (or a prefix of one), shows that session's lines.

Examples:
  urlsmith logs                 # List sessions
  urlsmith logs 3f2a            # Show the session starting with '3f2a'
  urlsmith logs -f              # Follow every new line
  urlsmith logs -n 100 3f2a     # Show its last 100 lines`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Truncate the log file",
	Args:  cobra.NoArgs,
	RunE:  runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
}

// logEntry is one JSON log line.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
	Component string `json:"component"`
}

// SessionInfo summarizes one editing session found in the log.
type SessionInfo struct {
	SessionID string
	ShortID   string
	FirstSeen time.Time
	LastSeen  time.Time
	Lines     int
	Errors    int
}

func runLogs(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	fsys := afero.NewOsFs()
	path := logging.LogFilePath(app.Config.Logging.LogDir)
	out := cmd.OutOrStdout()

	session := ""
	if len(args) == 1 {
		lines, err := readLogLines(fsys, path)
		if err != nil {
			return err
		}
		info, err := findSession(collectSessions(lines), args[0])
		if err != nil {
			return err
		}
		session = info.SessionID
	}

	if logsFollow {
		return tailLog(cmd.Context(), fsys, path, session, out, app.Theme)
	}
	if session != "" {
		return showLog(fsys, path, session, logsLines, out, app.Theme)
	}
	return listSessions(fsys, path, out, app.Theme)
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	fsys := afero.NewOsFs()
	path := logging.LogFilePath(app.Config.Logging.LogDir)

	size, err := clearLog(fsys, path)
	if err != nil {
		return err
	}
	if size == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("No logs to clear"))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(fmt.Sprintf("Cleared %s of logs", formatSize(size))))
	return nil
}

// readLogLines returns every line of the log; a missing file has none.
func readLogLines(fsys afero.Fs, path string) (_ []string, retErr error) {
	f, err := fsys.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return lines, nil
}

func parseLogLine(line string) (logEntry, bool) {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		return logEntry{}, false
	}
	return entry, true
}

// collectSessions groups log lines by session_id, newest session first.
func collectSessions(lines []string) []SessionInfo {
	byID := make(map[string]*SessionInfo)
	for _, line := range lines {
		entry, ok := parseLogLine(line)
		if !ok || entry.SessionID == "" {
			continue
		}
		ts, _ := time.Parse(time.RFC3339, entry.Time)

		s, ok := byID[entry.SessionID]
		if !ok {
			s = &SessionInfo{SessionID: entry.SessionID, ShortID: shortSessionID(entry.SessionID), FirstSeen: ts}
			byID[entry.SessionID] = s
		}
		s.LastSeen = ts
		s.Lines++
		if entry.Level == "error" {
			s.Errors++
		}
	}

	sessions := make([]SessionInfo, 0, len(byID))
	for _, s := range byID {
		sessions = append(sessions, *s)
	}
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].FirstSeen.Equal(sessions[j].FirstSeen) {
			return sessions[i].SessionID < sessions[j].SessionID
		}
		return sessions[i].FirstSeen.After(sessions[j].FirstSeen)
	})
	return sessions
}

func shortSessionID(id string) string {
	if len(id) <= shortSessionLen {
		return id
	}
	return id[:shortSessionLen]
}

// findSession finds a session by ID prefix.
func findSession(sessions []SessionInfo, query string) (*SessionInfo, error) {
	if len(sessions) == 0 {
		return nil, fmt.Errorf("no sessions found")
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var matches []SessionInfo
	for i := range sessions {
		if sessions[i].SessionID == q {
			return &sessions[i], nil
		}
		if strings.HasPrefix(strings.ToLower(sessions[i].SessionID), q) {
			matches = append(matches, sessions[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("no session matching '%s' found", query)
	case 1:
		return &matches[0], nil
	default:
		ids := make([]string, 0, len(matches))
		for i := range matches {
			ids = append(ids, matches[i].ShortID)
		}
		return nil, fmt.Errorf("multiple sessions match '%s': %s", query, strings.Join(ids, ", "))
	}
}

func listSessions(fsys afero.Fs, path string, out io.Writer, theme *styles.Theme) error {
	lines, err := readLogLines(fsys, path)
	if err != nil {
		return err
	}
	sessions := collectSessions(lines)
	if len(sessions) == 0 {
		fmt.Fprintln(out, theme.Subtle.Render("No sessions found. Run 'urlsmith edit' to create logs."))
		return nil
	}

	fmt.Fprintln(out, theme.Title.Render("Sessions (newest first):"))
	fmt.Fprintln(out)
	for i := range sessions {
		s := &sessions[i]
		status := theme.Subtle.Render(fmt.Sprintf("%d lines", s.Lines))
		if s.Errors > 0 {
			status += " " + theme.ErrorStyle.Render(fmt.Sprintf("%d errors", s.Errors))
		}
		fmt.Fprintf(out, "  %s  %s  %s\n",
			theme.Highlight.Render(s.ShortID),
			theme.Subtle.Render(s.FirstSeen.Local().Format("2006-01-02 15:04:05")),
			status,
		)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, theme.Subtle.Render("Use 'urlsmith logs <id>' to view a session"))
	return nil
}

// showLog prints the last n lines, restricted to session when non-empty.
func showLog(fsys afero.Fs, path, session string, n int, out io.Writer, theme *styles.Theme) error {
	lines, err := readLogLines(fsys, path)
	if err != nil {
		return err
	}

	selected := lines
	if session != "" {
		selected = nil
		for _, line := range lines {
			if entry, ok := parseLogLine(line); ok && entry.SessionID == session {
				selected = append(selected, line)
			}
		}
	}

	start := 0
	if n > 0 && len(selected) > n {
		start = len(selected) - n
	}
	for _, line := range selected[start:] {
		fmt.Fprintln(out, colorizeLogLine(line, theme))
	}
	return nil
}

// tailLog follows the log until ctx is done.
func tailLog(ctx context.Context, fsys afero.Fs, path, session string, out io.Writer, theme *styles.Theme) error {
	if ctx == nil {
		ctx = context.Background()
	}
	f, err := fsys.Open(path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if _, err := f.Seek(0, io.SeekEnd); err != nil {
		return fmt.Errorf("seek log file: %w", err)
	}

	fmt.Fprintln(out, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))
	fmt.Fprintln(out)

	reader := bufio.NewReader(f)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if errors.Is(err, io.EOF) {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(followInterval):
			}
			continue
		}
		if err != nil {
			return fmt.Errorf("read log file: %w", err)
		}

		line := strings.TrimSuffix(pending, "\n")
		pending = ""
		if session != "" {
			if entry, ok := parseLogLine(line); !ok || entry.SessionID != session {
				continue
			}
		}
		fmt.Fprintln(out, colorizeLogLine(line, theme))
	}
}

// clearLog truncates the log and returns its previous size.
func clearLog(fsys afero.Fs, path string) (int64, error) {
	info, err := fsys.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("stat log file: %w", err)
	}
	f, err := fsys.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
	if err != nil {
		return 0, fmt.Errorf("truncate log file: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("close log file: %w", err)
	}
	return info.Size(), nil
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	if entry, ok := parseLogLine(line); ok {
		return formatJSONLogLine(entry, theme)
	}

	switch {
	case containsAny(line, "ERR", "ERROR"):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, "WRN", "WARN"):
		return theme.WarningStyle.Render(line)
	case containsAny(line, "DBG", "DEBUG"):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Local().Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	msg := entry.Message
	if entry.Component != "" {
		msg = theme.Subtle.Render(entry.Component+":") + " " + msg
	}
	return fmt.Sprintf("%s %s %s", theme.Subtle.Render(timeStr), levelStr, msg)
}

func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

func formatSize(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
