package usecase

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/bnema/urlsmith/internal/domain/repository"
	"github.com/bnema/urlsmith/internal/logging"
)

// CheckID identifies one diagnostic check.
type CheckID string

const (
	CheckStorage   CheckID = "storage"
	CheckHistory   CheckID = "history"
	CheckTabSource CheckID = "tabs"
	CheckOpener    CheckID = "opener"
	CheckClipboard CheckID = "clipboard"
)

// CheckStatus contains the result of one diagnostic check.
// Optional checks degrade a feature without blocking the editor.
type CheckStatus struct {
	ID       CheckID
	Name     string
	OK       bool
	Optional bool
	Detail   string
}

// DiagnoseInput contains the environment facts the use case cannot discover itself.
type DiagnoseInput struct {
	// OpenCommand is the configured opener, e.g. "xdg-open".
	OpenCommand string
	// ClipboardAvailable reports whether a clipboard tool was found.
	ClipboardAvailable bool
}

// DiagnoseOutput contains the result of all checks.
type DiagnoseOutput struct {
	OK     bool
	Checks []CheckStatus
}

// DiagnoseUseCase checks that every collaborator of an editor session works.
type DiagnoseUseCase struct {
	kv         repository.KeyValueRepository
	cache      *AutocompleteCacheUseCase
	resolveTab *ResolveActiveTabUseCase
	lookPath   func(string) (string, error)
}

// NewDiagnoseUseCase creates a new use case. A nil lookPath uses exec.LookPath.
func NewDiagnoseUseCase(
	kv repository.KeyValueRepository,
	cache *AutocompleteCacheUseCase,
	resolveTab *ResolveActiveTabUseCase,
	lookPath func(string) (string, error),
) *DiagnoseUseCase {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return &DiagnoseUseCase{kv: kv, cache: cache, resolveTab: resolveTab, lookPath: lookPath}
}

// Execute runs every check. It never fails; failures are reported per check.
func (uc *DiagnoseUseCase) Execute(ctx context.Context, input DiagnoseInput) *DiagnoseOutput {
	log := logging.FromContext(ctx).With().Str("component", "doctor").Logger()

	checks := []CheckStatus{
		uc.checkStorage(ctx),
		uc.checkHistory(ctx),
		uc.checkTabSource(ctx),
		uc.checkOpener(input.OpenCommand),
		{
			ID:       CheckClipboard,
			Name:     "Clipboard",
			OK:       input.ClipboardAvailable,
			Optional: true,
			Detail:   detailIf(input.ClipboardAvailable, "available", "no clipboard tool found (install wl-clipboard or xclip)"),
		},
	}

	out := &DiagnoseOutput{OK: true, Checks: checks}
	for _, c := range checks {
		if !c.OK && !c.Optional {
			out.OK = false
		}
		log.Debug().Str("check", string(c.ID)).Bool("ok", c.OK).Str("detail", c.Detail).Msg("diagnostic check")
	}
	return out
}

func (uc *DiagnoseUseCase) checkStorage(ctx context.Context) CheckStatus {
	c := CheckStatus{ID: CheckStorage, Name: "Storage"}
	if uc.kv == nil {
		c.OK, c.Detail = true, "in memory only"
		return c
	}
	keys, err := uc.kv.Keys(ctx)
	if err != nil {
		c.Detail = err.Error()
		return c
	}
	c.OK, c.Detail = true, fmt.Sprintf("%d stored keys", len(keys))
	return c
}

func (uc *DiagnoseUseCase) checkHistory(ctx context.Context) CheckStatus {
	c := CheckStatus{ID: CheckHistory, Name: "Autocomplete history"}
	if uc.cache == nil {
		c.Detail = "not configured"
		return c
	}
	uc.cache.Load(ctx)
	if err := uc.cache.ReadErr(); err != nil {
		c.Detail = "unreadable: " + err.Error()
		return c
	}
	if uc.cache.PersistenceDisabled() {
		c.Detail = "written by a newer urlsmith; read-only for this version"
		return c
	}
	c.OK, c.Detail = true, fmt.Sprintf("%d keys remembered", len(uc.cache.Keys()))
	return c
}

func (uc *DiagnoseUseCase) checkTabSource(ctx context.Context) CheckStatus {
	c := CheckStatus{ID: CheckTabSource, Name: "Active tab", Optional: true}
	if uc.resolveTab == nil {
		c.Detail = "no tab source"
		return c
	}
	tab, err := uc.resolveTab.Execute(ctx)
	switch {
	case errors.Is(err, ErrNoActiveTab):
		c.Detail = "no active tab; pass a URL on the command line"
	case err != nil:
		c.Detail = err.Error()
	case !tab.HasURL():
		c.Detail = fmt.Sprintf("tab %s hides its URL", tab.ID)
	default:
		c.OK, c.Detail = true, tab.URL
	}
	return c
}

func (uc *DiagnoseUseCase) checkOpener(openCommand string) CheckStatus {
	c := CheckStatus{ID: CheckOpener, Name: "Open command", Optional: true}
	fields := strings.Fields(openCommand)
	if len(fields) == 0 {
		c.Detail = "not configured"
		return c
	}
	path, err := uc.lookPath(fields[0])
	if err != nil {
		c.Detail = fmt.Sprintf("%s not found in PATH", fields[0])
		return c
	}
	c.OK, c.Detail = true, path
	return c
}

func detailIf(ok bool, yes, no string) string {
	if ok {
		return yes
	}
	return no
}
