// Package clipboard provides a system clipboard adapter over atotto/clipboard,
// which drives wl-clipboard on Wayland, xclip or xsel on X11, and pbcopy on macOS.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/bnema/urlsmith/internal/application/port"
	"github.com/bnema/urlsmith/internal/logging"
)

// ErrUnavailable is returned when no clipboard tool was found.
var ErrUnavailable = errors.New("no clipboard tool available (install wl-clipboard or xclip)")

// Adapter implements port.Clipboard.
type Adapter struct {
	unsupported bool
	write       func(string) error
	read        func() (string, error)
}

// Compile-time interface check.
var _ port.Clipboard = (*Adapter)(nil)

// New creates a new clipboard adapter.
func New() *Adapter {
	return &Adapter{
		unsupported: clipboard.Unsupported,
		write:       clipboard.WriteAll,
		read:        clipboard.ReadAll,
	}
}

// WriteText copies text to the clipboard.
func (a *Adapter) WriteText(ctx context.Context, text string) error {
	log := logging.FromContext(ctx)

	if err := ctx.Err(); err != nil {
		return err
	}
	if a.unsupported {
		log.Error().Err(ErrUnavailable).Msg("clipboard write failed")
		return ErrUnavailable
	}

	if err := a.write(text); err != nil {
		log.Error().Err(err).Msg("clipboard write failed")
		return fmt.Errorf("clipboard write: %w", err)
	}

	log.Debug().Int("length", len(text)).Msg("text copied to clipboard")
	return nil
}

// ReadText reads text from the clipboard.
func (a *Adapter) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if a.unsupported {
		return "", ErrUnavailable
	}

	text, err := a.read()
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("clipboard read failed")
		return "", fmt.Errorf("clipboard read: %w", err)
	}
	return text, nil
}

// Available reports whether a clipboard tool was found at startup.
func (a *Adapter) Available() bool {
	return !a.unsupported
}
