package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/urlsmith/internal/application/port"
	"github.com/bnema/urlsmith/internal/logging"
)

// URLActionsUseCase delivers the URL built by an editor session.
type URLActionsUseCase struct {
	navigator port.TabNavigator
	clipboard port.Clipboard
}

// NewURLActionsUseCase creates a new URLActionsUseCase.
func NewURLActionsUseCase(navigator port.TabNavigator, clipboard port.Clipboard) *URLActionsUseCase {
	return &URLActionsUseCase{
		navigator: navigator,
		clipboard: clipboard,
	}
}

func (uc *URLActionsUseCase) build(ctx context.Context, s *EditorSession) (string, error) {
	url, err := s.FinalizeAndBuild(ctx)
	if err != nil {
		return "", err
	}
	if url == "" {
		return "", fmt.Errorf("empty URL")
	}
	return url, nil
}

// Open builds the session's URL and opens it in a new active tab.
func (uc *URLActionsUseCase) Open(ctx context.Context, s *EditorSession) (string, error) {
	log := logging.FromContext(s.Context(ctx))

	url, err := uc.build(ctx, s)
	if err != nil {
		return "", err
	}

	if uc.navigator == nil {
		log.Warn().Msg("open URL: navigator is nil")
		return url, fmt.Errorf("navigator not available")
	}

	if err := uc.navigator.CreateTab(ctx, url, true); err != nil {
		log.Error().Err(err).Str("url", url).Msg("open URL: create tab failed")
		return url, fmt.Errorf("create tab failed: %w", err)
	}

	log.Info().Str("url", url).Msg("URL opened in new tab")
	return url, nil
}

// Copy builds the session's URL and copies it to the clipboard.
func (uc *URLActionsUseCase) Copy(ctx context.Context, s *EditorSession) (string, error) {
	log := logging.FromContext(s.Context(ctx))

	url, err := uc.build(ctx, s)
	if err != nil {
		return "", err
	}

	if uc.clipboard == nil {
		log.Warn().Msg("copy URL: clipboard is nil")
		return url, fmt.Errorf("clipboard not available")
	}

	if err := uc.clipboard.WriteText(ctx, url); err != nil {
		log.Error().Err(err).Str("url", url).Msg("copy URL: clipboard write failed")
		return url, fmt.Errorf("clipboard write failed: %w", err)
	}

	log.Debug().Str("url", url).Msg("URL copied to clipboard")
	return url, nil
}

// ReplaceCurrent builds the session's URL and navigates the session's tab to it.
func (uc *URLActionsUseCase) ReplaceCurrent(ctx context.Context, s *EditorSession) (string, error) {
	log := logging.FromContext(s.Context(ctx))

	url, err := uc.build(ctx, s)
	if err != nil {
		return "", err
	}

	tab := s.Tab()
	if tab == nil {
		return url, ErrNoActiveTab
	}
	if uc.navigator == nil {
		log.Warn().Msg("replace URL: navigator is nil")
		return url, fmt.Errorf("navigator not available")
	}

	if err := uc.navigator.UpdateTab(ctx, tab.ID, url); err != nil {
		log.Error().Err(err).Str("url", url).Msg("replace URL: update tab failed")
		return url, fmt.Errorf("update tab failed: %w", err)
	}

	log.Info().Str("url", url).Msg("tab navigated to URL")
	return url, nil
}
