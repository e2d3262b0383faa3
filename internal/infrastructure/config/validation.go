package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/urlsmith/internal/domain/entity"
)

const maxSuggestionsLimit = 50

var hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateTabs(config)...)
	validationErrors = append(validationErrors, validateEditor(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateStorage(config *Config) []string {
	var validationErrors []string
	switch config.Storage.Backend {
	case StorageBackendSQLite:
		if config.Storage.DatabasePath == "" {
			validationErrors = append(validationErrors, "storage.database_path must not be empty")
		}
	case StorageBackendFile:
		if config.Storage.Directory == "" {
			validationErrors = append(validationErrors, "storage.directory must not be empty")
		}
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("storage.backend must be %q or %q (got %q)", StorageBackendSQLite, StorageBackendFile, config.Storage.Backend))
	}
	return validationErrors
}

func validateTabs(config *Config) []string {
	var validationErrors []string
	switch config.Tabs.Source {
	case TabSourceStatic:
		if config.Tabs.OpenCommand == "" {
			validationErrors = append(validationErrors, "tabs.open_command must not be empty with the static source")
		}
	case TabSourceStateFile:
		if config.Tabs.StateFile == "" {
			validationErrors = append(validationErrors, "tabs.state_file must not be empty with the statefile source")
		}
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("tabs.source must be %q or %q (got %q)", TabSourceStatic, TabSourceStateFile, config.Tabs.Source))
	}
	return validationErrors
}

func validateEditor(config *Config) []string {
	var validationErrors []string
	if _, err := entity.ParseProtocol(config.Editor.DefaultProtocol); err != nil {
		validationErrors = append(validationErrors,
			fmt.Sprintf("editor.default_protocol must be http or https (got %q)", config.Editor.DefaultProtocol))
	}
	if config.Editor.MaxSuggestions < 1 || config.Editor.MaxSuggestions > maxSuggestionsLimit {
		validationErrors = append(validationErrors,
			fmt.Sprintf("editor.max_suggestions must be between 1 and %d", maxSuggestionsLimit))
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error, disabled (got %q)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	validationErrors = append(validationErrors, validatePalette("appearance.dark_palette", config.Appearance.DarkPalette)...)
	validationErrors = append(validationErrors, validatePalette("appearance.light_palette", config.Appearance.LightPalette)...)
	return validationErrors
}

func validatePalette(prefix string, p ColorPalette) []string {
	var validationErrors []string
	colors := []struct {
		name  string
		value string
	}{
		{"background", p.Background},
		{"surface", p.Surface},
		{"surface_variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
	}
	for _, c := range colors {
		if !hexColorRe.MatchString(c.value) {
			validationErrors = append(validationErrors,
				fmt.Sprintf("%s.%s must be a hex color like #4ade80 (got %q)", prefix, c.name, c.value))
		}
	}
	return validationErrors
}
