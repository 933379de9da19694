// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

const (
	// ColorSchemeAuto detects the terminal color scheme automatically.
	ColorSchemeAuto ColorScheme = "auto"
	// ColorSchemeDark forces dark color scheme.
	ColorSchemeDark ColorScheme = "dark"
	// ColorSchemeLight forces light color scheme.
	ColorSchemeLight ColorScheme = "light"

	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"

	// DocsStyleAuto picks a glamour style from the terminal background.
	DocsStyleAuto DocsStyle = "auto"
	// DocsStyleDark renders keyword pages for dark terminals.
	DocsStyleDark DocsStyle = "dark"
	// DocsStyleLight renders keyword pages for light terminals.
	DocsStyleLight DocsStyle = "light"
	// DocsStyleNoTTY renders plain markdown without ANSI sequences.
	DocsStyleNoTTY DocsStyle = "notty"

	ExportFormatJSON     ExportFormat = "json"
	ExportFormatYAML     ExportFormat = "yaml"
	ExportFormatTOML     ExportFormat = "toml"
	ExportFormatCUE      ExportFormat = "cue"
	ExportFormatMarkdown ExportFormat = "markdown"

	// DefaultDocsBaseURL is the root that keyword documentation links are resolved against.
	DefaultDocsBaseURL DocsBaseURL = "https://ert.readthedocs.io/en/latest/reference/configuration/keywords"
)

var (
	// ErrInvalidColorScheme is returned when a ColorScheme value is not recognized.
	ErrInvalidColorScheme = errors.New("invalid color scheme")
	// ErrInvalidLogLevel is returned when a LogLevel value is not recognized.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidDocsStyle is returned when a DocsStyle value is not recognized.
	ErrInvalidDocsStyle = errors.New("invalid docs style")
	// ErrInvalidDocsBaseURL is returned when a DocsBaseURL is not an absolute http(s) URL.
	ErrInvalidDocsBaseURL = errors.New("invalid docs base URL")
	// ErrInvalidExportFormat is returned when an ExportFormat value is not recognized.
	ErrInvalidExportFormat = errors.New("invalid export format")
	// ErrInvalidConfig is the sentinel error wrapped by InvalidConfigError.
	ErrInvalidConfig = errors.New("invalid config")
)

type (
	// ColorScheme specifies the terminal color scheme preference.
	ColorScheme string

	// InvalidColorSchemeError is returned when a ColorScheme value is not recognized.
	// It wraps ErrInvalidColorScheme for errors.Is() compatibility.
	InvalidColorSchemeError struct {
		Value ColorScheme
	}

	// LogLevel is the minimum level of diagnostic log records.
	LogLevel string

	// InvalidLogLevelError is returned when a LogLevel value is not recognized.
	InvalidLogLevelError struct {
		Value LogLevel
	}

	// DocsStyle selects the glamour style used by "ertkw doc".
	DocsStyle string

	// InvalidDocsStyleError is returned when a DocsStyle value is not recognized.
	InvalidDocsStyleError struct {
		Value DocsStyle
	}

	// DocsBaseURL is the absolute URL keyword documentation links are relative to.
	DocsBaseURL string

	// InvalidDocsBaseURLError is returned when a DocsBaseURL is malformed.
	InvalidDocsBaseURLError struct {
		Value  DocsBaseURL
		Reason string
	}

	// ExportFormat names an output encoding of the keyword catalog.
	ExportFormat string

	// InvalidExportFormatError is returned when an ExportFormat value is not recognized.
	InvalidExportFormatError struct {
		Value ExportFormat
	}

	// InvalidConfigError is returned when a Config has invalid fields.
	// It wraps ErrInvalidConfig for errors.Is() compatibility and collects
	// field-level validation errors from all sections.
	InvalidConfigError struct {
		FieldErrors []error
	}

	// Config holds the application configuration.
	Config struct {
		// UI contains terminal output settings.
		UI UIConfig `json:"ui" mapstructure:"ui"`
		// Log controls diagnostic logging.
		Log LogConfig `json:"log" mapstructure:"log"`
		// Docs controls keyword documentation rendering.
		Docs DocsConfig `json:"docs" mapstructure:"docs"`
		// Export holds defaults for "ertkw export".
		Export ExportConfig `json:"export" mapstructure:"export"`
	}

	// UIConfig contains UI-related configuration.
	UIConfig struct {
		// ColorScheme sets the color scheme for table and detail output.
		ColorScheme ColorScheme `json:"color_scheme" mapstructure:"color_scheme"`
		// Verbose enables debug logging by default.
		Verbose bool `json:"verbose" mapstructure:"verbose"`
	}

	// LogConfig contains logging configuration.
	LogConfig struct {
		Level LogLevel `json:"level" mapstructure:"level"`
	}

	// DocsConfig contains documentation rendering configuration.
	DocsConfig struct {
		BaseURL DocsBaseURL `json:"base_url" mapstructure:"base_url"`
		Style   DocsStyle   `json:"style" mapstructure:"style"`
	}

	// ExportConfig contains export defaults.
	ExportConfig struct {
		Format ExportFormat `json:"format" mapstructure:"format"`
	}
)

// String returns the string representation of the ColorScheme.
func (cs ColorScheme) String() string { return string(cs) }

// IsValid returns whether the ColorScheme is one of the defined color schemes,
// and a list of validation errors if it is not.
func (cs ColorScheme) IsValid() (bool, []error) {
	switch cs {
	case ColorSchemeAuto, ColorSchemeDark, ColorSchemeLight:
		return true, nil
	default:
		return false, []error{&InvalidColorSchemeError{Value: cs}}
	}
}

// Error implements the error interface for InvalidColorSchemeError.
func (e *InvalidColorSchemeError) Error() string {
	return fmt.Sprintf("invalid color scheme %q (valid: auto, dark, light)", e.Value)
}

// Unwrap returns ErrInvalidColorScheme for errors.Is() compatibility.
func (e *InvalidColorSchemeError) Unwrap() error { return ErrInvalidColorScheme }

func (l LogLevel) String() string { return string(l) }

// IsValid returns whether the LogLevel is one of the defined levels.
func (l LogLevel) IsValid() (bool, []error) {
	switch l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError:
		return true, nil
	default:
		return false, []error{&InvalidLogLevelError{Value: l}}
	}
}

func (e *InvalidLogLevelError) Error() string {
	return fmt.Sprintf("invalid log level %q (valid: debug, info, warn, error)", e.Value)
}

func (e *InvalidLogLevelError) Unwrap() error { return ErrInvalidLogLevel }

func (s DocsStyle) String() string { return string(s) }

// IsValid returns whether the DocsStyle is one of the defined styles.
func (s DocsStyle) IsValid() (bool, []error) {
	switch s {
	case DocsStyleAuto, DocsStyleDark, DocsStyleLight, DocsStyleNoTTY:
		return true, nil
	default:
		return false, []error{&InvalidDocsStyleError{Value: s}}
	}
}

func (e *InvalidDocsStyleError) Error() string {
	return fmt.Sprintf("invalid docs style %q (valid: auto, dark, light, notty)", e.Value)
}

func (e *InvalidDocsStyleError) Unwrap() error { return ErrInvalidDocsStyle }

func (u DocsBaseURL) String() string { return string(u) }

// IsValid returns whether the DocsBaseURL is an absolute http or https URL.
func (u DocsBaseURL) IsValid() (bool, []error) {
	raw := strings.TrimSpace(string(u))
	if raw == "" {
		return false, []error{&InvalidDocsBaseURLError{Value: u, Reason: "must not be empty"}}
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false, []error{&InvalidDocsBaseURLError{Value: u, Reason: err.Error()}}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false, []error{&InvalidDocsBaseURLError{Value: u, Reason: "scheme must be http or https"}}
	}
	if parsed.Host == "" {
		return false, []error{&InvalidDocsBaseURLError{Value: u, Reason: "host is missing"}}
	}
	return true, nil
}

func (e *InvalidDocsBaseURLError) Error() string {
	return fmt.Sprintf("invalid docs base URL %q: %s", e.Value, e.Reason)
}

func (e *InvalidDocsBaseURLError) Unwrap() error { return ErrInvalidDocsBaseURL }

func (f ExportFormat) String() string { return string(f) }

// IsValid returns whether the ExportFormat is one of the supported encodings.
func (f ExportFormat) IsValid() (bool, []error) {
	switch f {
	case ExportFormatJSON, ExportFormatYAML, ExportFormatTOML, ExportFormatCUE, ExportFormatMarkdown:
		return true, nil
	default:
		return false, []error{&InvalidExportFormatError{Value: f}}
	}
}

func (e *InvalidExportFormatError) Error() string {
	return fmt.Sprintf("invalid export format %q (valid: json, yaml, toml, cue, markdown)", e.Value)
}

func (e *InvalidExportFormatError) Unwrap() error { return ErrInvalidExportFormat }

// ExportFormats returns the supported export formats in display order.
func ExportFormats() []ExportFormat {
	return []ExportFormat{ExportFormatJSON, ExportFormatYAML, ExportFormatTOML, ExportFormatCUE, ExportFormatMarkdown}
}

// IsValid returns whether every section of the Config is valid.
func (c Config) IsValid() (bool, []error) {
	var errs []error
	if valid, fieldErrs := c.UI.ColorScheme.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Log.Level.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Docs.BaseURL.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Docs.Style.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if valid, fieldErrs := c.Export.Format.IsValid(); !valid {
		errs = append(errs, fieldErrs...)
	}
	if len(errs) > 0 {
		return false, []error{&InvalidConfigError{FieldErrors: errs}}
	}
	return true, nil
}

// Error implements the error interface for InvalidConfigError.
func (e *InvalidConfigError) Error() string {
	msgs := make([]string, len(e.FieldErrors))
	for i, err := range e.FieldErrors {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("invalid config: %s", strings.Join(msgs, "; "))
}

// Unwrap returns ErrInvalidConfig for errors.Is() compatibility.
func (e *InvalidConfigError) Unwrap() error { return ErrInvalidConfig }

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			ColorScheme: ColorSchemeAuto,
			Verbose:     false,
		},
		Log: LogConfig{
			Level: LogLevelWarn,
		},
		Docs: DocsConfig{
			BaseURL: DefaultDocsBaseURL,
			Style:   DocsStyleAuto,
		},
		Export: ExportConfig{
			Format: ExportFormatJSON,
		},
	}
}
