// SPDX-License-Identifier: MPL-2.0

package config

import "context"

type (
	// LoadOptions selects where configuration is read from. The zero value
	// searches the platform config directory, then ./config.cue.
	LoadOptions struct {
		// ConfigFilePath is the --config flag value. A missing file is an error.
		ConfigFilePath string
		// ConfigDirPath replaces the platform config directory in the search.
		ConfigDirPath string
	}

	// Provider loads the ertkw configuration. Load returns the merged
	// configuration and the file it came from, or "" when only defaults and
	// ERTKW_ environment variables applied.
	Provider interface {
		Load(ctx context.Context, opts LoadOptions) (*Config, string, error)
	}

	cueProvider struct{}
)

// NewProvider returns the Provider backed by CUE files and viper.
func NewProvider() Provider {
	return cueProvider{}
}

func (cueProvider) Load(ctx context.Context, opts LoadOptions) (*Config, string, error) {
	return loadWithOptions(ctx, opts)
}
