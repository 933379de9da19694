// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/kgreg1/ert/internal/config"
	"github.com/kgreg1/ert/pkg/ertkeywords"
	"github.com/kgreg1/ert/pkg/keyword"
)

type (
	// App wires CLI services and shared dependencies. It is the composition root for
	// the CLI layer: all Cobra command handlers receive an App reference and read the
	// keyword catalog and configuration through it.
	App struct {
		Config   ConfigProvider
		Registry *keyword.Registry
		stdout   io.Writer
		stderr   io.Writer
		verbose  bool
		cfgFile  string
		cfg      *config.Config
	}

	// Dependencies defines the injection points for building an App. Nil fields are
	// replaced with production defaults by NewApp.
	Dependencies struct {
		Config   ConfigProvider
		Registry *keyword.Registry
		Stdout   io.Writer
		Stderr   io.Writer
	}

	// ConfigProvider loads application configuration and reports the file it
	// was read from ("" when defaults applied).
	ConfigProvider interface {
		Load(ctx context.Context, opts config.LoadOptions) (*config.Config, string, error)
	}
)

// NewApp creates an App from the given dependencies.
func NewApp(deps Dependencies) (*App, error) {
	if deps.Config == nil {
		deps.Config = config.NewProvider()
	}
	if deps.Registry == nil {
		r, err := ertkeywords.New()
		if err != nil {
			return nil, fmt.Errorf("build keyword catalog: %w", err)
		}
		deps.Registry = r
	}
	if deps.Stdout == nil {
		deps.Stdout = os.Stdout
	}
	if deps.Stderr == nil {
		deps.Stderr = os.Stderr
	}

	return &App{
		Config:   deps.Config,
		Registry: deps.Registry,
		stdout:   deps.Stdout,
		stderr:   deps.Stderr,
		cfg:      config.DefaultConfig(),
	}, nil
}

// settings returns the configuration resolved for the current invocation.
// Before the root pre-run has loaded anything it returns the defaults.
func (a *App) settings() *config.Config {
	if a.cfg == nil {
		return config.DefaultConfig()
	}
	return a.cfg
}
