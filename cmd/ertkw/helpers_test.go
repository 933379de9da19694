// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/kgreg1/ert/internal/config"
)

// stubConfigProvider returns a fixed configuration, path or error.
type stubConfigProvider struct {
	cfg  *config.Config
	path string
	err  error
}

func (s stubConfigProvider) Load(context.Context, config.LoadOptions) (*config.Config, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	if s.cfg == nil {
		return config.DefaultConfig(), s.path, nil
	}
	return s.cfg, s.path, nil
}

// runCommand executes the root command with args against a fresh App and
// returns what it wrote to stdout and stderr.
func runCommand(t *testing.T, provider ConfigProvider, args ...string) (string, string, error) {
	t.Helper()

	if provider == nil {
		provider = stubConfigProvider{}
	}

	var stdout, stderr bytes.Buffer
	app, err := NewApp(Dependencies{Config: provider, Stdout: &stdout, Stderr: &stderr})
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}

	root := NewRootCommand(app)
	root.SetArgs(args)
	err = root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}
