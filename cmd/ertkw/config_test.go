// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kgreg1/ert/internal/config"
	"github.com/kgreg1/ert/internal/issue"
	"github.com/kgreg1/ert/pkg/types"
)

// Not parallel: these tests run the root command (see keywords_test.go).

func TestConfigShow(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Log.Level = config.LogLevelDebug
	cfg.Export.Format = config.ExportFormatTOML

	stdout, _, err := runCommand(t, stubConfigProvider{cfg: cfg}, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	for _, want := range []string{"Current Configuration", "level: debug", "format: toml", "base_url: " + config.DefaultDocsBaseURL} {
		if !strings.Contains(stdout, want) {
			t.Errorf("config show output missing %q:\n%s", want, stdout)
		}
	}
}

func TestConfigShow_ReportsLoadedFile(t *testing.T) {
	provider := stubConfigProvider{path: "/etc/ertkw/config.cue"}

	stdout, _, err := runCommand(t, provider, "config", "show")
	if err != nil {
		t.Fatalf("config show error = %v", err)
	}
	if !strings.Contains(stdout, "/etc/ertkw/config.cue") || strings.Contains(stdout, "(using defaults)") {
		t.Errorf("config show should name the loaded file:\n%s", stdout)
	}
}

func TestConfigPath(t *testing.T) {
	tests := []struct {
		name     string
		provider stubConfigProvider
		want     string
	}{
		{"loaded file", stubConfigProvider{path: "/etc/ertkw/config.cue"}, "In use: /etc/ertkw/config.cue"},
		{"defaults", stubConfigProvider{}, "In use: (none, using defaults)"},
		{"load error", stubConfigProvider{err: errors.New("bad cue")}, "In use: (unreadable, using defaults)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCommand(t, tt.provider, "config", "path")
			if err != nil {
				t.Fatalf("config path error = %v", err)
			}
			if !strings.Contains(stdout, tt.want) {
				t.Errorf("config path output missing %q:\n%s", tt.want, stdout)
			}
		})
	}
}

func TestConfigShow_LoadError(t *testing.T) {
	_, _, err := runCommand(t, stubConfigProvider{err: errors.New("bad cue")}, "config", "show")

	var svcErr *ServiceError
	if !errors.As(err, &svcErr) {
		t.Fatalf("error should be *ServiceError, got %T: %v", err, err)
	}
	if svcErr.Code != types.ExitConfig || svcErr.IssueID != issue.ConfigLoadFailedId {
		t.Errorf("ServiceError = %+v, want ExitConfig with ConfigLoadFailedId", svcErr)
	}
}

func TestConfigDump(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.UI.ColorScheme = config.ColorSchemeLight

	stdout, _, err := runCommand(t, stubConfigProvider{cfg: cfg}, "config", "dump")
	if err != nil {
		t.Fatalf("config dump error = %v", err)
	}
	if stdout != config.GenerateCUE(cfg) {
		t.Errorf("config dump output mismatch:\n%s", stdout)
	}
}

func TestConfigInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.cue")

	stdout, _, err := runCommand(t, nil, "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("config init error = %v", err)
	}
	if !strings.Contains(stdout, "Created default configuration") {
		t.Errorf("stdout = %q", stdout)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config file not created: %v", err)
	}

	stdout, _, err = runCommand(t, nil, "--config", path, "config", "init")
	if err != nil {
		t.Fatalf("second config init error = %v", err)
	}
	if !strings.Contains(stdout, "already exists") {
		t.Errorf("second init should report the existing file, got %q", stdout)
	}
}

func TestCompletionCommand(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			stdout, _, err := runCommand(t, nil, "completion", shell)
			if err != nil {
				t.Fatalf("completion %s error = %v", shell, err)
			}
			if !strings.Contains(stdout, "ertkw") {
				t.Errorf("completion %s script does not mention ertkw", shell)
			}
		})
	}

	if _, _, err := runCommand(t, nil, "completion", "tcsh"); err == nil {
		t.Error("completion tcsh should fail")
	}
}
