package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/phanxgames/tutorials/internal/game"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		configured, override string
		want                 log.Level
	}{
		{"info", "", log.InfoLevel},
		{"info", "debug", log.DebugLevel},
		{"", "warn", log.WarnLevel},
		{"error", "", log.ErrorLevel},
	}
	for _, tt := range tests {
		logger, err := newLogger(&bytes.Buffer{}, tt.configured, tt.override)
		if err != nil {
			t.Errorf("newLogger(%q, %q): %v", tt.configured, tt.override, err)
			continue
		}
		if got := logger.GetLevel(); got != tt.want {
			t.Errorf("newLogger(%q, %q) level = %v, want %v", tt.configured, tt.override, got, tt.want)
		}
	}

	if _, err := newLogger(&bytes.Buffer{}, "info", "loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestListCommand(t *testing.T) {
	var out bytes.Buffer
	listCmd.SetOut(&out)
	runList(listCmd, nil)
	for _, name := range game.Names() {
		if !strings.Contains(out.String(), name) {
			t.Errorf("list output missing %q:\n%s", name, out.String())
		}
	}
}

func TestSceneCommandsRegistered(t *testing.T) {
	for _, name := range game.Names() {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered (%v)", name, err)
		}
		if sceneSummaries[name] == "" || sceneHelp[name] == "" {
			t.Errorf("scene %q missing summary or help", name)
		}
	}
}

func TestNewLoggerNonTerminalUsesLogfmt(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, "info", "")
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("config reloaded", "path", "a.yaml")
	out := buf.String()
	if !strings.Contains(out, "msg=\"config reloaded\"") || !strings.Contains(out, "path=a.yaml") {
		t.Errorf("logfmt output = %q", out)
	}
}
