package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return home
}

func TestFilePath(t *testing.T) {
	home := isolate(t)
	want := filepath.Join(home, ".nuxius", "config.yaml")
	if got := FilePath(); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}

func TestSetAndGet(t *testing.T) {
	isolate(t)
	Load()

	if err := Set(KeyInstallCommand, "pnpm install"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, err := os.ReadFile(FilePath())
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "install_command: pnpm install") {
		t.Errorf("config file missing key, got:\n%s", data)
	}

	// A fresh load sees the persisted value.
	viper.Reset()
	Load()
	if got := Get(KeyInstallCommand); got != "pnpm install" {
		t.Errorf("Get() = %q, want %q", got, "pnpm install")
	}
}

func TestSetUnknownKey(t *testing.T) {
	isolate(t)
	Load()
	if err := Set("colour", "blue"); err == nil {
		t.Fatal("expected error for unknown key")
	}
}

func TestEnvOverride(t *testing.T) {
	isolate(t)
	t.Setenv("NUXIUS_TEMPLATE", "/opt/templates/nuxius")
	t.Setenv("NUXIUS_GIT_INIT", "true")
	Load()

	if got := Get(KeyTemplate); got != "/opt/templates/nuxius" {
		t.Errorf("Get(template) = %q, want env value", got)
	}
	if !GetBool(KeyGitInit) {
		t.Error("GetBool(git_init) = false, want true")
	}
}
