package installer

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

func TestNewCommand(t *testing.T) {
	tests := []struct {
		cmdline string
		want    []string
	}{
		{"npm install", []string{"npm", "install"}},
		{"  pnpm   install --frozen-lockfile ", []string{"pnpm", "install", "--frozen-lockfile"}},
		{`npm install --registry "https://example.com/my registry"`, []string{"npm", "install", "--registry", "https://example.com/my registry"}},
	}

	for _, tt := range tests {
		cmd, err := NewCommand(tt.cmdline)
		if err != nil {
			t.Fatalf("NewCommand(%q): %v", tt.cmdline, err)
		}
		if !reflect.DeepEqual(cmd.Args, tt.want) {
			t.Errorf("NewCommand(%q).Args = %q, want %q", tt.cmdline, cmd.Args, tt.want)
		}
	}
}

func TestNewCommandErrors(t *testing.T) {
	for _, cmdline := range []string{"", "   ", `npm install "unterminated`} {
		if _, err := NewCommand(cmdline); err == nil {
			t.Errorf("NewCommand(%q) succeeded, want error", cmdline)
		}
	}
}

func TestCommandString(t *testing.T) {
	cmd := &Command{Args: []string{"npm", "install", "--registry", "a b"}}
	if got := cmd.String(); got != `npm install --registry 'a b'` {
		t.Errorf("String() = %q", got)
	}
}

func TestInstallCapturesOutput(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()

	cmd, err := NewCommand(`sh -c "pwd; echo warn >&2"`)
	if err != nil {
		t.Fatal(err)
	}
	out, err := cmd.Install(context.Background(), dir)
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if out.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", out.ExitCode)
	}

	// The command runs inside dir.
	wantDir, _ := filepath.EvalSymlinks(dir)
	gotDir, _ := filepath.EvalSymlinks(strings.TrimSpace(out.Stdout))
	if gotDir != wantDir {
		t.Errorf("working directory = %q, want %q", gotDir, wantDir)
	}
	if strings.TrimSpace(out.Stderr) != "warn" {
		t.Errorf("Stderr = %q, want %q", out.Stderr, "warn\n")
	}
}

func TestInstallNonZeroExit(t *testing.T) {
	requireShell(t)

	cmd, err := NewCommand(`sh -c "echo 'ERR! missing peer' >&2; exit 3"`)
	if err != nil {
		t.Fatal(err)
	}

	out, err := cmd.Install(context.Background(), t.TempDir())
	var installErr *Error
	if !errors.As(err, &installErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if installErr.ExitCode != 3 || out.ExitCode != 3 {
		t.Errorf("ExitCode = %d/%d, want 3", installErr.ExitCode, out.ExitCode)
	}
	if !strings.Contains(err.Error(), "ERR! missing peer") {
		t.Errorf("error should carry stderr, got: %v", err)
	}
	if !strings.Contains(err.Error(), "command failed: sh -c") {
		t.Errorf("error should name the command, got: %v", err)
	}
}

func TestInstallMissingBinary(t *testing.T) {
	cmd := &Command{Args: []string{"definitely-not-a-package-manager", "install"}}

	_, err := cmd.Install(context.Background(), t.TempDir())
	var installErr *Error
	if !errors.As(err, &installErr) {
		t.Fatalf("expected *Error, got %T: %v", err, err)
	}
	if installErr.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", installErr.ExitCode)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("expected wrapped exec.ErrNotFound, got %v", err)
	}
}

func TestInstallMissingDir(t *testing.T) {
	requireShell(t)
	cmd := &Command{Args: []string{"sh", "-c", "true"}}

	_, err := cmd.Install(context.Background(), filepath.Join(t.TempDir(), "gone"))
	if err == nil {
		t.Fatal("expected error for missing working directory")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped os.ErrNotExist, got %v", err)
	}
}

func TestInstallCancelled(t *testing.T) {
	requireShell(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd := &Command{Args: []string{"sh", "-c", "sleep 5"}}
	if _, err := cmd.Install(ctx, t.TempDir()); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestInstallInheritsEnvironment(t *testing.T) {
	requireShell(t)
	t.Setenv("NUXIUS_INSTALL_MARKER", "from-parent")

	cmd := &Command{Args: []string{"sh", "-c", "echo $NUXIUS_INSTALL_MARKER"}}
	out, err := cmd.Install(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if strings.TrimSpace(out.Stdout) != "from-parent" {
		t.Errorf("Stdout = %q, want inherited variable", out.Stdout)
	}
}
