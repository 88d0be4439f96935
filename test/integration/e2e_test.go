//go:build integration

package integration_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var starterTemplate = map[string]string{
	"package.json":   `{"name":"template","version":"0.1.0","private":true,"scripts":{"dev":"nuxt dev"}}`,
	"nuxt.config.ts": "export default defineNuxtConfig({})\n",
	"src/index.js":   "console.log('hello')\n",
}

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping")
	}
}

// TestScaffoldWithBundledTemplate runs the full flow against the template
// that sits next to the binary.
func TestScaffoldWithBundledTemplate(t *testing.T) {
	requireShell(t)
	env := setupTestEnv(t)
	bundled := filepath.Join(binDir, "nuxius")
	writeTemplate(t, bundled, starterTemplate)
	t.Cleanup(func() { os.RemoveAll(bundled) })

	res := env.run(t, "my-app", "--install-cmd", `sh -c "echo installed; echo warn >&2"`)
	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d\nstdout: %s\nstderr: %s", res.ExitCode, res.Stdout, res.Stderr)
	}

	projectDir := filepath.Join(env.WorkDir, "my-app")
	want := "{\n  \"name\": \"my-app\",\n  \"version\": \"0.1.0\",\n  \"private\": true,\n  \"scripts\": {\n    \"dev\": \"nuxt dev\"\n  }\n}"
	if got := readFile(t, filepath.Join(projectDir, "package.json")); got != want {
		t.Errorf("package.json =\n%s\nwant\n%s", got, want)
	}
	if got := readFile(t, filepath.Join(projectDir, "src", "index.js")); got != starterTemplate["src/index.js"] {
		t.Errorf("src/index.js = %q", got)
	}

	if !strings.Contains(res.Stdout, "installed") {
		t.Errorf("install stdout not forwarded: %q", res.Stdout)
	}
	if !strings.Contains(res.Stderr, "warn") {
		t.Errorf("install stderr not forwarded: %q", res.Stderr)
	}
	if !strings.Contains(res.Stderr, "Nuxius project 'my-app' has been initialized successfully!") {
		t.Errorf("missing success line: %q", res.Stderr)
	}
}

func TestScaffoldMissingTemplate(t *testing.T) {
	env := setupTestEnv(t)

	res := env.run(t, "my-app", "-t", filepath.Join(env.WorkDir, "nope"))
	// Failures shown by the status indicator end the run normally.
	if res.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "does not exist.") {
		t.Errorf("stderr = %q", res.Stderr)
	}
	assertNotExists(t, filepath.Join(env.WorkDir, "my-app"))
}

func TestScaffoldInstallFailure(t *testing.T) {
	requireShell(t)
	env := setupTestEnv(t)
	tmpl := filepath.Join(env.WorkDir, "templates", "starter")
	writeTemplate(t, tmpl, starterTemplate)

	res := env.run(t, "my-app", "-t", tmpl, "--install-cmd", `sh -c "echo boom >&2; exit 3"`)
	if res.ExitCode != 0 {
		t.Errorf("exit code = %d, want 0", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "Error installing dependencies") || !strings.Contains(res.Stderr, "boom") {
		t.Errorf("stderr = %q", res.Stderr)
	}
	assertFileExists(t, filepath.Join(env.WorkDir, "my-app", "src", "index.js"))
}

func TestScaffoldExistingDirectoryAndGit(t *testing.T) {
	env := setupTestEnv(t)
	tmpl := filepath.Join(env.WorkDir, "templates", "starter")
	writeTemplate(t, tmpl, starterTemplate)
	writeFile(t, filepath.Join(env.WorkDir, "my-app", "KEEP"), "x")

	res := env.run(t, "my-app", "-t", tmpl, "--skip-install", "--git")
	if res.ExitCode != 0 {
		t.Fatalf("exit code = %d\nstderr: %s", res.ExitCode, res.Stderr)
	}
	assertFileExists(t, filepath.Join(env.WorkDir, "my-app", "KEEP"))
	assertFileExists(t, filepath.Join(env.WorkDir, "my-app", ".git", "HEAD"))
}

func TestUsageErrors(t *testing.T) {
	env := setupTestEnv(t)

	res := env.run(t)
	if res.ExitCode != 1 {
		t.Errorf("no args: exit code = %d, want 1", res.ExitCode)
	}
	if !strings.Contains(res.Stderr, "accepts 1 arg") {
		t.Errorf("no args: stderr = %q", res.Stderr)
	}

	res = env.run(t, "--version")
	if res.ExitCode != 0 || strings.TrimSpace(res.Stdout) != "1.0.0" {
		t.Errorf("--version: exit %d, stdout %q", res.ExitCode, res.Stdout)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	env := setupTestEnv(t)

	if res := env.run(t, "config", "set", "install_command", "pnpm install"); res.ExitCode != 0 {
		t.Fatalf("config set: exit %d, stderr %q", res.ExitCode, res.Stderr)
	}
	res := env.run(t, "config", "get", "install_command")
	if strings.TrimSpace(res.Stdout) != "pnpm install" {
		t.Errorf("config get = %q", res.Stdout)
	}
	assertFileExists(t, filepath.Join(env.HomeDir, ".nuxius", "config.yaml"))
}
