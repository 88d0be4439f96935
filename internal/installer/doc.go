// Package installer runs a project's dependency installation as a
// subprocess. The Installer interface lets callers swap in a fake when no
// real package manager should run.
package installer
