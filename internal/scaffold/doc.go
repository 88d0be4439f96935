// Package scaffold materializes a new project from a template directory.
// It powers the root command: resolve paths, validate the template, copy
// the tree into <cwd>/<name>, rewrite the manifest name, and install
// dependencies.
//
// Nothing is rolled back. A failure after the destination directory was
// created leaves whatever was already written in place.
package scaffold
