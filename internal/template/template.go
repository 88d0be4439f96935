package template

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// DescriptorFile is the name of the descriptor at the template root.
const DescriptorFile = ".nuxius.toml"

// Descriptor describes how a template should be scaffolded.
type Descriptor struct {
	Manifest string   `toml:"manifest"`
	Install  string   `toml:"install"`
	Exclude  []string `toml:"exclude"`
}

// Template is a validated template directory with its descriptor.
type Template struct {
	Root       string
	Descriptor Descriptor

	matcher gitignore.Matcher
}

// Load reads the descriptor under root, if any. A missing descriptor yields
// defaultManifest and no install override or exclusions.
func Load(root, defaultManifest string) (*Template, error) {
	t := &Template{
		Root:       root,
		Descriptor: Descriptor{Manifest: defaultManifest},
	}

	path := filepath.Join(root, DescriptorFile)
	if _, err := toml.DecodeFile(path, &t.Descriptor); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading template descriptor %s: %w", path, err)
	}

	if t.Descriptor.Manifest == "" {
		t.Descriptor.Manifest = defaultManifest
	}
	if err := checkRelative(t.Descriptor.Manifest); err != nil {
		return nil, fmt.Errorf("template descriptor %s: manifest: %w", path, err)
	}

	patterns := make([]gitignore.Pattern, 0, len(t.Descriptor.Exclude))
	for _, line := range t.Descriptor.Exclude {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}
	t.matcher = gitignore.NewMatcher(patterns)

	return t, nil
}

// ManifestPath returns the manifest location inside dir.
func (t *Template) ManifestPath(dir string) string {
	return filepath.Join(dir, filepath.FromSlash(t.Descriptor.Manifest))
}

// Excluded reports whether rel (relative to the template root) should be
// left out of the copy.
func (t *Template) Excluded(rel string, isDir bool) bool {
	rel = filepath.ToSlash(rel)
	if rel == DescriptorFile {
		return true
	}
	if t.matcher == nil || rel == "." || rel == "" {
		return false
	}
	return t.matcher.Match(strings.Split(rel, "/"), isDir)
}

// checkRelative rejects manifest locations that would escape the project.
func checkRelative(p string) error {
	if filepath.IsAbs(p) || strings.HasPrefix(p, "/") {
		return fmt.Errorf("%q must be relative to the template root", p)
	}
	clean := filepath.ToSlash(filepath.Clean(filepath.FromSlash(p)))
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("%q points outside the template", p)
	}
	return nil
}
