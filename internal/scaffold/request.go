package scaffold

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/nuxius-labs/init-nuxius/internal/branding"
)

// maxNameLength matches the npm package name limit.
const maxNameLength = 214

var namePattern = regexp.MustCompile(`^[A-Za-z0-9~-][A-Za-z0-9._~-]*$`)

// Request describes one scaffolding run. All paths are absolute.
type Request struct {
	ProjectName  string
	TemplatePath string
	ProjectPath  string
}

// NewRequest validates name and resolves the template and project paths
// against cwd. A relative templatePath is taken relative to cwd.
func NewRequest(cwd, name, templatePath string) (*Request, error) {
	if err := ValidateProjectName(name); err != nil {
		return nil, err
	}
	if !filepath.IsAbs(cwd) {
		return nil, fmt.Errorf("working directory %q is not absolute", cwd)
	}
	if templatePath == "" {
		return nil, fmt.Errorf("no template path given")
	}

	if !filepath.IsAbs(templatePath) {
		templatePath = filepath.Join(cwd, templatePath)
	}

	projectPath, err := securejoin.SecureJoin(cwd, name)
	if err != nil {
		return nil, fmt.Errorf("resolving project path: %w", err)
	}

	return &Request{
		ProjectName:  name,
		TemplatePath: filepath.Clean(templatePath),
		ProjectPath:  projectPath,
	}, nil
}

// ValidateProjectName accepts names usable both as a single directory name
// and as a manifest name.
func ValidateProjectName(name string) error {
	switch {
	case name == "":
		return &InvalidProjectNameError{Name: name, Reason: "must not be empty"}
	case strings.TrimSpace(name) != name:
		return &InvalidProjectNameError{Name: name, Reason: "must not start or end with whitespace"}
	case name == "." || name == "..":
		return &InvalidProjectNameError{Name: name, Reason: "must not be a relative path segment"}
	case strings.ContainsAny(name, `/\`):
		return &InvalidProjectNameError{Name: name, Reason: "must not contain path separators"}
	case len(name) > maxNameLength:
		return &InvalidProjectNameError{Name: name, Reason: fmt.Sprintf("must be at most %d characters", maxNameLength)}
	case !namePattern.MatchString(name):
		return &InvalidProjectNameError{Name: name, Reason: "may only contain letters, digits, '.', '_', '~' and '-', and must not start with '.' or '_'"}
	}
	return nil
}

// DefaultTemplatePath returns the bundled template directory that ships next
// to the executable at exe.
func DefaultTemplatePath(exe string) string {
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), branding.TemplateDir())
}
