package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nuxius-labs/init-nuxius/internal/branding"
	"github.com/nuxius-labs/init-nuxius/internal/gitrepo"
	"github.com/nuxius-labs/init-nuxius/internal/installer"
	"github.com/nuxius-labs/init-nuxius/internal/logging"
	"github.com/nuxius-labs/init-nuxius/internal/manifest"
	"github.com/nuxius-labs/init-nuxius/internal/template"
)

// Options tunes a run. The zero value installs with the template's or the
// built-in install command and does not initialize git.
type Options struct {
	// InstallCommand overrides the template descriptor and built-in default.
	InstallCommand string
	SkipInstall    bool
	GitInit        bool

	// NewInstaller builds the installer for a command line. Defaults to
	// running the command as a subprocess.
	NewInstaller func(cmdline string) (installer.Installer, error)
}

// Result holds the outcome of a successful run.
type Result struct {
	ProjectPath    string
	ManifestPath   string
	FilesCopied    int
	Warnings       []string
	InstallCommand string
	Install        *installer.Output // nil when installation was skipped
	GitInitialized bool
}

// Run scaffolds req. Steps run in order and the first failure ends the run:
// template and destination checks (no changes made yet), directory creation,
// copy, manifest patch, dependency install, and optional git init.
func Run(ctx context.Context, req *Request, opts Options) (*Result, error) {
	tmpl, err := checkPaths(req)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(req.ProjectPath); errors.Is(err, fs.ErrNotExist) {
		logging.Debug("creating project directory", "path", req.ProjectPath)
		if err := os.MkdirAll(req.ProjectPath, 0755); err != nil {
			return nil, fmt.Errorf("creating project directory %s: %w", req.ProjectPath, err)
		}
	} else {
		logging.Debug("project directory already exists", "path", req.ProjectPath)
	}

	logging.Debug("copying template", "from", req.TemplatePath, "to", req.ProjectPath)
	copied, err := copyTree(tmpl, req.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("copying %s to %s: %w", req.TemplatePath, req.ProjectPath, err)
	}

	result := &Result{
		ProjectPath:  req.ProjectPath,
		ManifestPath: tmpl.ManifestPath(req.ProjectPath),
		FilesCopied:  copied,
	}

	logging.Debug("patching manifest", "path", result.ManifestPath, "name", req.ProjectName)
	if err := manifest.PatchName(result.ManifestPath, req.ProjectName); err != nil {
		return nil, err
	}
	result.Warnings = validateManifest(result.ManifestPath)

	if !opts.SkipInstall {
		cmdline := ResolveInstallCommand(opts.InstallCommand, tmpl)
		result.InstallCommand = cmdline

		newInstaller := opts.NewInstaller
		if newInstaller == nil {
			newInstaller = commandInstaller
		}
		inst, err := newInstaller(cmdline)
		if err != nil {
			return nil, err
		}

		logging.Debug("installing dependencies", "command", cmdline, "dir", req.ProjectPath)
		out, err := inst.Install(ctx, req.ProjectPath)
		if err != nil {
			return nil, err
		}
		result.Install = out
		logging.Info("dependencies installed", "command", cmdline, "dir", req.ProjectPath)
	}

	if opts.GitInit {
		created, err := gitrepo.Init(req.ProjectPath)
		if err != nil {
			return nil, err
		}
		if !created {
			logging.Warn("git repository already exists, leaving it as is", "dir", req.ProjectPath)
		}
		result.GitInitialized = created
	}

	return result, nil
}

// checkPaths performs every check that must pass before the filesystem is
// touched and loads the template descriptor.
func checkPaths(req *Request) (*template.Template, error) {
	info, err := os.Stat(req.TemplatePath)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &TemplateNotFoundError{Path: req.TemplatePath}
	}
	if err != nil {
		return nil, fmt.Errorf("checking template %s: %w", req.TemplatePath, err)
	}
	if !info.IsDir() {
		return nil, &TemplateNotFoundError{Path: req.TemplatePath, Err: errors.New("not a directory")}
	}

	if info, err := os.Stat(req.ProjectPath); err == nil && !info.IsDir() {
		return nil, &DestinationConflictError{Path: req.ProjectPath, Reason: "a file with that name already exists"}
	}
	if isWithin(req.TemplatePath, req.ProjectPath) {
		return nil, &DestinationConflictError{Path: req.ProjectPath, Reason: "it is inside the template directory"}
	}

	tmpl, err := template.Load(req.TemplatePath, branding.ManifestFile())
	if err != nil {
		return nil, err
	}
	return tmpl, nil
}

// isWithin reports whether path equals root or lies beneath it.
func isWithin(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// ResolveInstallCommand picks the explicit override, then the template's
// descriptor, then the built-in default.
func ResolveInstallCommand(override string, tmpl *template.Template) string {
	if s := strings.TrimSpace(override); s != "" {
		return s
	}
	if s := strings.TrimSpace(tmpl.Descriptor.Install); s != "" {
		return s
	}
	return branding.InstallCommand()
}

func commandInstaller(cmdline string) (installer.Installer, error) {
	cmd, err := installer.NewCommand(cmdline)
	if err != nil {
		return nil, err
	}
	return cmd, nil
}

// validateManifest returns schema and semver problems as warnings. A broken
// manifest name never fails the run.
func validateManifest(path string) []string {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return []string{fmt.Sprintf("could not validate manifest: %v", err)}
	}
	var warnings []string
	for _, issue := range result.Issues {
		warnings = append(warnings, issue.String())
	}
	return warnings
}
