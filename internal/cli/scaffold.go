package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/nuxius-labs/init-nuxius/internal/branding"
	"github.com/nuxius-labs/init-nuxius/internal/config"
	"github.com/nuxius-labs/init-nuxius/internal/installer"
	"github.com/nuxius-labs/init-nuxius/internal/logging"
	"github.com/nuxius-labs/init-nuxius/internal/scaffold"
	"github.com/nuxius-labs/init-nuxius/internal/tui"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type scaffoldOptions struct {
	template    string
	installCmd  string
	skipInstall bool
	git         bool
}

var scaffoldFlags scaffoldOptions

// Replaced in tests.
var (
	getwd        = os.Getwd
	executable   = os.Executable
	newInstaller func(cmdline string) (installer.Installer, error)
	newStatus    = func() tui.Status { return tui.NewStatus(os.Stderr) }
)

func init() {
	f := rootCmd.Flags()
	f.StringVarP(&scaffoldFlags.template, "template", "t", "", "Path to the template directory")
	f.StringVar(&scaffoldFlags.installCmd, "install-cmd", "", "Command used to install dependencies (default from template or \""+branding.InstallCommand()+"\")")
	f.BoolVar(&scaffoldFlags.skipInstall, "skip-install", false, "Copy the template without installing dependencies")
	f.BoolVar(&scaffoldFlags.git, "git", false, "Initialize a git repository in the new project")
}

func runScaffold(ctx context.Context, name string, opts scaffoldOptions) error {
	status := newStatus()
	status.Start(fmt.Sprintf("Initializing %s project '%s'...", branding.DisplayName(), name))

	result, err := scaffoldProject(ctx, name, opts)
	if err != nil {
		status.Fail(failureMessage(err))
		return &reportedError{err: err}
	}

	status.Suspend(func() { report(result) })
	status.Succeed(fmt.Sprintf("%s project '%s' has been initialized successfully!", branding.DisplayName(), name))
	return nil
}

func scaffoldProject(ctx context.Context, name string, opts scaffoldOptions) (*scaffold.Result, error) {
	cwd, err := getwd()
	if err != nil {
		return nil, fmt.Errorf("determining working directory: %w", err)
	}
	templatePath, err := resolveTemplate(opts.template)
	if err != nil {
		return nil, err
	}

	req, err := scaffold.NewRequest(cwd, name, templatePath)
	if err != nil {
		return nil, err
	}
	logging.Debug("resolved request", "template", req.TemplatePath, "project", req.ProjectPath)

	installCmd := opts.installCmd
	if installCmd == "" {
		installCmd = config.Get(config.KeyInstallCommand)
	}

	return scaffold.Run(ctx, req, scaffold.Options{
		InstallCommand: installCmd,
		SkipInstall:    opts.skipInstall,
		GitInit:        opts.git || config.GetBool(config.KeyGitInit),
		NewInstaller:   newInstaller,
	})
}

// resolveTemplate picks the flag, then the configured template, then the
// template bundled next to the executable.
func resolveTemplate(flag string) (string, error) {
	if flag != "" {
		return flag, nil
	}
	if configured := config.Get(config.KeyTemplate); configured != "" {
		return configured, nil
	}
	exe, err := executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	return scaffold.DefaultTemplatePath(exe), nil
}

// report prints the install output the way the package manager produced it,
// followed by manifest warnings.
func report(result *scaffold.Result) {
	if out := result.Install; out != nil {
		if out.Stderr != "" {
			fmt.Fprint(logging.Stderr(), out.Stderr)
		}
		if out.Stdout != "" {
			fmt.Fprint(logging.Stdout(), out.Stdout)
		}
	}
	for _, w := range result.Warnings {
		logging.UserWarning("package.json %s", w)
	}
	if result.GitInitialized {
		logging.UserSuccess("Initialized git repository in %s", result.ProjectPath)
	}
	if logging.Verbose {
		p := message.NewPrinter(language.English)
		logging.UserInfo("%s", p.Sprintf("Copied %d files into %s", result.FilesCopied, result.ProjectPath))
	}
}

// failureMessage turns a workflow error into the single line shown when the
// status indicator fails.
func failureMessage(err error) string {
	var notFound *scaffold.TemplateNotFoundError
	var installErr *installer.Error
	switch {
	case errors.As(err, &notFound):
		if notFound.Err != nil {
			return fmt.Sprintf("Template path '%s' is not a usable directory: %v", notFound.Path, notFound.Err)
		}
		return fmt.Sprintf("Template path '%s' does not exist.", notFound.Path)
	case errors.As(err, &installErr):
		return "Error installing dependencies: " + installErr.Error()
	default:
		return "Failed to initialize project: " + err.Error()
	}
}
