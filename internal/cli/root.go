package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/nuxius-labs/init-nuxius/internal/branding"
	"github.com/nuxius-labs/init-nuxius/internal/config"
	"github.com/nuxius-labs/init-nuxius/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` copies a project template into a new directory named after the
project, sets the project name in its package.json and installs its
dependencies.

The template defaults to the "` + branding.TemplateDir() + `" directory next to the executable. It can be
changed with --template or the "template" config key.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		logging.Setup(verbose, logging.Stderr())
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScaffold(cmd.Context(), args[0], scaffoldFlags)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print debug logs to stderr")
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

// Execute runs the root command with build info injected via ldflags.
// Interrupting the process cancels any running install command. A scaffolding
// failure already shown by the status indicator is not returned, so only
// usage and unexpected errors end the process with a non-zero status.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	rootCmd.Version = version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return finish(rootCmd.ExecuteContext(ctx))
}

// finish prints errors the status indicator has not shown and drops the ones
// it has.
func finish(err error) error {
	if err == nil {
		return nil
	}
	var reported *reportedError
	if errors.As(err, &reported) {
		logging.Debug("scaffolding failed", "error", reported.err)
		return nil
	}
	logging.UserError("%v", err)
	return err
}

// reportedError marks an error the status indicator has already shown.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }
