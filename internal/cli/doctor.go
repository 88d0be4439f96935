package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"slices"

	"github.com/kballard/go-shellquote"
	"github.com/nuxius-labs/init-nuxius/internal/branding"
	"github.com/nuxius-labs/init-nuxius/internal/config"
	"github.com/nuxius-labs/init-nuxius/internal/manifest"
	"github.com/nuxius-labs/init-nuxius/internal/scaffold"
	"github.com/nuxius-labs/init-nuxius/internal/template"
	"github.com/spf13/cobra"
)

var doctorTemplate string

func init() {
	doctorCmd.Flags().StringVarP(&doctorTemplate, "template", "t", "", "Template directory to check")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the template and install command used for new projects",
	Long: `Run diagnostic checks on the template directory, its package.json and
descriptor, and the install command that ` + branding.CLIName() + ` would run.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		templatePath, err := resolveTemplate(doctorTemplate)
		if err != nil {
			return err
		}
		if failed := runDoctor(cmd.OutOrStdout(), templatePath); failed > 0 {
			return fmt.Errorf("%d check(s) failed", failed)
		}
		return nil
	},
}

// runDoctor prints one line per check and returns the number of failures.
func runDoctor(out io.Writer, templatePath string) int {
	fmt.Fprintf(out, "Template check: %s\n", templatePath)

	info, err := os.Stat(templatePath)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return 1
	}
	if !info.IsDir() {
		fmt.Fprintln(out, "  [FAIL] not a directory")
		return 1
	}

	tmpl, err := template.Load(templatePath, branding.ManifestFile())
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return 1
	}
	fmt.Fprintln(out, "  [ OK ] template directory found")
	if len(tmpl.Descriptor.Exclude) > 0 || tmpl.Descriptor.Install != "" {
		fmt.Fprintf(out, "  [ OK ] %s loaded\n", template.DescriptorFile)
	}

	failed := checkTemplateManifest(out, tmpl.ManifestPath(templatePath))

	cmdline := scaffold.ResolveInstallCommand(config.Get(config.KeyInstallCommand), tmpl)
	failed += checkInstallCommand(out, cmdline)
	return failed
}

func checkTemplateManifest(out io.Writer, path string) int {
	fmt.Fprintf(out, "Manifest check: %s\n", path)

	doc, err := manifest.ReadFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "  [ OK ] parsed, template name %q\n", doc.Name())
	if !slices.Contains(doc.Keys(), manifest.NameKey) {
		fmt.Fprintf(out, "  [WARN] no %q field; new projects get one appended after %d existing field(s)\n", manifest.NameKey, len(doc.Keys()))
	}

	result, err := manifest.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [WARN] could not validate: %v\n", err)
		return 0
	}
	for _, issue := range result.Issues {
		if issue.Path == "/name" {
			// Replaced by the project name when scaffolding.
			continue
		}
		fmt.Fprintf(out, "  [WARN] %s\n", issue)
	}
	return 0
}

func checkInstallCommand(out io.Writer, cmdline string) int {
	fmt.Fprintf(out, "Install command check: %s\n", cmdline)

	args, err := shellquote.Split(cmdline)
	if err != nil || len(args) == 0 {
		fmt.Fprintf(out, "  [FAIL] cannot parse install command %q\n", cmdline)
		return 1
	}
	path, err := exec.LookPath(args[0])
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", args[0])
		return 1
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", args[0], path)
	return 0
}
