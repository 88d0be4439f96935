// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package and rebuild; Go's //go:embed
// bakes it into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	EnvPrefix      string `yaml:"env_prefix"`
	GoModule       string `yaml:"go_module"`
	TemplateDir    string `yaml:"template_dir"`
	ManifestFile   string `yaml:"manifest_file"`
	InstallCommand string `yaml:"install_command"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:        "init-nuxius",
			DisplayName:    "Nuxius",
			Description:    "Scaffold a new Nuxius project from a template",
			HomeDir:        ".nuxius",
			EnvPrefix:      "NUXIUS",
			GoModule:       "github.com/nuxius-labs/init-nuxius",
			TemplateDir:    "nuxius",
			ManifestFile:   "package.json",
			InstallCommand: "npm install",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "init-nuxius").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Nuxius").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".nuxius").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "NUXIUS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Not consumed at runtime.
func GoModule() string { load(); return defaults.GoModule }

// TemplateDir returns the name of the bundled template directory that sits
// next to the executable (e.g., "nuxius").
func TemplateDir() string { load(); return defaults.TemplateDir }

// ManifestFile returns the default manifest file name (e.g., "package.json").
func ManifestFile() string { load(); return defaults.ManifestFile }

// InstallCommand returns the default dependency install command.
func InstallCommand() string { load(); return defaults.InstallCommand }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("template") → "NUXIUS_TEMPLATE".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
