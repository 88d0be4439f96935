// Package cli defines the Cobra command tree for the init-nuxius CLI. The
// root command scaffolds a project; version, config and doctor are registered
// as subcommands from their own files. Commands delegate to internal packages
// and only handle flags, output and exit status.
package cli
