// Package config manages user-level settings stored at ~/.nuxius/config.yaml.
// Keys can also be supplied through NUXIUS_* environment variables, e.g.
// NUXIUS_TEMPLATE overrides the default template directory.
package config
