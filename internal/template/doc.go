// Package template reads the optional descriptor a template directory can
// carry at its root (.nuxius.toml):
//
//	manifest = "package.json"
//	install  = "pnpm install --frozen-lockfile"
//	exclude  = ["node_modules", ".git", "*.log"]
//
// Exclude entries use .gitignore syntax and are matched against paths
// relative to the template root. The descriptor itself is never copied.
package template
