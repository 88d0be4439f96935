// Package logging provides the two kinds of output the CLI produces.
//
// Debug logs are structured slog records written to stderr, shown only with
// --verbose:
//
//	logging.Debug("copying template", "from", src, "to", dst)
//
// User output is a short line with a status prefix:
//
//	logging.UserSuccess("Project %s created", name)
//	logging.UserWarning("manifest %s: %s", path, msg)
//
// UserInfo and UserSuccess write to stdout, UserWarning and UserError to
// stderr. Both destinations can be swapped with SetOutput for tests.
package logging
