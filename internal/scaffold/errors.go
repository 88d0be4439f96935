package scaffold

import "fmt"

// TemplateNotFoundError is returned when the template path does not exist
// or is not a directory. It is always reported before any filesystem change.
type TemplateNotFoundError struct {
	Path string
	Err  error
}

func (e *TemplateNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("template path '%s' does not exist: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("template path '%s' does not exist", e.Path)
}

func (e *TemplateNotFoundError) Unwrap() error {
	return e.Err
}

// DestinationConflictError is returned when the project path cannot hold the
// new project, e.g. it is an existing file.
type DestinationConflictError struct {
	Path   string
	Reason string
}

func (e *DestinationConflictError) Error() string {
	return fmt.Sprintf("cannot create project at %s: %s", e.Path, e.Reason)
}

// InvalidProjectNameError is returned for names that cannot be used as a
// single directory name.
type InvalidProjectNameError struct {
	Name   string
	Reason string
}

func (e *InvalidProjectNameError) Error() string {
	return fmt.Sprintf("invalid project name %q: %s", e.Name, e.Reason)
}
