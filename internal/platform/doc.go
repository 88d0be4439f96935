// Package platform provides the cross-platform filesystem operations used
// when copying a template: permission bits and symbolic links. On Windows,
// chmod is a no-op and a symlink that cannot be created natively is
// replaced by a copy of its target.
package platform
