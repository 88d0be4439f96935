package platform

import (
	"io/fs"
	"os"
	"runtime"
)

// Chmod sets file permissions. On Windows this is a no-op because Windows
// does not support Unix-style permission bits.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}

// ApplyMode gives dst the permission bits of src, ignoring the umask that
// applied when dst was created.
func ApplyMode(dst string, src fs.FileMode) error {
	return Chmod(dst, src.Perm())
}
