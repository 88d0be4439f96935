package scaffold

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/nuxius-labs/init-nuxius/internal/platform"
	"github.com/nuxius-labs/init-nuxius/internal/template"
)

// copyTree recursively copies the template into dst, which must already
// exist. It returns the number of files and symlinks written. A failure
// part-way leaves the files copied so far in place.
func copyTree(tmpl *template.Template, dst string) (int, error) {
	return copyDir(tmpl, tmpl.Root, dst, ".")
}

// copyDir copies the contents of src into dst. rel is src relative to the
// template root and is what exclusion patterns are matched against.
func copyDir(tmpl *template.Template, src, dst, rel string) (int, error) {
	entries, err := os.ReadDir(src)
	if err != nil {
		return 0, err
	}

	copied := 0
	for _, entry := range entries {
		entryRel := filepath.Join(rel, entry.Name())
		if tmpl.Excluded(entryRel, entry.IsDir()) {
			continue
		}

		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		switch {
		case entry.IsDir():
			info, err := entry.Info()
			if err != nil {
				return copied, err
			}
			if err := os.MkdirAll(dstPath, info.Mode().Perm()|0700); err != nil {
				return copied, err
			}
			n, err := copyDir(tmpl, srcPath, dstPath, entryRel)
			copied += n
			if err != nil {
				return copied, err
			}
		case entry.Type()&fs.ModeSymlink != 0:
			if err := platform.CopySymlink(srcPath, dstPath); err != nil {
				return copied, err
			}
			copied++
		case entry.Type().IsRegular():
			if err := copyFile(srcPath, dstPath); err != nil {
				return copied, err
			}
			copied++
		}
		// Sockets, devices and pipes are not part of a project template.
	}

	return copied, nil
}

// copyFile copies a single file from src to dst, preserving permissions. An
// existing symlink at dst is replaced rather than written through.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	srcInfo, err := in.Stat()
	if err != nil {
		return err
	}

	if info, err := os.Lstat(dst); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		if err := os.Remove(dst); err != nil {
			return err
		}
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copying %s: %w", src, err)
	}
	if err := out.Close(); err != nil {
		return err
	}

	return platform.ApplyMode(dst, srcInfo.Mode())
}
