package pipeline

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// rename is swapped in tests to simulate a cross-device move.
var rename = os.Rename

// moveFile renames from to to. When the two paths are on different
// filesystems it falls back to copy + remove.
func moveFile(from, to string) error {
	err := rename(from, to)
	if err == nil || !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if err := copyFile(from, to); err != nil {
		os.Remove(to)
		return err
	}
	return os.Remove(from)
}

// copyFile copies from to to, keeping the source permission bits.
func copyFile(from, to string) error {
	src, err := os.Open(from)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}
	dst, err := os.OpenFile(to, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	if err := dst.Sync(); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
