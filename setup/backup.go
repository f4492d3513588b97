package setup

import (
	"os"
	"path/filepath"
)

// BackupFile copies a file next to itself with a .bak suffix
func BackupFile(path string) error {
	return copyFile(path, path+".bak")
}

// copyFile copies a file from src to dst
func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0644)
}

// CopyDir recursively copies a directory
func CopyDir(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dst, srcInfo.Mode()); err != nil {
		return err
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())

		if entry.IsDir() {
			if err := CopyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}

	return nil
}

// BackupDir copies a directory tree next to itself with a .bak suffix.
// An existing backup is replaced.
func BackupDir(dir string) error {
	backup := dir + ".bak"
	if err := os.RemoveAll(backup); err != nil {
		return err
	}
	return CopyDir(dir, backup)
}
