package filesystem

import "os"

// Disk is the os-backed implementation of ports.Filesystem.
type Disk struct{}

// Exists reports whether path exists at all.
func (Disk) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether path exists and is a directory.
func (Disk) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
