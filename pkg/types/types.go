package types

import (
	"io/fs"
)

// FS is the filesystem interface required for bootstage operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)

	// Optional operations - implementations should check for support
	// For testing, Lstat can fall back to Stat
	Lstat(name string) (fs.FileInfo, error)
}

// Pair is one resolved copy operation: a source path relative to the
// artifact root mapped to a destination path relative to the destination
// root. The source half refers to an existing regular file at resolution
// time; the destination half never escapes the destination root.
type Pair struct {
	Source string
	Dest   string
}
