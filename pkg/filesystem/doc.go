// Package filesystem provides types.FS implementations backed by the
// operating system and by afero, the latter mainly for in-memory testing.
package filesystem
