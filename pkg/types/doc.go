// Package types defines the shared types used across bootstage packages.
//
// It has no dependencies on other bootstage packages so that any package
// can import it without creating cycles.
package types
