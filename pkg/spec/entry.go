package spec

import (
	"path"
	"strings"

	"github.com/imgforge/bootstage/pkg/errors"
)

// Entry is one whitespace-delimited token of a specification: a glob
// pattern and an optional explicit destination. A Dest ending in "/"
// denotes a destination directory; a Dest without a trailing "/" is an
// exact target filename and requires the pattern to match exactly one
// file. An empty Dest means the entry had no ";destination" part.
type Entry struct {
	Pattern string
	Dest    string
}

// HasDest reports whether the entry carries an explicit destination.
func (e Entry) HasDest() bool {
	return e.Dest != ""
}

// ParseEntries splits a raw specification string into entries.
// Left-to-right order is preserved. A malformed entry fails the whole
// parse; partial results are never returned.
func ParseEntries(raw string) ([]Entry, error) {
	tokens := strings.Fields(raw)
	entries := make([]Entry, 0, len(tokens))

	for _, token := range tokens {
		pattern, dest, hasDest := splitEntry(token)
		pattern = strings.ReplaceAll(pattern, `\;`, ";")

		if pattern == "" {
			return nil, errors.Newf(errors.ErrSpecEntryInvalid,
				"entry %q has an empty pattern", token)
		}
		if !validRelPath(pattern) {
			return nil, errors.Newf(errors.ErrSpecEntryInvalid,
				"entry %q: pattern must be a relative path without '..'", token)
		}
		if hasDest {
			if dest == "" {
				return nil, errors.Newf(errors.ErrSpecEntryInvalid,
					"entry %q has an empty destination", token)
			}
			if !validRelPath(dest) {
				return nil, errors.Newf(errors.ErrSpecEntryInvalid,
					"entry %q: destination must be a relative path without '..'", token)
			}
		}

		entries = append(entries, Entry{Pattern: pattern, Dest: dest})
	}

	return entries, nil
}

// splitEntry splits a token on the first unescaped ';'. A backslash
// escapes the following character, so "boot\;v2.img" is a pattern with a
// literal semicolon.
func splitEntry(token string) (pattern, dest string, hasDest bool) {
	escaped := false
	for i, r := range token {
		if escaped {
			escaped = false
			continue
		}
		switch r {
		case '\\':
			escaped = true
		case ';':
			return token[:i], token[i+1:], true
		}
	}
	return token, "", false
}

// validRelPath reports whether p is a relative path with no '..'
// components. Destinations that could escape the destination root are
// rejected at parse time rather than normalized.
func validRelPath(p string) bool {
	if p == "" || path.IsAbs(p) {
		return false
	}
	for _, seg := range strings.Split(p, "/") {
		if seg == ".." {
			return false
		}
	}
	return true
}
