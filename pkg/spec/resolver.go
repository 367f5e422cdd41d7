package spec

import (
	stderrors "errors"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/imgforge/bootstage/pkg/errors"
	"github.com/imgforge/bootstage/pkg/logging"
	"github.com/imgforge/bootstage/pkg/types"
)

// Resolve expands a raw specification against the artifact root into an
// ordered list of copy pairs. A nil rawSpec means the feature was not
// requested and yields a Disabled resolution.
//
// Resolution is read-only: the only I/O performed is directory listing
// for glob expansion.
func Resolve(fsys types.FS, artifactRoot string, rawSpec *string) (Resolution, error) {
	logger := logging.GetLogger("spec.resolver")

	if rawSpec == nil {
		logger.Debug().Msg("No boot file specification, resolution disabled")
		return Disabled(), nil
	}

	entries, err := ParseEntries(*rawSpec)
	if err != nil {
		return Resolution{}, err
	}
	if len(entries) == 0 {
		logger.Debug().Msg("Specification empty after splitting")
		return Resolved(nil), nil
	}

	var pairs []types.Pair
	for _, entry := range entries {
		matches, err := expandGlob(fsys, artifactRoot, entry.Pattern)
		if err != nil {
			return Resolution{}, err
		}

		logger.Debug().
			Str("pattern", entry.Pattern).
			Str("dest", entry.Dest).
			Int("matches", len(matches)).
			Msg("Expanded entry")

		switch {
		case !entry.HasDest():
			// Keep the artifact-relative layout under the destination root.
			for _, m := range matches {
				pairs = append(pairs, types.Pair{Source: m, Dest: m})
			}

		case strings.HasSuffix(entry.Dest, "/"):
			for _, m := range matches {
				pairs = append(pairs, types.Pair{
					Source: m,
					Dest:   path.Join(entry.Dest, path.Base(m)),
				})
			}

		default:
			// An exact target filename can only rename a single file.
			if len(matches) > 1 {
				return Resolution{}, errors.Newf(errors.ErrAmbiguousRename,
					"pattern %q matches %d files, cannot rename all to %q",
					entry.Pattern, len(matches), entry.Dest).
					WithDetail("pattern", entry.Pattern).
					WithDetail("matches", matches)
			}
			if len(matches) == 1 {
				pairs = append(pairs, types.Pair{Source: matches[0], Dest: entry.Dest})
			}
		}
	}

	if len(pairs) == 0 {
		logger.Debug().Int("entries", len(entries)).Msg("No entry matched any file")
		return NoMatches(), nil
	}

	logger.Debug().Int("pairs", len(pairs)).Msg("Specification resolved")
	return Resolved(pairs), nil
}

// expandGlob expands a slash-separated glob pattern against root and
// returns the matching regular files as sorted root-relative paths.
//
// Each path segment is matched with shell-glob semantics (*, ?, [...]);
// there is no recursive **. Like traditional globbing, a wildcard does
// not match names starting with a dot unless the segment itself does.
// Symlinks are followed: a link to a regular file counts as a match,
// anything else never does.
func expandGlob(fsys types.FS, root, pattern string) ([]string, error) {
	segments := strings.Split(pattern, "/")

	// Relative directories still in play; "" is the root itself.
	dirs := []string{""}
	for _, seg := range segments[:len(segments)-1] {
		var next []string
		for _, dir := range dirs {
			names, err := matchSegment(fsys, root, dir, seg, pattern)
			if err != nil {
				return nil, err
			}
			for _, name := range names {
				sub := path.Join(dir, name)
				info, err := fsys.Stat(filepath.Join(root, filepath.FromSlash(sub)))
				if err == nil && info.IsDir() {
					next = append(next, sub)
				}
			}
		}
		dirs = next
	}

	leaf := segments[len(segments)-1]
	var matches []string
	for _, dir := range dirs {
		names, err := matchSegment(fsys, root, dir, leaf, pattern)
		if err != nil {
			return nil, err
		}
		for _, name := range names {
			rel := path.Join(dir, name)
			info, err := fsys.Stat(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				// Dangling symlink or a race with the build; not a match.
				continue
			}
			if info.Mode().IsRegular() {
				matches = append(matches, rel)
			}
		}
	}

	sort.Strings(matches)
	return matches, nil
}

// matchSegment lists one directory under root and returns the entry
// names matching a single pattern segment.
func matchSegment(fsys types.FS, root, dir, seg, pattern string) ([]string, error) {
	entries, err := fsys.ReadDir(filepath.Join(root, filepath.FromSlash(dir)))
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess,
			"failed to list %q while expanding %q", dir, pattern)
	}

	hideDotted := !strings.HasPrefix(seg, ".")
	var names []string
	for _, entry := range entries {
		name := entry.Name()
		if hideDotted && strings.HasPrefix(name, ".") {
			continue
		}
		ok, err := filepath.Match(seg, name)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrSpecEntryInvalid,
				"invalid glob pattern %q", pattern)
		}
		if ok {
			names = append(names, name)
		}
	}
	return names, nil
}
