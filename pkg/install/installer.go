package install

import (
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/imgforge/bootstage/pkg/errors"
	"github.com/imgforge/bootstage/pkg/logging"
	"github.com/imgforge/bootstage/pkg/spec"
	"github.com/imgforge/bootstage/pkg/types"
)

// WarnFunc is the sink for non-fatal notices. The "no boot files
// matched" condition is surfaced here instead of failing the run.
type WarnFunc func(msg string)

// Report summarizes one installation run.
type Report struct {
	State        spec.State
	Installed    int
	Destinations []string
	Warning      string
}

// Installer copies resolved pairs into the destination root.
type Installer struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates an installer operating on the given filesystem.
func New(fsys types.FS) *Installer {
	return &Installer{
		fs:     fsys,
		logger: logging.GetLogger("install"),
	}
}

// Install copies every resolved pair from the artifact root into the
// destination root, creating intermediate directories as needed.
// Existing destination files are overwritten, so when several entries
// target the same destination the last one wins; entry order is
// deterministic, which makes that defined behavior rather than a race.
//
// The first filesystem failure aborts the run with a COPY_FAILED error
// carrying the offending pair. There is no rollback.
func (i *Installer) Install(res spec.Resolution, artifactRoot, destRoot string, warn WarnFunc) (Report, error) {
	switch res.State() {
	case spec.StateDisabled:
		i.logger.Debug().Msg("Boot file installation not requested")
		return Report{State: spec.StateDisabled}, nil

	case spec.StateNoMatches:
		const msg = "no boot files matched the specification"
		if warn != nil {
			warn(msg)
		} else {
			i.logger.Warn().Msg(msg)
		}
		return Report{State: spec.StateNoMatches, Warning: msg}, nil
	}

	report := Report{State: spec.StateResolved}
	for _, pair := range res.Pairs() {
		src := filepath.Join(artifactRoot, filepath.FromSlash(pair.Source))
		dst := filepath.Join(destRoot, filepath.FromSlash(pair.Dest))

		if err := i.fs.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return report, errors.Wrapf(err, errors.ErrCopyFailed,
				"failed to create directory for %q", pair.Dest).
				WithDetail("source", pair.Source).
				WithDetail("dest", pair.Dest)
		}

		data, err := i.fs.ReadFile(src)
		if err != nil {
			return report, errors.Wrapf(err, errors.ErrCopyFailed,
				"failed to read %q", pair.Source).
				WithDetail("source", pair.Source).
				WithDetail("dest", pair.Dest)
		}

		if err := i.fs.WriteFile(dst, data, 0644); err != nil {
			return report, errors.Wrapf(err, errors.ErrCopyFailed,
				"failed to write %q", pair.Dest).
				WithDetail("source", pair.Source).
				WithDetail("dest", pair.Dest)
		}

		i.logger.Debug().
			Str("source", pair.Source).
			Str("dest", pair.Dest).
			Int("bytes", len(data)).
			Msg("Installed boot file")

		report.Installed++
		report.Destinations = append(report.Destinations, pair.Dest)
	}

	i.logger.Info().Int("installed", report.Installed).Msg("Boot file installation complete")
	return report, nil
}
