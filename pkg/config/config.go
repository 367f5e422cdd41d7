package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/imgforge/bootstage/pkg/errors"
)

// Config carries everything the resolver and installer need. It is
// passed around explicitly; nothing in bootstage reads configuration
// from ambient state.
type Config struct {
	// ArtifactDir is the directory containing build artifacts. It must
	// exist before installation; bootstage only reads from it.
	ArtifactDir string

	// DestDir is the root of the boot staging tree. It is created on
	// demand together with any subdirectories.
	DestDir string

	// BootFiles is the raw boot file specification. Nil means the
	// feature was not requested, which is distinct from an empty string
	// (requested, nothing to do).
	BootFiles *string
}

// Load builds a Config by merging, in increasing precedence: embedded
// defaults, an optional bootstage.toml in workDir, and BOOTSTAGE_*
// environment variables. The classic IMAGE_BOOT_FILES pipeline variable
// is honored as a fallback for boot_files when no other source sets it.
func Load(workDir string) (*Config, error) {
	k := koanf.New(".")

	// 1. Load defaults
	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Load bootstage.toml if it exists
	for _, filename := range []string{".bootstage.toml", "bootstage.toml"} {
		path := filepath.Join(workDir, filename)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad,
					"failed to load config from %s", path)
			}
			break
		}
	}

	// 3. Environment overrides: BOOTSTAGE_DEST_DIR -> dest_dir, etc.
	if err := k.Load(env.Provider("BOOTSTAGE_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "BOOTSTAGE_"))
	}), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	cfg := &Config{
		ArtifactDir: k.String("artifact_dir"),
		DestDir:     k.String("dest_dir"),
	}

	if k.Exists("boot_files") {
		s := k.String("boot_files")
		cfg.BootFiles = &s
	} else if v, ok := os.LookupEnv("IMAGE_BOOT_FILES"); ok {
		cfg.BootFiles = &v
	}

	return cfg, nil
}

// Validate checks that the directories required for installation are
// set. The boot file specification itself may be absent.
func (c *Config) Validate() error {
	if c.ArtifactDir == "" {
		return errors.New(errors.ErrConfigValid, "artifact_dir is not set")
	}
	if c.DestDir == "" {
		return errors.New(errors.ErrConfigValid, "dest_dir is not set")
	}
	return nil
}
