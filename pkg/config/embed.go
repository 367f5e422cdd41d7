package config

import (
	_ "embed"
)

//go:embed defaults.toml
var defaultConfig []byte
