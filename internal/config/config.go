package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvOutDir    = "LAUNCHERICONS_OUT"
	EnvDensities = "LAUNCHERICONS_DENSITIES"
	EnvMkdir     = "LAUNCHERICONS_MKDIR"
	EnvStdioLog  = "LAUNCHERICONS_STDIO_LOG"

	// DefaultOutDir is the resource root of the Android project this tool ships with.
	DefaultOutDir = "android-app/app/src/main/res"
)

// Config contains the settings for one generation run. Flags override these.
type Config struct {
	OutDir    string
	Densities string // comma separated; empty means all
	Mkdir     bool
	StdioLog  string
}

func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{
		OutDir:    os.Getenv(EnvOutDir),
		Densities: os.Getenv(EnvDensities),
		StdioLog:  os.Getenv(EnvStdioLog),
	}
	if cfg.OutDir == "" {
		cfg.OutDir = DefaultOutDir
	}

	if raw := os.Getenv(EnvMkdir); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvMkdir, raw, err)
		}
		cfg.Mkdir = parsed
	}

	return cfg, nil
}
