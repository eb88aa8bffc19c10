package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config is the only persisted config file schema for the tool itself.
// The navigation profiles it manages are opaque files, not part of this.
type Config struct {
	// ProfileDir holds config.py, config_original.py and config_rpi.py.
	ProfileDir string `toml:"profile_dir"`
	// Program and Args form the external navigation command.
	Program string   `toml:"program"`
	Args    []string `toml:"args"`
	// HeadlessFlag is appended by the run wrapper to disable live video.
	HeadlessFlag string `toml:"headless_flag"`
	// LogDir receives navcfg.log and per-run capture logs.
	LogDir string `toml:"log_dir"`
	Source string `toml:"-"`
}

func Default() Config {
	return Config{
		ProfileDir:   "src/navigation",
		Program:      "python3",
		Args:         []string{"src/navigation/navigation_system.py"},
		HeadlessFlag: "--no-video",
		LogDir:       "logs",
	}
}

func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".navcfg", "config.toml")
}

func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath()
	}
	if path == "" {
		return cfg, errors.New("config path is empty and $HOME is not set")
	}
	cfg.Source = path

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return cfg, err
	}

	if err := toml.Unmarshal(content, &cfg); err != nil {
		return cfg, err
	}
	return applyEnv(cfg), nil
}

func applyEnv(cfg Config) Config {
	if env := strings.TrimSpace(os.Getenv("NAVCFG_PROFILE_DIR")); env != "" {
		cfg.ProfileDir = env
	}
	if env := strings.TrimSpace(os.Getenv("NAVCFG_PROGRAM")); env != "" {
		cfg.Program = env
	}
	return cfg
}
