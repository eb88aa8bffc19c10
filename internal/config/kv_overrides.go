package config

import (
	"strings"
)

// ApplyKVOverrides applies free-form -c key=value overrides.
func ApplyKVOverrides(cfg Config, overrides []string) Config {
	if len(overrides) == 0 {
		return cfg
	}
	for _, raw := range overrides {
		parts := strings.SplitN(raw, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		switch key {
		case "profile_dir":
			cfg.ProfileDir = val
		case "program":
			cfg.Program = val
		case "headless_flag":
			cfg.HeadlessFlag = val
		case "log_dir":
			cfg.LogDir = val
		}
	}
	return cfg
}
