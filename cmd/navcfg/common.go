package main

import (
	"strings"

	"github.com/Shanu-Kumawat/rpi-object-detection/internal/config"
)

func loadToolConfig(root rootArgs, cfgPath, dirOverride string) (config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return cfg, err
	}
	cfg = config.ApplyKVOverrides(cfg, prependOverrides(root.overrides, nil))
	if strings.TrimSpace(dirOverride) != "" {
		cfg.ProfileDir = dirOverride
	}
	return cfg, nil
}
