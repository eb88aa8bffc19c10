package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Shanu-Kumawat/rpi-object-detection/internal/profile"
)

func statusMain(root rootArgs, args []string) {
	if err := runStatus(root, args, os.Stdout); err != nil {
		log.Fatalf("status failed: %v", err)
	}
}

func runStatus(root rootArgs, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfgPath string
	var dir string
	fs.StringVar(&cfgPath, "config", "", "Path to tool config file (default ~/.navcfg/config.toml)")
	fs.StringVar(&dir, "dir", "", "Profile storage directory override")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadToolConfig(root, cfgPath, dir)
	if err != nil {
		return err
	}
	sw := profile.NewSwitcher(profile.NewPaths(cfg.ProfileDir))
	return printStatus(sw, out)
}

func printStatus(sw *profile.Switcher, out io.Writer) error {
	report, err := sw.Status()
	var missing *profile.MissingActiveError
	if errors.As(err, &missing) {
		fmt.Fprintf(out, "No active configuration at %s\n", missing.Path)
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Active configuration: %s\n", report.Path)
	if len(report.Lines) == 0 {
		fmt.Fprintln(out, "  (no recognized settings found)")
		return nil
	}
	for _, line := range report.Lines {
		fmt.Fprintf(out, "  %s\n", line)
	}
	return nil
}
