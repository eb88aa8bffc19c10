package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Shanu-Kumawat/rpi-object-detection/internal/profile"
)

func switchMain(root rootArgs, args []string) {
	if err := runSwitch(root, args, os.Stdout); err != nil {
		log.Fatalf("switch failed: %v", err)
	}
}

func runSwitch(root rootArgs, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("switch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfgPath string
	var dir string
	fs.StringVar(&cfgPath, "config", "", "Path to tool config file (default ~/.navcfg/config.toml)")
	fs.StringVar(&dir, "dir", "", "Profile storage directory override")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 1 {
		return errors.New("usage: navcfg switch <desktop|rpi|status>")
	}

	cfg, err := loadToolConfig(root, cfgPath, dir)
	if err != nil {
		return err
	}
	sw := profile.NewSwitcher(profile.NewPaths(cfg.ProfileDir))

	switch rest[0] {
	case "rpi":
		res, err := sw.SwitchRPi()
		if err != nil {
			return err
		}
		if res.BackedUp {
			fmt.Fprintf(out, "Backed up current configuration to %s\n", sw.Paths().Backup())
		}
		fmt.Fprintln(out, "Switched to Raspberry Pi profile:")
		printSummary(out, res.Summary)
		return nil
	case "desktop":
		res, err := sw.SwitchDesktop()
		var missing *profile.MissingProfileError
		if errors.As(err, &missing) {
			// Nothing to restore and no evidence this is the profile
			// directory. Report it instead of staying silent, but keep
			// the historical zero exit status.
			fmt.Fprintf(out, "Nothing to switch: no backup and no rpi profile in %s\n", cfg.ProfileDir)
			return nil
		}
		if err != nil {
			return err
		}
		if res.CreatedDefault {
			fmt.Fprintln(out, "No backup found; created default desktop configuration:")
		} else {
			fmt.Fprintln(out, "Restored desktop configuration from backup:")
		}
		printSummary(out, res.Summary)
		return nil
	case "status":
		return printStatus(sw, out)
	default:
		return fmt.Errorf("unknown target %q (expected desktop, rpi or status)", rest[0])
	}
}

func printSummary(out io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintf(out, "  %s\n", line)
	}
}
