package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/Shanu-Kumawat/rpi-object-detection/internal/profile"
	"github.com/Shanu-Kumawat/rpi-object-detection/internal/runner"
)

func runMain(root rootArgs, args []string) {
	code, err := runRun(root, args, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "run failed: %v\n", err)
	}
	if code < 0 {
		code = 1
	}
	os.Exit(code)
}

// runRun owns the whole run lifecycle so that the profile guard's deferred
// Release executes before the caller reaches os.Exit.
func runRun(root rootArgs, args []string, out io.Writer) (int, error) {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var cfgPath string
	var dir string
	fs.StringVar(&cfgPath, "config", "", "Path to tool config file (default ~/.navcfg/config.toml)")
	fs.StringVar(&dir, "dir", "", "Profile storage directory override")
	if err := fs.Parse(args); err != nil {
		return 2, err
	}

	cfg, err := loadToolConfig(root, cfgPath, dir)
	if err != nil {
		return 1, err
	}
	sw := profile.NewSwitcher(profile.NewPaths(cfg.ProfileDir))

	guard := runner.NewGuard(sw)
	if err := guard.Acquire(); err != nil {
		return 1, err
	}
	defer guard.Release()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Fprintln(out, "Starting navigation system (headless, rpi profile)...")
	r := runner.New(cfg.Program, cfg.Args, cfg.HeadlessFlag, cfg.LogDir)
	r.Stdout = out
	code, err := r.Run(ctx)
	if err != nil {
		return code, err
	}
	fmt.Fprintln(out, "Navigation system exited cleanly")
	return 0, nil
}
