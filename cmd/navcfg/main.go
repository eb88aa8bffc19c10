package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Shanu-Kumawat/rpi-object-detection/internal/logger"
)

var log = logger.Entry()

func main() {
	logger.Configure()
	if logFile, _, err := logger.SetupFile(logger.DefaultLogPath); err != nil {
		log.Warnf("failed to initialize log file: %v", err)
	} else {
		defer logFile.Close()
	}

	root, rest, err := parseRootArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("parse args: %v", err)
	}
	if len(rest) == 0 {
		printUsage(os.Stderr)
		os.Exit(2)
	}

	switch rest[0] {
	case "switch":
		switchMain(root, rest[1:])
	case "status":
		statusMain(root, rest[1:])
	case "run":
		runMain(root, rest[1:])
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", rest[0])
		printUsage(os.Stderr)
		os.Exit(2)
	}
}

func printUsage(out io.Writer) {
	fmt.Fprint(out, `navcfg manages the navigation system's configuration profiles.

Usage:
  navcfg switch <desktop|rpi|status>   switch the active configuration
  navcfg status                        show a subset of active settings
  navcfg run                           run the navigation program headless
                                       under the rpi profile, restoring the
                                       previous configuration afterwards

Flags (per command):
  --config PATH   tool config file (default ~/.navcfg/config.toml)
  --dir PATH      profile storage directory override

Root flags:
  -c key=value    override a tool config value (repeatable)
`)
}
