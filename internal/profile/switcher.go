package profile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/Shanu-Kumawat/rpi-object-detection/internal/logger"
)

// Recognized keys reported by Status, matched per line in file order.
var statusKeys = []string{
	"CAMERA_WIDTH",
	"CAMERA_HEIGHT",
	"YOLO_INFERENCE_SIZE",
	"SKIP_FRAMES",
	"DISPLAY_ENABLED",
}

const maxStatusLines = 5

// Result describes a completed switch.
type Result struct {
	Profile        string
	BackedUp       bool
	CreatedDefault bool
	Summary        []string
}

// StatusReport carries the matched lines of the active configuration.
type StatusReport struct {
	Path  string
	Lines []string
}

// Switcher performs profile switches against a storage directory.
type Switcher struct {
	paths Paths
	log   *logger.LogEntry
}

func NewSwitcher(paths Paths) *Switcher {
	return &Switcher{paths: paths, log: logger.Named("profile")}
}

// Paths returns the resolved profile paths.
func (s *Switcher) Paths() Paths {
	return s.paths
}

// SwitchRPi installs the Raspberry Pi profile as the active configuration,
// snapshotting the current active file first if no backup exists yet. When
// the rpi profile file is missing nothing is modified.
func (s *Switcher) SwitchRPi() (Result, error) {
	if !fileExists(s.paths.RPi()) {
		return Result{}, &MissingProfileError{Path: s.paths.RPi()}
	}

	backedUp, err := s.EnsureBackup()
	if err != nil {
		return Result{}, fmt.Errorf("create backup: %w", err)
	}

	if err := copyFile(s.paths.RPi(), s.paths.Active()); err != nil {
		return Result{}, fmt.Errorf("install rpi profile: %w", err)
	}
	s.log.WithField("backup", backedUp).Info("switched to rpi profile")

	return Result{
		Profile:  "rpi",
		BackedUp: backedUp,
		Summary: []string{
			"Resolution: 160x120",
			"Inference size: 192",
			"Frame skip: every 3rd frame",
			"Display: disabled",
			"Expected throughput: 2-5 FPS on RPi 3B+",
		},
	}, nil
}

// SwitchDesktop restores the backup as the active configuration. Without a
// backup it falls back to materializing the built-in desktop defaults,
// provided the rpi profile exists as evidence the storage directory is the
// right one. Otherwise it reports MissingProfileError without touching disk.
func (s *Switcher) SwitchDesktop() (Result, error) {
	if fileExists(s.paths.Backup()) {
		if err := s.Restore(); err != nil {
			return Result{}, err
		}
		return Result{
			Profile: "desktop",
			Summary: []string{
				"Resolution: 640x480 (full)",
				"Inference size: 256 (default)",
				"Frame skip: none",
				"Display: enabled",
			},
		}, nil
	}

	if fileExists(s.paths.RPi()) {
		if err := os.WriteFile(s.paths.Active(), []byte(DefaultDesktopConfig), 0o644); err != nil {
			return Result{}, fmt.Errorf("write default desktop config: %w", err)
		}
		s.log.Info("no backup found; created default desktop configuration")
		return Result{
			Profile:        "desktop",
			CreatedDefault: true,
			Summary: []string{
				"Resolution: 640x480 (full)",
				"Inference size: 256 (default)",
				"Frame skip: none",
				"Display: enabled",
			},
		}, nil
	}

	return Result{}, &MissingProfileError{Path: s.paths.RPi()}
}

// EnsureBackup snapshots the active configuration once. Subsequent calls
// never refresh an existing backup. Returns whether a snapshot was taken.
func (s *Switcher) EnsureBackup() (bool, error) {
	if fileExists(s.paths.Backup()) {
		return false, nil
	}
	if !fileExists(s.paths.Active()) {
		// Nothing to back up.
		return false, nil
	}
	if err := copyFile(s.paths.Active(), s.paths.Backup()); err != nil {
		return false, err
	}
	s.log.WithField("path", s.paths.Backup()).Info("backed up active configuration")
	return true, nil
}

// HasBackup reports whether a backup snapshot exists.
func (s *Switcher) HasBackup() bool {
	return fileExists(s.paths.Backup())
}

// Restore copies the backup over the active configuration.
func (s *Switcher) Restore() error {
	if !fileExists(s.paths.Backup()) {
		return &MissingProfileError{Path: s.paths.Backup()}
	}
	if err := copyFile(s.paths.Backup(), s.paths.Active()); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}
	s.log.Info("restored active configuration from backup")
	return nil
}

// Status reads the active configuration and returns the first lines that
// mention one of the recognized keys, capped at five. The file is opaque
// text; matching is per-line substring, not parsing.
func (s *Switcher) Status() (StatusReport, error) {
	f, err := os.Open(s.paths.Active())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return StatusReport{}, &MissingActiveError{Path: s.paths.Active()}
		}
		return StatusReport{}, err
	}
	defer f.Close()

	report := StatusReport{Path: s.paths.Active()}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() && len(report.Lines) < maxStatusLines {
		line := scanner.Text()
		for _, key := range statusKeys {
			if strings.Contains(line, key) {
				report.Lines = append(report.Lines, strings.TrimSpace(line))
				break
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return StatusReport{}, err
	}
	return report, nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
