package runner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Shanu-Kumawat/rpi-object-detection/internal/profile"
)

func TestRun_MirrorsOutputAndCaptures(t *testing.T) {
	logDir := t.TempDir()
	var out bytes.Buffer
	r := New("sh", []string{"-c", "echo navigation-online"}, "", logDir)
	r.Stdout = &out

	code, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "navigation-online") {
		t.Fatalf("stdout mirror missing output: %q", out.String())
	}

	entries, err := os.ReadDir(logDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d capture logs, want 1", len(entries))
	}
	data, err := os.ReadFile(filepath.Join(logDir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "navigation-online") {
		t.Fatalf("capture log missing output: %q", string(data))
	}
}

func TestRun_PropagatesExitCode(t *testing.T) {
	var out bytes.Buffer
	r := New("sh", []string{"-c", "exit 3"}, "", t.TempDir())
	r.Stdout = &out

	code, err := r.Run(context.Background())
	if err == nil {
		t.Fatal("Run returned nil error for failing program")
	}
	if code != 3 {
		t.Fatalf("exit code = %d, want 3", code)
	}
}

func TestRun_AppendsHeadlessFlag(t *testing.T) {
	var out bytes.Buffer
	r := New("sh", []string{"-c", `echo "$1"`, "navprog"}, "--no-video", t.TempDir())
	r.Stdout = &out

	// The headless flag is appended last; the script echoes it back as $1.
	if _, err := r.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "--no-video") {
		t.Fatalf("headless flag not appended, output: %q", out.String())
	}
}

func TestGuard_RestoresAfterFailedRun(t *testing.T) {
	dir := t.TempDir()
	paths := profile.NewPaths(dir)
	sw := profile.NewSwitcher(paths)

	rpiContent := "SKIP_FRAMES = 3\n"
	desktopContent := "SKIP_FRAMES = 1\n"
	if err := os.WriteFile(paths.RPi(), []byte(rpiContent), 0o644); err != nil {
		t.Fatalf("write rpi profile: %v", err)
	}
	if err := os.WriteFile(paths.Active(), []byte(desktopContent), 0o644); err != nil {
		t.Fatalf("write active config: %v", err)
	}

	guard := NewGuard(sw)
	if err := guard.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if got, _ := os.ReadFile(paths.Active()); string(got) != rpiContent {
		t.Fatalf("active after acquire = %q, want rpi content", got)
	}

	// Child failure still releases the guard.
	r := New("sh", []string{"-c", "exit 1"}, "", t.TempDir())
	r.Stdout = &bytes.Buffer{}
	_, runErr := r.Run(context.Background())
	guard.Release()

	if runErr == nil {
		t.Fatal("expected run error")
	}
	if got, _ := os.ReadFile(paths.Active()); string(got) != desktopContent {
		t.Fatalf("active after release = %q, want restored desktop content", got)
	}
}

func TestGuard_MissingRPiProfileFailsAcquire(t *testing.T) {
	sw := profile.NewSwitcher(profile.NewPaths(t.TempDir()))
	guard := NewGuard(sw)
	if err := guard.Acquire(); err == nil {
		t.Fatal("Acquire succeeded without an rpi profile")
	}
	// Release after failed acquire is a no-op.
	guard.Release()
}

func TestGuard_ReleaseWithoutBackupKeepsRPi(t *testing.T) {
	dir := t.TempDir()
	paths := profile.NewPaths(dir)
	sw := profile.NewSwitcher(paths)

	rpiContent := "SKIP_FRAMES = 3\n"
	if err := os.WriteFile(paths.RPi(), []byte(rpiContent), 0o644); err != nil {
		t.Fatalf("write rpi profile: %v", err)
	}

	guard := NewGuard(sw)
	if err := guard.Acquire(); err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	guard.Release()

	// Nothing existed before the run, so the rpi profile stays active.
	if got, _ := os.ReadFile(paths.Active()); string(got) != rpiContent {
		t.Fatalf("active after release = %q, want rpi content", got)
	}
}
