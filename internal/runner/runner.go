package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/creack/pty"
	"github.com/google/uuid"

	"github.com/Shanu-Kumawat/rpi-object-detection/internal/logger"
)

// Runner launches the external navigation program in headless mode and
// blocks until it exits. Output is mirrored to stdout and captured into a
// per-run log file so headless sessions stay inspectable afterwards.
type Runner struct {
	Program      string
	Args         []string
	HeadlessFlag string
	LogDir       string

	// Stdout overrides the mirror target; defaults to os.Stdout.
	Stdout io.Writer

	log *logger.LogEntry
}

func New(program string, args []string, headlessFlag, logDir string) *Runner {
	return &Runner{
		Program:      program,
		Args:         args,
		HeadlessFlag: headlessFlag,
		LogDir:       logDir,
		log:          logger.Named("runner"),
	}
}

// Run executes the program and returns its exit code. Context cancellation
// (interrupt, SIGTERM) kills the child; the returned code is then -1.
func (r *Runner) Run(ctx context.Context) (int, error) {
	if r.Program == "" {
		return -1, fmt.Errorf("empty program")
	}
	argv := append([]string{}, r.Args...)
	if r.HeadlessFlag != "" {
		argv = append(argv, r.HeadlessFlag)
	}
	cmd := exec.CommandContext(ctx, r.Program, argv...)

	out := r.Stdout
	if out == nil {
		out = os.Stdout
	}
	capture, capturePath, err := r.openCapture()
	if err != nil {
		r.logEntry().Warnf("run capture disabled: %v", err)
	} else {
		defer capture.Close()
		out = io.MultiWriter(out, capture)
		r.logEntry().WithField("capture", capturePath).Info("starting navigation program")
	}

	ptmx, err := pty.Start(cmd)
	if err != nil {
		// Fall back to plain pipes when no pty is available (CI, systemd).
		return r.runPlain(cmd, out)
	}
	defer ptmx.Close()

	done := make(chan struct{})
	go func() {
		_, _ = io.Copy(out, ptmx)
		close(done)
	}()

	waitErr := cmd.Wait()
	ptmx.Close()
	<-done
	if waitErr != nil {
		return exitCode(waitErr), fmt.Errorf("navigation program: %w", waitErr)
	}
	return 0, nil
}

func (r *Runner) runPlain(cmd *exec.Cmd, out io.Writer) (int, error) {
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return exitCode(err), fmt.Errorf("navigation program: %w", err)
	}
	return 0, nil
}

func (r *Runner) openCapture() (*os.File, string, error) {
	dir := r.LogDir
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", err
	}
	path := filepath.Join(dir, "run-"+uuid.NewString()+".log")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, "", err
	}
	return f, path, nil
}

func (r *Runner) logEntry() *logger.LogEntry {
	if r.log == nil {
		r.log = logger.Named("runner")
	}
	return r.log
}

func exitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
