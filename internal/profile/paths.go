package profile

import "path/filepath"

// File names inside the profile storage directory. The navigation
// program imports config.py directly, so the active file keeps that name.
const (
	ActiveFileName = "config.py"
	BackupFileName = "config_original.py"
	RPiFileName    = "config_rpi.py"
)

// Paths resolves the profile files relative to a storage directory.
// Passing the directory explicitly keeps every operation testable against
// an isolated temp dir instead of an ambient project-root file.
type Paths struct {
	dir string
}

func NewPaths(dir string) Paths {
	return Paths{dir: dir}
}

// Dir returns the storage directory itself.
func (p Paths) Dir() string {
	return p.dir
}

// Active returns the path of the configuration the navigation program reads.
func (p Paths) Active() string {
	return filepath.Join(p.dir, ActiveFileName)
}

// Backup returns the path of the one-time pre-switch snapshot.
func (p Paths) Backup() string {
	return filepath.Join(p.dir, BackupFileName)
}

// RPi returns the path of the Raspberry Pi profile.
func (p Paths) RPi() string {
	return filepath.Join(p.dir, RPiFileName)
}
