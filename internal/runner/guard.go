package runner

import (
	"fmt"

	"github.com/Shanu-Kumawat/rpi-object-detection/internal/logger"
	"github.com/Shanu-Kumawat/rpi-object-detection/internal/profile"
)

// Guard scopes the rpi profile over a run of the external navigation
// program. Acquire installs the rpi profile (taking the one-time backup if
// needed); Release restores the backup unconditionally. Release is safe to
// call exactly once per successful Acquire and must run on every exit path.
type Guard struct {
	switcher *profile.Switcher
	log      *logger.LogEntry
	acquired bool
}

func NewGuard(sw *profile.Switcher) *Guard {
	return &Guard{switcher: sw, log: logger.Named("runner")}
}

// Acquire switches the active configuration to the rpi profile.
func (g *Guard) Acquire() error {
	if g.acquired {
		return fmt.Errorf("profile guard already acquired")
	}
	res, err := g.switcher.SwitchRPi()
	if err != nil {
		return err
	}
	g.acquired = true
	g.log.WithField("backup", res.BackedUp).Info("rpi profile installed for run")
	return nil
}

// Release restores the pre-run configuration. It never fails the caller;
// restore problems are logged because the external program's own exit
// status is what the process should report.
func (g *Guard) Release() {
	if !g.acquired {
		return
	}
	g.acquired = false
	if !g.switcher.HasBackup() {
		// First-ever run on a fresh checkout: there was no active
		// configuration to snapshot, so there is nothing to restore.
		g.log.Warn("no backup to restore; leaving rpi profile active")
		return
	}
	if err := g.switcher.Restore(); err != nil {
		g.log.Warnf("failed to restore configuration: %v", err)
		return
	}
	g.log.Info("restored previous configuration")
}
