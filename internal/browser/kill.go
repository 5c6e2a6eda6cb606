package browser

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shirou/gopsutil/v4/process"
)

// killProcessTree kills the browser process and all of its children. Chrome
// spawns renderer and GPU helpers that a context cancel can leave orphaned.
func killProcessTree(pid int, log zerolog.Logger) error {
	exists, err := process.PidExists(int32(pid))
	if err != nil {
		return fmt.Errorf("failed to check process %d: %w", pid, err)
	}
	if !exists {
		return nil
	}

	proc, err := process.NewProcess(int32(pid))
	if err != nil {
		return fmt.Errorf("failed to open process %d: %w", pid, err)
	}

	children, err := proc.Children()
	if err == nil {
		for _, child := range children {
			if killErr := child.Kill(); killErr != nil {
				log.Debug().Int32("pid", child.Pid).Err(killErr).Msg("failed to kill child process")
			}
		}
	}

	if err := proc.Kill(); err != nil {
		if running, _ := proc.IsRunning(); running {
			return fmt.Errorf("failed to kill process %d: %w", pid, err)
		}
	}
	return nil
}
