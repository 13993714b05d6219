package server

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-ps"
)

// ErrAlreadyRunning is returned when another server process is found.
var ErrAlreadyRunning = errors.New("another alarm-server process is running")

// ensureSingleInstance fails when another process runs the same executable.
func ensureSingleInstance(executable string) error {
	processList, err := ps.Processes()
	if err != nil {
		return fmt.Errorf("list processes: %w", err)
	}

	thisProcessID := os.Getpid()

	for _, process := range processList {
		if process.Pid() == thisProcessID {
			continue
		}

		if process.Executable() == executable {
			return fmt.Errorf("%w: pid %d", ErrAlreadyRunning, process.Pid())
		}
	}

	return nil
}

// currentExecutable returns the file name of the running binary.
func currentExecutable() string {
	path, err := os.Executable()
	if err != nil {
		return filepath.Base(os.Args[0])
	}

	return filepath.Base(path)
}
