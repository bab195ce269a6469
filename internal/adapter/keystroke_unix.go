//go:build !windows

package adapter

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	m "here.dev/pkg/here/internal/model"
)

// TermInjector pushes bytes into the controlling terminal's input queue with
// the TIOCSTI ioctl. The queued bytes are read back by the shell after this
// process exits. Kernels built with legacy TIOCSTI support disabled reject
// the ioctl; that surfaces as a warning, not a failure.
type TermInjector struct{}

// NewPlatformKeystrokeEmitter returns the KeystrokeEmitter for the build
// platform.
func NewPlatformKeystrokeEmitter() KeystrokeEmitter {
	return &TermInjector{}
}

// EmitChangeDirectory queues `cd <path>` plus a newline on the controlling
// terminal.
func (e *TermInjector) EmitChangeDirectory(path m.Path) error {
	tty, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0)
	if err != nil {
		return fmt.Errorf("open controlling terminal: %w", err)
	}

	defer func() {
		_ = tty.Close()
	}()

	line := "cd " + string(path) + "\n"
	for i := 0; i < len(line); i++ {
		if err := unix.IoctlSetPointerInt(int(tty.Fd()), unix.TIOCSTI, int(line[i])); err != nil {
			return fmt.Errorf("queue keystroke: %w", err)
		}
	}

	return nil
}
