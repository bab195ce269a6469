// Package controller provides the user-facing surfaces of the here CLI.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"

	m "here.dev/pkg/here/internal/model"
)

// UI is the boundary through which the pipeline talks to the user.
// Implementations decide how results, warnings and choice prompts look.
type UI interface {
	// ShowResult prints the final path, styled when colored is set.
	ShowResult(path string, colored bool)

	// Warn surfaces a non-fatal condition. Warnings never change the exit
	// code.
	Warn(warning m.Warning)

	// SelectPath blocks until the user picks one of the candidates.
	// Cancellation surfaces as model.ErrCancelled.
	SelectPath(ctx context.Context, candidates []string) (string, error)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
