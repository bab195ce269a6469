//go:build windows

package adapter

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// WhereSearcher shells out to the `where` builtin to locate executables on
// PATH. The lookup is attempted exactly once, synchronously.
type WhereSearcher struct{}

// NewPlatformSearcher returns the Searcher for the build platform.
func NewPlatformSearcher() Searcher {
	return &WhereSearcher{}
}

// Search invokes `cmd /C where <name>` and splits its stdout into candidates.
// `where` exits non-zero when nothing matches; that case surfaces as an empty
// candidate list, not an error.
func (s *WhereSearcher) Search(ctx context.Context, name string) ([]string, error) {
	cmd := exec.CommandContext(ctx, "cmd", "/C", "where "+name)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, err
		}
	}

	return SplitSearchOutput(stdout.String()), nil
}
