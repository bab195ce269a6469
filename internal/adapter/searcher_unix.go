//go:build !windows

package adapter

import (
	"context"
	"os"
	"path/filepath"
)

// PathSearcher scans the PATH environment variable in order, collecting
// every executable file matching the requested name. It is the `which -a`
// equivalent of the `where` builtin used on Windows.
type PathSearcher struct{}

// NewPlatformSearcher returns the Searcher for the build platform.
func NewPlatformSearcher() Searcher {
	return &PathSearcher{}
}

// Search walks every PATH entry and returns the matching executables in
// PATH order. Duplicate entries stay duplicated, matching `which -a`.
func (s *PathSearcher) Search(ctx context.Context, name string) ([]string, error) {
	var candidates []string

	for _, dir := range filepath.SplitList(os.Getenv("PATH")) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if dir == "" {
			// An empty PATH entry means the current directory, per POSIX.
			dir = "."
		}

		candidate := filepath.Join(dir, name)

		info, err := os.Stat(candidate)
		if err != nil || info.IsDir() {
			continue
		}

		if info.Mode().Perm()&0o111 == 0 {
			continue
		}

		candidates = append(candidates, candidate)
	}

	return candidates, nil
}
