package adapter

import (
	"context"
	"strings"
)

// Searcher locates executables by name, returning every candidate in the
// order the operating system reports them. The list may be empty; deciding
// what an empty list means is the caller's job.
type Searcher interface {
	Search(ctx context.Context, name string) ([]string, error)
}

// SplitSearchOutput turns the raw multi-line output of a "where"-style
// lookup into candidate paths. Carriage returns are stripped and empty
// lines dropped; the line order is preserved.
func SplitSearchOutput(raw string) []string {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), "\r", "")
	if cleaned == "" {
		return nil
	}

	lines := strings.Split(cleaned, "\n")
	candidates := make([]string, 0, len(lines))

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			candidates = append(candidates, line)
		}
	}

	return candidates
}
