// Package domain implements the resolve/transform pipeline behind the here
// CLI.
package domain

import (
	"context"
	"fmt"
	"path/filepath"

	"here.dev/pkg/here/internal/adapter"
	"here.dev/pkg/here/internal/controller"
	m "here.dev/pkg/here/internal/model"
)

// Resolver computes the base path of a run: the working directory, a segment
// joined onto it, or the location of an executable found via search.
type Resolver struct {
	fs       adapter.PathFSAdapter
	searcher adapter.Searcher
	ui       controller.UI
}

// NewResolver constructs a Resolver from its collaborators.
func NewResolver(fs adapter.PathFSAdapter, searcher adapter.Searcher, ui controller.UI) Resolver {
	return Resolver{fs: fs, searcher: searcher, ui: ui}
}

// Resolve produces the base path for opts, cleaned of redundant separators
// and dot components. Search failures and cancelled selections are fatal;
// everything else falls back to the working directory plus the optional
// segment.
func (r Resolver) Resolve(ctx context.Context, opts m.Options) (m.Path, error) {
	path, err := r.resolveBase(ctx, opts)
	if err != nil {
		return "", err
	}

	return m.Path(filepath.Clean(string(path))), nil
}

func (r Resolver) resolveBase(ctx context.Context, opts m.Options) (m.Path, error) {
	if opts.WhereSearch {
		return r.search(ctx, opts)
	}

	if filepath.IsAbs(opts.Target) {
		// An absolute segment replaces the base, matching platform join
		// semantics. `here /etc` resolves to /etc, not <wd>/etc.
		return m.Path(opts.Target), nil
	}

	wd, err := r.fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("working directory: %w", err)
	}

	if opts.Target == "" {
		return wd, nil
	}

	return r.fs.Join(string(wd), opts.Target), nil
}

func (r Resolver) search(ctx context.Context, opts m.Options) (m.Path, error) {
	candidates, err := r.searcher.Search(ctx, opts.Target)
	if err != nil {
		return "", fmt.Errorf("search for %q: %w", opts.Target, err)
	}

	switch {
	case len(candidates) == 0:
		return "", fmt.Errorf("%q: %w", opts.Target, m.ErrNotFound)
	case len(candidates) == 1 || opts.SelectFirst:
		return m.Path(candidates[0]), nil
	}

	choice, err := r.ui.SelectPath(ctx, candidates)
	if err != nil {
		return "", err
	}

	return m.Path(choice), nil
}
