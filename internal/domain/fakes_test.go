package domain

import (
	"context"
	"fmt"
	"path/filepath"

	m "here.dev/pkg/here/internal/model"
)

// fakeFS implements adapter.PathFSAdapter on in-memory maps so the pipeline
// can be exercised without touching the disk.
type fakeFS struct {
	wd    string
	wdErr error
	dirs  map[string]bool
	links map[string]string
}

func (f *fakeFS) Getwd() (m.Path, error) {
	return m.Path(f.wd), f.wdErr
}

func (f *fakeFS) Join(elem ...string) m.Path {
	return m.Path(filepath.Join(elem...))
}

func (f *fakeFS) Dir(path m.Path) m.Path {
	return m.Path(filepath.Dir(string(path)))
}

func (f *fakeFS) IsDir(path m.Path) bool {
	return f.dirs[string(path)]
}

func (f *fakeFS) IsSymlink(path m.Path) bool {
	_, ok := f.links[string(path)]
	return ok
}

func (f *fakeFS) Readlink(path m.Path) (m.Path, error) {
	target, ok := f.links[string(path)]
	if !ok {
		return "", fmt.Errorf("not a symlink: %s", path)
	}

	return m.Path(target), nil
}

type fakeSearcher struct {
	results []string
	err     error
	queries []string
}

func (f *fakeSearcher) Search(_ context.Context, name string) ([]string, error) {
	f.queries = append(f.queries, name)
	return f.results, f.err
}

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) Write(text string) error {
	if f.err != nil {
		return f.err
	}

	f.copied = append(f.copied, text)

	return nil
}

type fakeKeystrokes struct {
	emitted []m.Path
	err     error
}

func (f *fakeKeystrokes) EmitChangeDirectory(path m.Path) error {
	if f.err != nil {
		return f.err
	}

	f.emitted = append(f.emitted, path)

	return nil
}

type shownResult struct {
	path    string
	colored bool
}

type fakeUI struct {
	shown       []shownResult
	warnings    []m.Warning
	selection   string
	selectErr   error
	selectCalls [][]string
}

func (f *fakeUI) ShowResult(path string, colored bool) {
	f.shown = append(f.shown, shownResult{path: path, colored: colored})
}

func (f *fakeUI) Warn(warning m.Warning) {
	f.warnings = append(f.warnings, warning)
}

func (f *fakeUI) SelectPath(_ context.Context, candidates []string) (string, error) {
	f.selectCalls = append(f.selectCalls, candidates)

	if f.selectErr != nil {
		return "", f.selectErr
	}

	return f.selection, nil
}
