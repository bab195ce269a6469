package domain

import (
	"fmt"
	"strings"

	"here.dev/pkg/here/internal/adapter"
	m "here.dev/pkg/here/internal/model"
)

// transformStep rewrites the path and may surface a non-fatal warning.
type transformStep func(path m.Path) (m.Path, *m.Warning)

// Transformer applies the fixed transform sequence to a resolved path. The
// order is part of the contract regardless of flag order on the command
// line: folder extraction, symlink resolution, slash direction, backslash
// escaping, quote wrapping.
type Transformer struct {
	fs adapter.PathFSAdapter
}

// NewTransformer constructs a Transformer backed by fs.
func NewTransformer(fs adapter.PathFSAdapter) Transformer {
	return Transformer{fs: fs}
}

// Apply runs every step enabled by opts in order and collects the warnings
// the steps produced. Warnings never stop the pipeline.
func (t Transformer) Apply(path m.Path, opts m.Options) (m.Path, []m.Warning) {
	var warnings []m.Warning

	for _, step := range t.pipeline(opts) {
		next, warning := step(path)

		path = next
		if warning != nil {
			warnings = append(warnings, *warning)
		}
	}

	return path, warnings
}

func (t Transformer) pipeline(opts m.Options) []transformStep {
	var steps []transformStep

	if opts.FolderComponent {
		steps = append(steps, t.folderComponent)
	}

	if opts.ResolveSymlink {
		steps = append(steps, t.resolveSymlink)
	}

	switch opts.Slashes {
	case m.StylePosix:
		steps = append(steps, replaceSeparators(`\`, "/"))
	case m.StyleWindows:
		steps = append(steps, replaceSeparators("/", `\`))
	case m.StylePlatform:
		// Platform default, nothing to rewrite.
	}

	// Escaping runs after slash normalization so it operates on the final
	// separator choice; quoting runs last so the quotes are never escaped.
	if opts.EscapeBackslash {
		steps = append(steps, escapeBackslashes)
	}

	if opts.WrapQuote {
		steps = append(steps, wrapQuotes)
	}

	return steps
}

// folderComponent reduces a file path to its containing directory. Paths
// that already denote a directory pass through unchanged, which makes the
// step idempotent.
func (t Transformer) folderComponent(path m.Path) (m.Path, *m.Warning) {
	if t.fs.IsDir(path) {
		return path, nil
	}

	return t.fs.Dir(path), nil
}

// resolveSymlink swaps the path for the target it points to. A non-symlink
// passes through unchanged with a warning.
func (t Transformer) resolveSymlink(path m.Path) (m.Path, *m.Warning) {
	if !t.fs.IsSymlink(path) {
		warning := m.Warning(fmt.Sprintf("%s is not a symlink, path left unchanged", path))
		return path, &warning
	}

	target, err := t.fs.Readlink(path)
	if err != nil {
		warning := m.Warning(fmt.Sprintf("resolving symlink %s: %v", path, err))
		return path, &warning
	}

	return target, nil
}

func replaceSeparators(from, to string) transformStep {
	return func(path m.Path) (m.Path, *m.Warning) {
		return m.Path(strings.ReplaceAll(string(path), from, to)), nil
	}
}

func escapeBackslashes(path m.Path) (m.Path, *m.Warning) {
	return m.Path(strings.ReplaceAll(string(path), `\`, `\\`)), nil
}

func wrapQuotes(path m.Path) (m.Path, *m.Warning) {
	return `"` + path + `"`, nil
}
