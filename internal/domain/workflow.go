package domain

import (
	"context"
	"fmt"
	"log/slog"

	"here.dev/pkg/here/internal/adapter"
	"here.dev/pkg/here/internal/controller"
	m "here.dev/pkg/here/internal/model"
)

// Workflow drives one full invocation: resolve, transform, copy, print and
// optionally schedule the directory change.
type Workflow interface {
	Run(ctx context.Context, opts m.Options) error
}

type workflow struct {
	resolver    Resolver
	transformer Transformer
	clipboard   adapter.ClipboardAdapter
	keystrokes  adapter.KeystrokeEmitter
	ui          controller.UI
}

// NewWorkflow wires the pipeline stages into a Workflow.
func NewWorkflow(
	resolver Resolver,
	transformer Transformer,
	clipboard adapter.ClipboardAdapter,
	keystrokes adapter.KeystrokeEmitter,
	ui controller.UI,
) Workflow {
	return &workflow{
		resolver:    resolver,
		transformer: transformer,
		clipboard:   clipboard,
		keystrokes:  keystrokes,
		ui:          ui,
	}
}

// Run executes the pipeline for one invocation. Fatal errors abort before
// anything is printed or copied; warnings are surfaced and execution
// continues.
func (w *workflow) Run(ctx context.Context, opts m.Options) error {
	base, err := w.resolver.Resolve(ctx, opts)
	if err != nil {
		return err
	}

	final, warnings := w.transformer.Apply(base, opts)
	slog.Debug("path resolved", "base", string(base), "final", string(final))

	for _, warning := range warnings {
		w.ui.Warn(warning)
	}

	if !opts.NoCopy {
		if err := w.clipboard.Write(string(final)); err != nil {
			w.ui.Warn(m.Warning(fmt.Sprintf("copy to clipboard failed: %v", err)))
		}
	}

	w.ui.ShowResult(string(final), !opts.NoColor)

	if opts.ChangeDirectory {
		if err := w.keystrokes.EmitChangeDirectory(final); err != nil {
			w.ui.Warn(m.Warning(fmt.Sprintf("change directory failed: %v", err)))
		}
	}

	return nil
}
