package cmd

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "here.dev/pkg/here/internal/model"
)

// fakeWorkflow captures the options the root command hands to the pipeline.
type fakeWorkflow struct {
	opts []m.Options
	err  error
}

func (f *fakeWorkflow) Run(_ context.Context, opts m.Options) error {
	f.opts = append(f.opts, opts)
	return f.err
}

// resetRootFlags clears the package-level flag state that executing a
// command mutates, so tests stay independent.
func resetRootFlags() {
	folderFlag = false
	fromWhereFlag = false
	changeDirectoryFlag = false
	escapeBackslashFlag = false
	wrapQuoteFlag = false
	resolveSymlinkFlag = false
	noCopyFlag = false
	noColorFlag = false
	posixFlag = false
	noPosixFlag = false
	selectFirstFlag = false
	completionsFlag = ""
	markdownFlag = false
}

// newTestRootCmd builds a fresh root command wired to buffers.
func newTestRootCmd() (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	resetRootFlags()

	cmd := newRootCmd()
	configureRootFlags(cmd)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	return cmd, out, errOut
}

// swapWorkflow installs a fake workflow for the duration of a test.
func swapWorkflow(t *testing.T) *fakeWorkflow {
	t.Helper()

	fake := &fakeWorkflow{}
	previous := workflow
	workflow = fake

	t.Cleanup(func() {
		workflow = previous
	})

	return fake
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "here [path segment | program name]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, rootLongDescription, cmd.Long)
	assert.NotEmpty(t, cmd.Version)
}

func TestInit(t *testing.T) {
	// Test that init() created all the necessary instances.
	assert.NotNil(t, ui)
	assert.NotNil(t, pathFS)
	assert.NotNil(t, searcher)
	assert.NotNil(t, systemClipboard)
	assert.NotNil(t, keystrokes)
	assert.NotNil(t, workflow)
}

func TestValidateOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    m.Options
		wantErr string
	}{
		{"zero options", m.Options{}, ""},
		{"segment without search", m.Options{Target: "project"}, ""},
		{"search with target", m.Options{Target: "myprog", WhereSearch: true}, ""},
		{"search without target", m.Options{WhereSearch: true}, "requires a program name"},
		{"select first without search", m.Options{SelectFirst: true}, "requires -w"},
		{
			"select first with search",
			m.Options{Target: "myprog", WhereSearch: true, SelectFirst: true},
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateOptions(tt.opts)

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSlashStyle(t *testing.T) {
	assert.Equal(t, m.StylePosix, slashStyle(true, false))
	assert.Equal(t, m.StyleWindows, slashStyle(false, true))
	assert.Equal(t, m.StylePlatform, slashStyle(false, false))
}

func TestRootCmd_BuildsOptionsFromFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want func(t *testing.T, opts m.Options)
	}{
		{
			name: "no flags",
			args: []string{},
			want: func(t *testing.T, opts m.Options) {
				assert.Empty(t, opts.Target)
				assert.False(t, opts.WrapQuote)
				assert.Equal(t, m.StylePlatform, opts.Slashes)
			},
		},
		{
			name: "positional segment",
			args: []string{"sub/dir"},
			want: func(t *testing.T, opts m.Options) {
				assert.Equal(t, "sub/dir", opts.Target)
			},
		},
		{
			name: "combined short flags",
			args: []string{"-feq"},
			want: func(t *testing.T, opts m.Options) {
				assert.True(t, opts.FolderComponent)
				assert.True(t, opts.EscapeBackslash)
				assert.True(t, opts.WrapQuote)
			},
		},
		{
			name: "search mode",
			args: []string{"-w", "--select-first", "myprog"},
			want: func(t *testing.T, opts m.Options) {
				assert.True(t, opts.WhereSearch)
				assert.True(t, opts.SelectFirst)
				assert.Equal(t, "myprog", opts.Target)
			},
		},
		{
			name: "posix style",
			args: []string{"--posix"},
			want: func(t *testing.T, opts m.Options) {
				assert.Equal(t, m.StylePosix, opts.Slashes)
			},
		},
		{
			name: "windows style",
			args: []string{"--no-posix"},
			want: func(t *testing.T, opts m.Options) {
				assert.Equal(t, m.StyleWindows, opts.Slashes)
			},
		},
		{
			name: "no copy and no color",
			args: []string{"-nc"},
			want: func(t *testing.T, opts m.Options) {
				assert.True(t, opts.NoCopy)
				assert.True(t, opts.NoColor)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := swapWorkflow(t)
			cmd, _, _ := newTestRootCmd()
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			require.Len(t, fake.opts, 1)
			tt.want(t, fake.opts[0])
		})
	}
}

func TestRootCmd_NoCopyFromEnvironment(t *testing.T) {
	t.Setenv("HERE_NO_COPY", "true")

	fake := swapWorkflow(t)
	cmd, _, _ := newTestRootCmd()
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	require.Len(t, fake.opts, 1)
	assert.True(t, fake.opts[0].NoCopy)
}

func TestRootCmd_SelectFirstFromEnvironment(t *testing.T) {
	t.Setenv("HERE_SELECT_FIRST", "true")

	t.Run("applies in search mode", func(t *testing.T) {
		fake := swapWorkflow(t)
		cmd, _, _ := newTestRootCmd()
		cmd.SetArgs([]string{"-w", "myprog"})

		require.NoError(t, cmd.Execute())
		require.Len(t, fake.opts, 1)
		assert.True(t, fake.opts[0].SelectFirst)
	})

	t.Run("inert outside search mode", func(t *testing.T) {
		fake := swapWorkflow(t)
		cmd, _, _ := newTestRootCmd()
		cmd.SetArgs([]string{})

		require.NoError(t, cmd.Execute())
		require.Len(t, fake.opts, 1)
		assert.False(t, fake.opts[0].SelectFirst)
	})

	t.Run("explicit flag still needs search mode", func(t *testing.T) {
		fake := swapWorkflow(t)
		cmd, _, _ := newTestRootCmd()
		cmd.SetArgs([]string{"--select-first"})

		require.Error(t, cmd.Execute())
		assert.Empty(t, fake.opts)
	})
}

func TestRootCmd_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"search without target", []string{"-w"}},
		{"select first without search", []string{"--select-first"}},
		{"posix conflicts with no-posix", []string{"--posix", "--no-posix"}},
		{"two positional arguments", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := swapWorkflow(t)
			cmd, _, _ := newTestRootCmd()
			cmd.SetArgs(tt.args)

			require.Error(t, cmd.Execute())
			assert.Empty(t, fake.opts, "the pipeline must not run on a usage error")
		})
	}
}

func TestRootCmd_GenerationModeConflicts(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"markdown with a flag", []string{"--markdown", "-q"}},
		{"markdown with a positional argument", []string{"--markdown", "segment"}},
		{"completions with a flag", []string{"--completions", "zsh", "-f"}},
		{"completions with a positional argument", []string{"--completions", "zsh", "segment"}},
		{"completions with markdown", []string{"--completions", "zsh", "--markdown"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := swapWorkflow(t)
			cmd, _, _ := newTestRootCmd()
			cmd.SetArgs(tt.args)

			require.Error(t, cmd.Execute())
			assert.Empty(t, fake.opts, "no generation or pipeline output on a usage error")
		})
	}
}

func TestRootCmd_WorkflowErrorPropagates(t *testing.T) {
	fake := swapWorkflow(t)
	fake.err = m.ErrNotFound

	cmd, _, _ := newTestRootCmd()
	cmd.SetArgs([]string{"-w", "missingprog"})

	err := cmd.Execute()

	require.ErrorIs(t, err, m.ErrNotFound)
}
