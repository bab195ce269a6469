// Package cmd provides the root command and CLI setup for here.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"here.dev/pkg/here/internal/adapter"
	"here.dev/pkg/here/internal/controller"
	"here.dev/pkg/here/internal/domain"
	m "here.dev/pkg/here/internal/model"
)

var pathFS adapter.PathFSAdapter
var searcher adapter.Searcher
var systemClipboard adapter.ClipboardAdapter
var keystrokes adapter.KeystrokeEmitter
var ui controller.UI
var workflow domain.Workflow

var folderFlag bool
var fromWhereFlag bool
var changeDirectoryFlag bool
var escapeBackslashFlag bool
var wrapQuoteFlag bool
var resolveSymlinkFlag bool
var noCopyFlag bool
var noColorFlag bool
var posixFlag bool
var noPosixFlag bool
var selectFirstFlag bool
var completionsFlag string
var markdownFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	interactive := controller.IsTTY(os.Stdin) && controller.IsTTY(os.Stdout)
	ui = controller.NewTerminalUI(rootCmd, interactive)
	pathFS = adapter.NewLocalPathFSAdapter()
	searcher = adapter.NewPlatformSearcher()
	systemClipboard = adapter.NewSystemClipboard()
	keystrokes = adapter.NewPlatformKeystrokeEmitter()
	workflow = domain.NewWorkflow(
		domain.NewResolver(pathFS, searcher, ui),
		domain.NewTransformer(pathFS),
		systemClipboard,
		keystrokes,
		ui,
	)
}

const rootLongDescription = `Effortlessly grab and copy file locations.

The path that was copied to clipboard is printed with color. Coloring can
be turned off with -c/--no-color, and copying to clipboard is skipped with
-n/--no-copy.

Useful combinations of flags:

  here              copy the working directory and print the colored result
  here -wf NAME     copy the folder of a binary or script found in PATH
  here -wfdn NAME   change the working directory to where the binary lives
  here -qe          copy as a quoted, backslash-escaped string literal`

// rootCmd represents the whole CLI. The tool is a flat command so the
// positional argument is never shadowed by a subcommand name.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "here [path segment | program name]",
		Short:   "Grab and copy file locations",
		Long:    rootLongDescription,
		Version: buildVersion(),
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateGenerationModes(cmd, args); err != nil {
				return err
			}

			if completionsFlag != "" {
				return runCompletions(cmd, completionsFlag)
			}

			if markdownFlag {
				return runMarkdown(cmd)
			}

			opts, err := buildOptions(cmd, args, controller.IsTTY(os.Stdout))
			if err != nil {
				return err
			}

			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))

			return workflow.Run(cmd.Context(), opts)
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&folderFlag, folderFlagName, "f", false, "get folder component of result")
	cmd.Flags().BoolVarP(&fromWhereFlag, fromWhereFlagName, "w", false, "search for the named program instead of using the working directory")
	cmd.Flags().BoolVarP(&changeDirectoryFlag, changeDirectoryFlagName, "d", false, "change working directory to result (schedules keystrokes)")
	cmd.Flags().BoolVarP(&escapeBackslashFlag, escapeBackslashFlagName, "e", false, `escape backslashes (\ -> \\)`)
	cmd.Flags().BoolVarP(&wrapQuoteFlag, wrapQuoteFlagName, "q", false, "wrap result in double quotes")
	cmd.Flags().BoolVarP(&resolveSymlinkFlag, resolveSymlinkFlagName, "r", false, "use the target the symlink points to")

	cmd.Flags().BoolVarP(&noCopyFlag, noCopyFlagName, "n", viper.GetBool(noCopyFlagName), "prevent copy to clipboard")
	bindFlagToConfig(cmd.Flags().Lookup(noCopyFlagName), noCopyFlagName)

	cmd.Flags().BoolVarP(&noColorFlag, noColorFlagName, "c", viper.GetBool(noColorFlagName), "suppress color")
	bindFlagToConfig(cmd.Flags().Lookup(noColorFlagName), noColorFlagName)

	cmd.Flags().BoolVar(&posixFlag, posixFlagName, false, "force posix style path (forward slashes)")
	cmd.Flags().BoolVar(&noPosixFlag, noPosixFlagName, false, "force windows style path (backslashes)")
	cmd.MarkFlagsMutuallyExclusive(posixFlagName, noPosixFlagName)

	cmd.Flags().BoolVar(&selectFirstFlag, selectFirstFlagName, viper.GetBool(selectFirstFlagName), "select the first option when search finds several")
	bindFlagToConfig(cmd.Flags().Lookup(selectFirstFlagName), selectFirstFlagName)

	cmd.Flags().StringVar(&completionsFlag, completionsFlagName, "", "generate completion script for the given shell (bash|elvish|fish|powershell|zsh)")
	cmd.Flags().BoolVar(&markdownFlag, markdownFlagName, false, "generate a markdown help page")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so env values feed the
// flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// buildOptions assembles the immutable Options record from the parsed flags
// and validates the cross-flag constraints cobra cannot express.
func buildOptions(cmd *cobra.Command, args []string, stdoutTTY bool) (m.Options, error) {
	target := ""
	if len(args) == 1 {
		target = args[0]
	}

	selectFirst := viper.GetBool(selectFirstFlagName)
	if !fromWhereFlag && !cmd.Flags().Changed(selectFirstFlagName) {
		// HERE_SELECT_FIRST is a default for search mode only; outside it
		// the env value is inert. Only the explicit flag is a usage error.
		selectFirst = false
	}

	opts := m.Options{
		Target:          target,
		FolderComponent: folderFlag,
		WhereSearch:     fromWhereFlag,
		ChangeDirectory: changeDirectoryFlag,
		EscapeBackslash: escapeBackslashFlag,
		WrapQuote:       wrapQuoteFlag,
		ResolveSymlink:  resolveSymlinkFlag,
		NoCopy:          viper.GetBool(noCopyFlagName),
		NoColor:         viper.GetBool(noColorFlagName) || !stdoutTTY,
		SelectFirst:     selectFirst,
		Slashes:         slashStyle(posixFlag, noPosixFlag),
	}

	if err := validateOptions(opts); err != nil {
		return m.Options{}, err
	}

	return opts, nil
}

func slashStyle(posix, noPosix bool) m.SlashStyle {
	switch {
	case posix:
		return m.StylePosix
	case noPosix:
		return m.StyleWindows
	default:
		return m.StylePlatform
	}
}

func validateOptions(opts m.Options) error {
	if opts.WhereSearch && opts.Target == "" {
		return fmt.Errorf("-w/--from-where requires a program name argument")
	}

	if opts.SelectFirst && !opts.WhereSearch {
		return fmt.Errorf("--select-first requires -w/--from-where")
	}

	return nil
}

// validateGenerationModes enforces that --completions and --markdown stand
// alone: no other flag, no positional argument, not each other.
func validateGenerationModes(cmd *cobra.Command, args []string) error {
	completionsSet := cmd.Flags().Changed(completionsFlagName)
	markdownSet := cmd.Flags().Changed(markdownFlagName)

	if !completionsSet && !markdownSet {
		return nil
	}

	if completionsSet && markdownSet {
		return fmt.Errorf("--%s and --%s cannot be combined", completionsFlagName, markdownFlagName)
	}

	mode := completionsFlagName
	if markdownSet {
		mode = markdownFlagName
	}

	if len(args) > 0 {
		return fmt.Errorf("--%s cannot be combined with a positional argument", mode)
	}

	var conflict error

	cmd.Flags().Visit(func(flag *pflag.Flag) {
		if flag.Name == mode || conflict != nil {
			return
		}

		conflict = fmt.Errorf("--%s cannot be combined with --%s", mode, flag.Name)
	})

	return conflict
}

// Execute runs the root command. This is called by main.main(). It only
// needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
