package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// completionShells enumerates the accepted --completions arguments.
var completionShells = []string{"bash", "elvish", "fish", "powershell", "zsh"}

// runCompletions prints a completion script for the given shell. The output
// can be piped to the shell's completion file.
func runCompletions(cmd *cobra.Command, shell string) error {
	out := cmd.OutOrStdout()

	switch shell {
	case "bash":
		return cmd.Root().GenBashCompletionV2(out, true)
	case "elvish":
		return genElvishCompletion(cmd.Root(), out)
	case "fish":
		return cmd.Root().GenFishCompletion(out, true)
	case "powershell":
		return cmd.Root().GenPowerShellCompletionWithDesc(out)
	case "zsh":
		return cmd.Root().GenZshCompletion(out)
	}

	return fmt.Errorf("unsupported completion shell %q (expected one of: %s)",
		shell, strings.Join(completionShells, ", "))
}

// genElvishCompletion emits a flag completer built from the command's
// registered flags. cobra ships no elvish generator, so the script is
// assembled here.
func genElvishCompletion(root *cobra.Command, out io.Writer) error {
	var flags []string

	root.Flags().VisitAll(func(flag *pflag.Flag) {
		if flag.Hidden {
			return
		}

		flags = append(flags, "--"+flag.Name)
		if flag.Shorthand != "" {
			flags = append(flags, "-"+flag.Shorthand)
		}
	})

	_, err := fmt.Fprintf(out,
		"set edit:completion:arg-completer[%s] = {|@words|\n    put %s\n}\n",
		root.Name(), strings.Join(flags, " "))

	return err
}
