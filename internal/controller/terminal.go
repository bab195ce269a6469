package controller

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "here.dev/pkg/here/internal/model"
)

// TerminalUI implements UI on top of a cobra command's writers. When the
// session is interactive the candidate prompt is a Bubble Tea picker;
// otherwise candidates are listed in a table and the choice is read as a
// line from stdin.
type TerminalUI struct {
	cmd         *cobra.Command
	interactive bool
}

// NewTerminalUI creates a new TerminalUI. interactive should reflect whether
// both stdin and stdout are terminals.
func NewTerminalUI(cmd *cobra.Command, interactive bool) *TerminalUI {
	return &TerminalUI{cmd: cmd, interactive: interactive}
}

// ShowResult prints the final path on stdout, salmon-colored when colored is
// set.
func (u *TerminalUI) ShowResult(path string, colored bool) {
	if colored {
		fmt.Fprintln(u.cmd.OutOrStdout(), resultStyle.Render(path))
		return
	}

	fmt.Fprintln(u.cmd.OutOrStdout(), path)
}

// Warn prints a non-fatal condition on stderr.
func (u *TerminalUI) Warn(warning m.Warning) {
	u.cmd.PrintErrln(warningStyle.Render("warning:"), warning.String())
}

// SelectPath asks the user to pick one of the candidates.
func (u *TerminalUI) SelectPath(ctx context.Context, candidates []string) (string, error) {
	if u.interactive {
		return pickPath(ctx, candidates)
	}

	return u.promptIndex(candidates)
}

// promptIndex is the non-interactive fallback: a numbered candidate table on
// stderr and a single line read from stdin.
func (u *TerminalUI) promptIndex(candidates []string) (string, error) {
	u.cmd.PrintErrln("Select a path:")
	u.cmd.PrintErr(renderCandidateTable(candidates))
	u.cmd.PrintErrf("Choice [1-%d]: ", len(candidates))

	line, err := bufio.NewReader(u.cmd.InOrStdin()).ReadString('\n')
	if err != nil && strings.TrimSpace(line) == "" {
		return "", m.ErrCancelled
	}

	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || choice < 1 || choice > len(candidates) {
		return "", fmt.Errorf("invalid selection %q: %w", strings.TrimSpace(line), m.ErrCancelled)
	}

	return candidates[choice-1], nil
}

func renderCandidateTable(candidates []string) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Path"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})

	for i, candidate := range candidates {
		table.Append([]string{strconv.Itoa(i + 1), candidate})
	}

	table.Render()

	return buf.String()
}
