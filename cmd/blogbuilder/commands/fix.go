package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/hwnotes/blogbuilder/internal/lint"
)

// FixCmd implements the 'fix' command.
type FixCmd struct {
	DryRun bool `help:"Show what would change without writing files"`
}

// Run executes the fix command.
func (cmd *FixCmd) Run(_ *Global, root *CLI) error {
	s, err := loadSite(root.Config)
	if err != nil {
		return err
	}

	fixer := &lint.Fixer{
		Root:    s.Root,
		History: openHistory(s.Root),
		DryRun:  cmd.DryRun,
	}
	result, err := fixer.Fix(s)
	if err != nil {
		return err
	}

	if cmd.DryRun {
		fmt.Fprintln(os.Stdout, "DRY RUN: no changes will be applied")
		fmt.Fprintln(os.Stdout)
	}

	for _, change := range result.Changed {
		fmt.Fprintf(os.Stdout, "  %s: %s\n", change.Path, strings.Join(change.Actions, ", "))
	}

	switch {
	case len(result.Changed) == 0:
		fmt.Fprintln(os.Stdout, "Nothing to fix.")
	case cmd.DryRun:
		fmt.Fprintf(os.Stdout, "\n%d file%s would change (%d already fine)\n",
			len(result.Changed), plural(len(result.Changed)), result.Unchanged)
	default:
		fmt.Fprintf(os.Stdout, "\n✨ Fixed %d file%s (%d already fine)\n",
			len(result.Changed), plural(len(result.Changed)), result.Unchanged)
	}
	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
