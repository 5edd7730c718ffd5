package cli

import (
	"github.com/jakoblorz/go-pathier/internal/tui"
	"github.com/spf13/cobra"
)

// CopyCommand handles the copy command
type CopyCommand struct {
	app *app
}

// NewCopyCommand creates a new copy command
func NewCopyCommand(a *app) *cobra.Command {
	cmd := &CopyCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "copy SRC DST",
		Short: "Copy a file or directory",
		Long: `Copies SRC to DST.

Without --overwrite an existing DST file is left alone, and copying a directory
onto an existing directory only adds the top-level files DST is missing.`,
		Example: `  pathier copy notes.txt notes-old.txt
  pathier copy ./assets ./dist/assets --overwrite`,
		Args: cobra.ExactArgs(2),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("overwrite", false, "Replace files that already exist at the destination")

	return cobraCmd
}

// Run executes the copy command
func (c *CopyCommand) Run(cmd *cobra.Command, args []string) error {
	overwrite, _ := cmd.Flags().GetBool("overwrite")

	dst, err := c.app.path(args[0]).Copy(c.app.path(args[1]), overwrite)
	if err != nil {
		return err
	}

	printf(cmd.OutOrStdout(), "%s %s\n", tui.SuccessStyle.Render("copied to"), dst)
	return nil
}
