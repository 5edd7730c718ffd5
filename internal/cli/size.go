package cli

import (
	"github.com/spf13/cobra"
)

// SizeCommand handles the size command
type SizeCommand struct {
	app *app
}

// NewSizeCommand creates a new size command
func NewSizeCommand(a *app) *cobra.Command {
	cmd := &SizeCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "size PATH",
		Short: "Print the size of a file or directory",
		Long: `Prints the size of PATH in bytes, or 0 when it does not exist.

For directories only files whose name contains a dot are counted.`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolP("human", "H", false, "Scale the size to kb, mb, gb, tb or pb")

	return cobraCmd
}

// Run executes the size command
func (c *SizeCommand) Run(cmd *cobra.Command, args []string) error {
	human, _ := cmd.Flags().GetBool("human")

	p := c.app.path(args[0])
	if human {
		printf(cmd.OutOrStdout(), "%s\n", p.FormattedSize())
		return nil
	}
	printf(cmd.OutOrStdout(), "%d\n", p.Size())
	return nil
}
