package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jakoblorz/go-pathier"
	"github.com/jakoblorz/go-pathier/internal/tui"
	"github.com/jakoblorz/go-pathier/internal/tui/components"
	"github.com/spf13/cobra"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app *app
}

// NewDeleteCommand creates a new delete command
func NewDeleteCommand(a *app) *cobra.Command {
	cmd := &DeleteCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "delete PATH",
		Short: "Delete a file or a directory tree",
		Args:  cobra.ExactArgs(1),
		RunE:  cmd.Run,
	}

	cobraCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	cobraCmd.Flags().Bool("strict", false, "Fail when PATH does not exist")

	return cobraCmd
}

// Run executes the delete command
func (c *DeleteCommand) Run(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	strict, _ := cmd.Flags().GetBool("strict")

	p := c.app.path(args[0])

	if !yes && p.Exists() {
		confirmed, err := confirmDelete(cmd, p)
		if err != nil {
			return err
		}
		if !confirmed {
			printf(cmd.OutOrStdout(), "%s\n", tui.SubtleStyle.Render("aborted"))
			return nil
		}
	}

	if err := p.Delete(!strict); err != nil {
		return err
	}

	printf(cmd.OutOrStdout(), "%s %s\n", tui.SuccessStyle.Render("deleted"), p)
	return nil
}

func confirmDelete(cmd *cobra.Command, p *pathier.Path) (bool, error) {
	prompt := components.NewConfirm(
		fmt.Sprintf("Delete %s?", p),
		fmt.Sprintf("%s will be removed", p.FormattedSize()),
	)

	program := tea.NewProgram(prompt,
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("failed to run confirmation prompt: %w", err)
	}

	model, ok := final.(components.ConfirmModel)
	return ok && model.Confirmed(), nil
}
