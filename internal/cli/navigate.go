package cli

import (
	"github.com/jakoblorz/go-pathier"
	"github.com/spf13/cobra"
)

// NewMoveUpCommand creates the moveup command
func NewMoveUpCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "moveup PATH NAME",
		Short:   "Print the ancestor of PATH ending at the first segment NAME",
		Example: `  pathier moveup /srv/app/src/pkg/file.go app  # /srv/app`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.path(args[0]).MoveUp(args[1])
			return printNavigated(cmd, p, err)
		},
	}
}

// NewMoveUnderCommand creates the moveunder command
func NewMoveUnderCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "moveunder PATH NAME",
		Short:   "Print the ancestor of PATH one level below the last segment NAME",
		Example: `  pathier moveunder /srv/app/src/pkg/file.go app  # /srv/app/src`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.path(args[0]).MoveUnder(args[1])
			return printNavigated(cmd, p, err)
		},
	}
}

// NewSeparateCommand creates the separate command
func NewSeparateCommand(a *app) *cobra.Command {
	cobraCmd := &cobra.Command{
		Use:     "separate PATH NAME",
		Short:   "Print the part of PATH after the first segment NAME",
		Example: `  pathier separate /srv/app/src/pkg/file.go src  # pkg/file.go`,
		Args:    cobra.ExactArgs(2),
	}

	cobraCmd.Flags().BoolP("keep", "k", false, "Start the result with NAME")

	cobraCmd.RunE = func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetBool("keep")
		p, err := a.path(args[0]).Separate(args[1], keep)
		return printNavigated(cmd, p, err)
	}

	return cobraCmd
}

func printNavigated(cmd *cobra.Command, p *pathier.Path, err error) error {
	if err != nil {
		return err
	}
	printf(cmd.OutOrStdout(), "%s\n", p)
	return nil
}
