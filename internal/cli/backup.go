package cli

import (
	"github.com/jakoblorz/go-pathier"
	"github.com/jakoblorz/go-pathier/internal/tui"
	"github.com/spf13/cobra"
)

// BackupCommand handles the backup command
type BackupCommand struct {
	app *app
}

// NewBackupCommand creates a new backup command
func NewBackupCommand(a *app) *cobra.Command {
	cmd := &BackupCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "backup PATH",
		Short: "Copy a file or directory to a sibling backup",
		Long: `Copies PATH next to itself, replacing an earlier backup of the same name.

The backup name is rendered from a text/template with sprig functions. The
template sees .Stem, .Ext, .Timestamp and .Time.`,
		Example: `  pathier backup notes.txt              # notes_backup.txt
  pathier backup notes.txt --timestamp  # notes_backup_10-16-2026-03_04_05_PM.txt
  pathier backup db.sqlite --template '{{ .Stem }}-{{ .Time | date "20060102" }}{{ .Ext }}'`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().BoolP("timestamp", "t", false, "Add the current time to the backup name")
	cobraCmd.Flags().String("template", "", "Template for the backup name")

	return cobraCmd
}

// Run executes the backup command
func (c *BackupCommand) Run(cmd *cobra.Command, args []string) error {
	timestamp := c.app.cfg.Backup.Timestamp
	if cmd.Flags().Changed("timestamp") {
		timestamp, _ = cmd.Flags().GetBool("timestamp")
	}
	template := c.app.cfg.Backup.Template
	if cmd.Flags().Changed("template") {
		template, _ = cmd.Flags().GetString("template")
	}

	backup, err := c.app.path(args[0]).Backup(timestamp, pathier.WithBackupTemplate(template))
	if err != nil {
		return err
	}
	if backup == nil {
		printf(cmd.OutOrStdout(), "%s\n", tui.SubtleStyle.Render("nothing to back up"))
		return nil
	}

	printf(cmd.OutOrStdout(), "%s %s\n", tui.SuccessStyle.Render("backed up to"), backup)
	return nil
}
