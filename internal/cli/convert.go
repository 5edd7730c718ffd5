package cli

import (
	"github.com/jakoblorz/go-pathier"
	"github.com/jakoblorz/go-pathier/internal/config"
	"github.com/jakoblorz/go-pathier/internal/tui"
	"github.com/spf13/cobra"
)

// ConvertCommand handles the convert command
type ConvertCommand struct {
	app *app
}

// NewConvertCommand creates a new convert command
func NewConvertCommand(a *app) *cobra.Command {
	cmd := &ConvertCommand{app: a}

	cobraCmd := &cobra.Command{
		Use:   "convert SRC DST",
		Short: "Convert structured data between JSON, TOML and YAML",
		Long: `Loads SRC and dumps it to DST. Both formats are chosen by file extension
(.json, .toml, .yaml or .yml). Missing parent directories of DST are created.`,
		Example: `  pathier convert package.json package.toml
  pathier convert config.yaml out/config.json --indent 2 --sort-keys`,
		Args: cobra.ExactArgs(2),
		RunE: cmd.Run,
	}

	cobraCmd.Flags().Bool("sort-keys", false, "Sort object keys")
	cobraCmd.Flags().Int("indent", 0, "Indent JSON output by this many spaces")
	cobraCmd.Flags().String("encoding", "", "Text encoding of SRC and DST (default utf-8)")

	return cobraCmd
}

// Run executes the convert command
func (c *ConvertCommand) Run(cmd *cobra.Command, args []string) error {
	dump := c.app.cfg.Dump
	if cmd.Flags().Changed("sort-keys") {
		dump.SortKeys, _ = cmd.Flags().GetBool("sort-keys")
	}
	if cmd.Flags().Changed("indent") {
		dump.Indent, _ = cmd.Flags().GetInt("indent")
	}
	encoding, _ := cmd.Flags().GetString("encoding")

	src := c.app.path(args[0])
	dst := c.app.path(args[1])

	value, err := src.Load(pathier.WithEncoding(encoding))
	if err != nil {
		return err
	}

	opts := append((&config.Config{Dump: dump}).DumpOptions(), pathier.WithEncoding(encoding))
	if err := dst.Dump(value, opts...); err != nil {
		return err
	}

	printf(cmd.OutOrStdout(), "%s %s\n", tui.SuccessStyle.Render("wrote"), dst)
	return nil
}
