package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"github.com/jakoblorz/go-pathier"
	"github.com/jakoblorz/go-pathier/internal/tui"
	"github.com/spf13/cobra"
)

// InfoCommand handles the info command
type InfoCommand struct {
	app *app
}

// NewInfoCommand creates a new info command
func NewInfoCommand(a *app) *cobra.Command {
	cmd := &InfoCommand{app: a}

	return &cobra.Command{
		Use:   "info PATH",
		Short: "Show existence, kind, size and timestamps of a path",
		Example: `  pathier info ./build
  pathier info config.toml`,
		Args: cobra.ExactArgs(1),
		RunE: cmd.Run,
	}
}

// Run executes the info command
func (c *InfoCommand) Run(cmd *cobra.Command, args []string) error {
	p := c.app.path(args[0])
	fmt.Fprintln(cmd.OutOrStdout(), renderInfo(p))
	return nil
}

func renderInfo(p *pathier.Path) string {
	rows := [][]string{
		{"path", p.String()},
		{"exists", strconv.FormatBool(p.Exists())},
	}

	if p.Exists() {
		kind := "other"
		switch {
		case p.IsDir():
			kind = "directory"
		case p.IsFile():
			kind = "file"
		}
		rows = append(rows,
			[]string{"kind", kind},
			[]string{"size", fmt.Sprintf("%s (%d bytes)", p.FormattedSize(), p.Size())},
		)

		if created, ok := p.CreationTime(); ok {
			age, _ := p.Age()
			rows = append(rows, []string{"created", stamp(created, age)})
		}
		if modified, ok := p.ModTime(); ok {
			age, _ := p.ModAge()
			rows = append(rows, []string{"modified", stamp(modified, age)})
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tui.BorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return tui.TitleStyle.PaddingRight(1)
			}
			return lipgloss.NewStyle()
		}).
		Rows(rows...)

	return t.Render()
}

func stamp(t time.Time, age time.Duration) string {
	return fmt.Sprintf("%s (%s)", t.Format(time.RFC3339), humanize.RelTime(t, t.Add(age), "ago", "from now"))
}
