package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jakoblorz/go-pathier"
	"github.com/jakoblorz/go-pathier/internal/config"
	"github.com/jakoblorz/go-pathier/internal/filesystem"
	"github.com/jakoblorz/go-pathier/internal/log"
	"github.com/spf13/cobra"
)

// app carries what every command needs once the root command has resolved
// configuration.
type app struct {
	fs        filesystem.FileSystem
	lookupEnv func(string) (string, bool)
	cfg       *config.Config

	logLevel  string
	logFormat string
}

// path resolves arg against the working directory of a.fs.
func (a *app) path(arg string) *pathier.Path {
	p := pathier.New(arg).WithFileSystem(a.fs)
	if abs, err := p.Abs(); err == nil {
		return abs
	}
	return p
}

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem, lookupEnv func(string) (string, bool)) *cobra.Command {
	a := &app{fs: fs, lookupEnv: lookupEnv, cfg: config.Default()}

	rootCmd := &cobra.Command{
		Use:   "pathier",
		Short: "Inspect, convert, copy and back up files",
		Long: `A CLI over the pathier library.

Defaults are read from the nearest .pathier.toml, .pathier.json or .pathier.yaml
above the working directory, then from PATHIER_* environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Set the log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Set the log format (text, logfmt, json)")

	rootCmd.AddCommand(NewInfoCommand(a))
	rootCmd.AddCommand(NewSizeCommand(a))
	rootCmd.AddCommand(NewCopyCommand(a))
	rootCmd.AddCommand(NewDeleteCommand(a))
	rootCmd.AddCommand(NewBackupCommand(a))
	rootCmd.AddCommand(NewConvertCommand(a))
	rootCmd.AddCommand(NewMoveUpCommand(a))
	rootCmd.AddCommand(NewMoveUnderCommand(a))
	rootCmd.AddCommand(NewSeparateCommand(a))

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	wd, err := a.fs.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(a.fs, wd, a.lookupEnv)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if a.logFormat != "" {
		cfg.LogFormat = a.logFormat
	}
	a.cfg = cfg

	h, err := log.CreateHandler(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create log handler: %w", err)
	}
	logger := slog.New(h)
	slog.SetDefault(logger)
	pathier.SetLogger(logger)

	if cfg.Source != "" {
		slog.Debug("loaded config", "path", cfg.Source)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	fs := filesystem.NewOSFileSystem()

	rootCmd := NewRootCommand(fs, os.LookupEnv)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

func printf(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
