// Package cmd implements the sysutil command line.
package cmd

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Cyclone1070/sysutil/internal/config"
	"github.com/Cyclone1070/sysutil/internal/logging"
	"github.com/Cyclone1070/sysutil/internal/tool/service/fs"
	"github.com/Cyclone1070/sysutil/internal/tool/tree"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// ErrOperationFailed is returned when a command ran but at least one of its
// operands failed. The individual failures have already been logged.
var ErrOperationFailed = errors.New("operation failed")

// app carries what every subcommand needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg    *config.Config
	logger *log.Logger
	fs     *fs.OSFileSystem
	walker *tree.Walker
}

func (a *app) setup(cmd *cobra.Command) error {
	loader := config.NewLoader()
	var cfg *config.Config
	var err error
	if a.configPath != "" {
		cfg, err = loader.LoadFrom(a.configPath, true)
	} else {
		cfg, err = loader.Load()
	}
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), cfg.Log.Level)
	a.fs = fs.NewOSFileSystem()
	a.walker = tree.NewWalker(a.fs, a.logger, tree.WithLocale(cfg.Locale()))
	return nil
}

// NewRootCommand creates and returns the root cobra command for sysutil
func NewRootCommand() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:   "sysutil",
		Short: "Portable rm, mkdir, cat, which and find",
		Long: `sysutil provides the everyday file commands with identical behaviour on
every platform: rm, mkdir, cat, which and find.

Configuration is read from ~/.config/sysutil/config.json (or $SYSUTIL_CONFIG).`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.config/sysutil/config.json)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(newRmCommand(a))
	cmd.AddCommand(newMkdirCommand(a))
	cmd.AddCommand(newCatCommand(a))
	cmd.AddCommand(newWhichCommand(a))
	cmd.AddCommand(newFindCommand(a))
	cmd.AddCommand(newExecCommand(a))

	return cmd
}

// reportFailures logs each failure and converts a failed run into
// ErrOperationFailed.
func (a *app) reportFailures(success bool, failed, failures []string) error {
	for i, msg := range failures {
		a.logger.Error(msg, "path", failed[i])
	}
	if !success {
		return ErrOperationFailed
	}
	return nil
}
