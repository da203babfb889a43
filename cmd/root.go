// Package cmd holds the root command shared by the kioskboard binary.
package cmd

import (
	"fmt"
	"os"

	"github.com/cristianoliveira/kioskboard/internal/colors"
	"github.com/cristianoliveira/kioskboard/internal/config"
	"github.com/cristianoliveira/kioskboard/internal/logging"
	"github.com/cristianoliveira/kioskboard/internal/version"
	"github.com/spf13/cobra"
)

var (
	debugFlag bool
	quietFlag bool
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use:   "kioskboard",
	Short: "A kiosk dashboard for certificates, a board and a media slideshow.",
	Long: `A kiosk dashboard for certificates, a board and a media slideshow.

Run "kioskboard serve" next to the Certificates and Videos folders to publish
their listings, then "kioskboard show" on the kiosk terminal.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if err := logging.ShutdownGlobal(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log: %v\n", err)
		}
	},
}

func init() {
	RootCmd.Version = version.String()
	RootCmd.CompletionOptions.HiddenDefaultCmd = true
	RootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Show debug output and log at debug level")
	RootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Only print errors")
}

// setup loads configuration and starts logging before any subcommand runs.
// Flags win over the environment and the config file.
func setup(cmd *cobra.Command, args []string) error {
	config.Load()
	if cmd.Flags().Changed("debug") {
		config.Set("debug", fmt.Sprint(debugFlag))
	}
	if cmd.Flags().Changed("quiet") {
		config.Set("quiet", fmt.Sprint(quietFlag))
	}
	colors.SetDebug(config.GetBool("debug", false))
	colors.SetQuiet(config.GetBool("quiet", false))

	cfg := logging.FromGlobalConfig()
	cfg.Command = cmd.Name()
	logger, err := logging.Init(cfg)
	if err != nil {
		colors.Warning(fmt.Sprintf("file logging disabled: %v", err))
		return nil
	}
	logging.SetGlobal(logger)
	if path := logging.CurrentLogFile(); path != "" {
		colors.Debug("Logging to file:", path)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}
