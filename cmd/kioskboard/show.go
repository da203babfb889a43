package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/kioskboard/cmd"
	"github.com/cristianoliveira/kioskboard/internal/colors"
	"github.com/cristianoliveira/kioskboard/internal/config"
	"github.com/cristianoliveira/kioskboard/internal/settings"
	"github.com/cristianoliveira/kioskboard/internal/tui/state"
	"github.com/spf13/cobra"
)

// programRunner runs a bubbletea model until it quits.
type programRunner func(m tea.Model, opts ...tea.ProgramOption) error

func runProgram(m tea.Model, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}

// NewShowCmd creates the show command with explicit dependencies.
func NewShowCmd(run programRunner) *cobra.Command {
	if run == nil {
		panic("NewShowCmd: run dependency cannot be nil")
	}

	var (
		serverURL string
		fresh     bool
	)
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Run the kiosk dashboard",
		Long: `Run the dashboard: the certificates carousel, the board and the media
slideshow side by side. Pane widths and the paused state are restored from the
last session unless --fresh is given.

Press ? for the key bindings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("server-url") {
				config.Set("server_url", serverURL)
			}

			opts, err := dashboardOptions()
			if err != nil {
				return err
			}
			if !fresh {
				saved, err := settings.Load()
				if err != nil {
					colors.Warning(fmt.Sprintf("ignoring saved session: %v", err))
				} else {
					opts.Settings = saved
				}
			}

			model, err := state.NewModel(opts)
			if err != nil {
				return fmt.Errorf("failed to start dashboard: %w", err)
			}
			return run(model, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
		},
	}
	showCmd.Flags().StringVar(&serverURL, "server-url", "", "Listing server to read from instead of the local folders")
	showCmd.Flags().BoolVar(&fresh, "fresh", false, "Start from the configured layout instead of the saved session")
	return showCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewShowCmd(runProgram))
}
