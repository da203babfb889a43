package main

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/kioskboard/cmd"
	"github.com/cristianoliveira/kioskboard/internal/format"
	"github.com/cristianoliveira/kioskboard/internal/logging"
	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/spf13/cobra"
)

type scanClient interface {
	RefreshAll(ctx context.Context) error
	Entries(ctx context.Context, section media.Section) ([]media.Entry, error)
}

// catalogOpener returns a catalog and a close function for its store.
type catalogOpener func() (scanClient, func() error, error)

func openCatalog() (scanClient, func() error, error) {
	cat, store, err := newCatalog(logging.GetGlobal())
	if err != nil {
		return nil, nil, err
	}
	return cat, store.Close, nil
}

// NewScanCmd creates the scan command with explicit dependencies.
func NewScanCmd(open catalogOpener) *cobra.Command {
	if open == nil {
		panic("NewScanCmd: open dependency cannot be nil")
	}

	var outFormat string
	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Rescan the folders and print the catalog",
		Long: `Rescan the Certificates and Videos folders and print what the listing
server would publish, with file kind, size and photo metadata.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := format.NewFormatter(format.FormatterType(outFormat))
			if err != nil {
				return err
			}
			client, closeFn, err := open()
			if err != nil {
				return fmt.Errorf("failed to open catalog: %w", err)
			}
			defer func() {
				if cerr := closeFn(); cerr != nil {
					logging.Warn("failed to close catalog", "error", cerr)
				}
			}()

			ctx := cmd.Context()
			if err := client.RefreshAll(ctx); err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}
			var all []media.Entry
			for _, section := range media.Sections {
				entries, err := client.Entries(ctx, section)
				if err != nil {
					return fmt.Errorf("list %s: %w", section, err)
				}
				all = append(all, entries...)
			}
			return formatter.FormatEntries(all, cmd.OutOrStdout())
		},
	}
	scanCmd.Flags().StringVar(&outFormat, "format", string(format.FormatterTypeTable), "Output format: simple, table or json")
	return scanCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewScanCmd(openCatalog))
}
