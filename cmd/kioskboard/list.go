package main

import (
	"context"
	"fmt"

	"github.com/cristianoliveira/kioskboard/cmd"
	"github.com/cristianoliveira/kioskboard/internal/format"
	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/cristianoliveira/kioskboard/internal/search"
	"github.com/spf13/cobra"
)

type listClient interface {
	List(ctx context.Context, section media.Section) (media.FileList, error)
}

// sourceLister lists through the same sources the dashboard reads.
type sourceLister struct{}

func (sourceLister) List(ctx context.Context, section media.Section) (media.FileList, error) {
	certs, videos, err := newSources()
	if err != nil {
		return nil, err
	}
	if section == media.Videos {
		return videos.List(ctx)
	}
	return certs.List(ctx)
}

const listCommandLong = `List the files the dashboard would show.

USAGE:
    kioskboard list [certificates|videos] [--format simple|table|json] [--filter <query>]

OPTIONS:
    --filter <query>     Only show names matching the query
    --mode <mode>        Match with substring (default), regex or token
    --ignore-case        Match case-insensitively
    --format <format>    Output as simple (default), table or json

Token queries need every word in the name; "image", "pdf" and "video" pick
file kinds. Without a section both listings are printed under a header. The
listing comes from server_url when it is configured and from the local folders
otherwise.`

// NewListCmd creates the list command with explicit dependencies.
func NewListCmd(client listClient) *cobra.Command {
	if client == nil {
		panic("NewListCmd: client dependency cannot be nil")
	}

	var (
		outFormat  string
		filter     string
		mode       string
		ignoreCase bool
	)
	listCmd := &cobra.Command{
		Use:       "list [certificates|videos]",
		Short:     "List certificates and media",
		Long:      listCommandLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(media.Certificates), string(media.Videos)},
		RunE: func(cmd *cobra.Command, args []string) error {
			sections := media.Sections
			if len(args) == 1 {
				section, err := media.ParseSection(args[0])
				if err != nil {
					return err
				}
				sections = []media.Section{section}
			}

			formatter, err := format.NewFormatter(format.FormatterType(outFormat))
			if err != nil {
				return err
			}
			provider, err := search.New(mode, search.WithCaseInsensitive(ignoreCase))
			if err != nil {
				return err
			}
			if re, ok := provider.(*search.RegexProvider); ok && filter != "" {
				if err := re.Compile(filter); err != nil {
					return fmt.Errorf("invalid filter: %w", err)
				}
			}

			listings := make([]format.Listing, 0, len(sections))
			for _, section := range sections {
				files, err := client.List(cmd.Context(), section)
				if err != nil {
					return fmt.Errorf("list %s: %w", section, err)
				}
				listings = append(listings, format.Listing{
					Section: section,
					Files:   search.Filter(provider, files, filter),
				})
			}
			return formatter.FormatListings(listings, cmd.OutOrStdout())
		},
	}
	listCmd.Flags().StringVar(&outFormat, "format", string(format.FormatterTypeSimple), "Output format: simple, table or json")
	listCmd.Flags().StringVar(&filter, "filter", "", "Only show names matching the query")
	listCmd.Flags().StringVar(&mode, "mode", "substring", "Match mode: substring, regex or token")
	listCmd.Flags().BoolVar(&ignoreCase, "ignore-case", false, "Match case-insensitively")
	return listCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewListCmd(sourceLister{}))
}
