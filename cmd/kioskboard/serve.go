package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cristianoliveira/kioskboard/cmd"
	"github.com/cristianoliveira/kioskboard/internal/catalog"
	"github.com/cristianoliveira/kioskboard/internal/colors"
	"github.com/cristianoliveira/kioskboard/internal/config"
	"github.com/cristianoliveira/kioskboard/internal/hooks"
	"github.com/cristianoliveira/kioskboard/internal/logging"
	"github.com/cristianoliveira/kioskboard/internal/media"
	"github.com/cristianoliveira/kioskboard/internal/server"
	"github.com/spf13/cobra"
)

// listenFunc runs the HTTP server until ctx is done.
type listenFunc func(ctx context.Context, srv *server.Server, addr string) error

func listen(ctx context.Context, srv *server.Server, addr string) error {
	return srv.ListenAndServe(ctx, addr)
}

// consoleLevel is the request log level of the foreground server.
func consoleLevel() string {
	switch {
	case config.GetBool("debug", false):
		return "debug"
	case config.GetBool("quiet", false):
		return "error"
	default:
		return "info"
	}
}

// NewServeCmd creates the serve command with explicit dependencies.
func NewServeCmd(run listenFunc) *cobra.Command {
	if run == nil {
		panic("NewServeCmd: run dependency cannot be nil")
	}

	var (
		addr    string
		webRoot string
		noWatch bool
	)
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Publish the folder listings over HTTP",
		Long: `Serve the Certificates and Videos listings as JSON, the files themselves and
the web root. Folders are watched and the listings refreshed as files come and
go; without a watcher every request rescans the folder.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				config.Set("listen_addr", addr)
			}
			if cmd.Flags().Changed("web-root") {
				config.Set("web_root", webRoot)
			}

			logger := logging.NewConsole(cmd.ErrOrStderr(), consoleLevel())
			cat, store, err := newCatalog(logger)
			if err != nil {
				return fmt.Errorf("failed to open catalog: %w", err)
			}
			defer func() {
				if cerr := store.Close(); cerr != nil {
					logger.Warn("failed to close catalog", "error", cerr)
				}
			}()

			if err := cat.EnsureDirs(); err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if err := cat.RefreshAll(ctx); err != nil {
				return fmt.Errorf("initial scan failed: %w", err)
			}

			runner := hooks.NewRunner(hooks.OptionsFromConfig(), logger)
			defer runner.Wait()

			if noWatch {
				cat.SetLive(true)
			} else {
				go func() {
					err := cat.Watch(ctx, catalog.DefaultDebounce, func(section media.Section) {
						logger.Info("listing updated", "section", string(section))
						env := map[string]string{
							"KIOSKBOARD_SECTION": string(section),
							"KIOSKBOARD_DIR":     cat.Dir(section),
						}
						if err := runner.Run(ctx, hooks.ListingChanged, env); err != nil {
							logger.Error("listing hook aborted", "error", err)
						}
					})
					if err != nil {
						logger.Warn("folder watch unavailable, rescanning on every request", "error", err)
						cat.SetLive(true)
					}
				}()
			}

			listenAddr := config.Get("listen_addr", ":8000")
			colors.Info(fmt.Sprintf("Serving %s and %s on %s",
				cat.Dir(media.Certificates), cat.Dir(media.Videos), listenAddr))
			if err := runner.Run(ctx, hooks.ServerStarted, map[string]string{"KIOSKBOARD_ADDR": listenAddr}); err != nil {
				return err
			}
			srv := server.New(cat, config.Get("web_root", "."), logger)
			return run(ctx, srv, listenAddr)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", ":8000", "Address to listen on")
	serveCmd.Flags().StringVar(&webRoot, "web-root", ".", "Folder served for any other path")
	serveCmd.Flags().BoolVar(&noWatch, "no-watch", false, "Rescan the folders on every request instead of watching them")
	return serveCmd
}

func init() {
	cmd.RootCmd.AddCommand(NewServeCmd(listen))
}
