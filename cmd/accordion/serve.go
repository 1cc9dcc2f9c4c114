package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/accordion"
	httpadapter "github.com/3-lines-studio/accordion/internal/adapters/http"
	"github.com/3-lines-studio/accordion/internal/dom"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr   string
		port   int
		title    string
		format   string
		assetDir string
	)

	cmd := &cobra.Command{
		Use:   "serve FILE",
		Short: "Serve an interactive accordion page",
		Long: `Serve the accordion described by FILE.

Clicks in the browser are posted back to the server, which runs the
toggle logic and returns the new panel classes and heights. All visitors
share one accordion.

With ACCORDION_DEV=1 the stylesheet and script are read from the module's
internal/assets/static directory, found by walking up from the working
directory, or from --asset-dir.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.loadOptions(args[0], format)
			if err != nil {
				return err
			}

			acc, err := accordion.New(dom.NewDocument(opts.Container), opts, accordion.WithLogger(a.logger))
			if err != nil {
				return err
			}
			defer acc.Stop()

			if title == "" {
				title = opts.MainTitle
			}
			server := httpadapter.NewServer(acc, httpadapter.Config{
				Addr:     addr,
				Port:     port,
				Title:    title,
				IsDev:    a.isDev,
				AssetDir: assetDir,
			}, a.logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			a.output.PrintSuccess("Serving %d panel(s) on http://%s:%d", acc.Len(), addr, port)
			if err := server.ListenAndServe(ctx); err != nil {
				return fmt.Errorf("serve: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "localhost", "Address to bind to")
	cmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on")
	cmd.Flags().StringVar(&title, "title", "", "Page title (defaults to the main title)")
	cmd.Flags().StringVar(&format, "format", "", "Override the content format (html, sanitized, markdown)")
	cmd.Flags().StringVar(&assetDir, "asset-dir", "", "Directory to read assets from in dev mode")
	return cmd
}
