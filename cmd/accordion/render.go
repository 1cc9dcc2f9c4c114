package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/accordion"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		out      string
		title    string
		format   string
		open     int
		fragment bool
	)

	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render an options file to a standalone HTML page",
		Long: `Render an options file to HTML.

The page inlines the stylesheet and needs no server. With --fragment only
the host element is written, for embedding in an existing page.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.loadOptions(args[0], format)
			if err != nil {
				return err
			}

			export := accordion.ExportOptions{Title: title, Fragment: fragment}
			if cmd.Flags().Changed("open") {
				export.Open = &open
			}
			html, err := accordion.ExportStatic(opts, export, accordion.WithLogger(a.logger))
			if err != nil {
				return err
			}

			if out == "" {
				_, err := io.WriteString(a.stdout, html)
				return err
			}

			if dir := filepath.Dir(out); dir != "." {
				if err := a.files.MkdirAll(dir, 0o755); err != nil {
					return fmt.Errorf("create %s: %w", dir, err)
				}
			}
			if err := a.files.WriteFile(out, []byte(html), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			a.output.PrintSuccess("Rendered %d panel(s)", len(opts.Panels))
			a.output.PrintFile(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "Write to this file instead of stdout")
	cmd.Flags().StringVar(&title, "title", "", "Page title (defaults to the main title)")
	cmd.Flags().StringVar(&format, "format", "", "Override the content format (html, sanitized, markdown)")
	cmd.Flags().IntVar(&open, "open", 0, "Index of a panel to render expanded (default none)")
	cmd.Flags().BoolVar(&fragment, "fragment", false, "Write only the host element")
	return cmd
}
