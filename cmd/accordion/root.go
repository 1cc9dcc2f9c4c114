package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/accordion/internal/adapters/cli"
	"github.com/3-lines-studio/accordion/internal/adapters/fs"
	"github.com/3-lines-studio/accordion/internal/config"
	"github.com/3-lines-studio/accordion/internal/content"
	"github.com/3-lines-studio/accordion/internal/core"
)

// errReported marks failures that were already printed.
var errReported = errors.New("reported")

type app struct {
	files  fs.FileSystem
	output *cli.Output
	stdout io.Writer
	logger *slog.Logger
	isDev  bool
}

func run(a *app, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			a.output.PrintError("%v", err)
		}
		return 1
	}
	return 0
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "accordion",
		Short:         "Render collapsible panel lists from YAML or JSON options",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(a.stdout)

	root.AddCommand(
		newValidateCmd(a),
		newRenderCmd(a),
		newServeCmd(a),
	)
	return root
}

// loadOptions reads path and applies a --format override. Validation
// problems are printed in full and reported as errReported.
func (a *app) loadOptions(path, format string) (core.Options, error) {
	if !a.files.FileExists(path) {
		return core.Options{}, fmt.Errorf("options file %s does not exist", path)
	}
	opts, err := config.Load(a.files, path)
	if err != nil {
		var errs core.ValidationErrors
		if errors.As(err, &errs) {
			a.output.PrintValidation(path, errs)
			return core.Options{}, errReported
		}
		return core.Options{}, err
	}

	if format != "" {
		f, err := content.ParseFormat(format)
		if err != nil {
			return core.Options{}, err
		}
		opts.Format = f
	}
	return opts, nil
}
