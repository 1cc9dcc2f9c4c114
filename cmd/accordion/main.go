package main

import (
	"os"

	"github.com/3-lines-studio/accordion/internal/adapters/cli"
	"github.com/3-lines-studio/accordion/internal/adapters/fs"
	"github.com/3-lines-studio/accordion/internal/env"
	"github.com/3-lines-studio/accordion/internal/logging"
)

func main() {
	mode := env.DetectMode()
	app := &app{
		files:  fs.NewOSFileSystem(),
		output: cli.NewOutput(),
		stdout: os.Stdout,
		logger: logging.New(os.Stderr, mode),
		isDev:  mode == env.ModeDev,
	}
	os.Exit(run(app, os.Args[1:]))
}
