// Package main provides the entry point for the ordset CLI.
package main

import (
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"

	"github.com/ordset/ordset/internal/bst"
	"github.com/ordset/ordset/internal/shell"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var logFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "log-level",
		Usage:   "log verbosity (debug, info, warn, error)",
		Value:   "info",
		EnvVars: []string{"ORDSET_LOG_LEVEL"},
	},
	&cli.StringFlag{
		Name:    "log-format",
		Usage:   "log output format (text or json)",
		Value:   "text",
		EnvVars: []string{"ORDSET_LOG_FORMAT"},
	},
}

func run(args []string) error {
	return newApp().Run(args)
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "ordset",
		Usage:   "in-memory ordered key store with an interactive shell",
		Version: versioninfo.Short(),
		Flags: append([]cli.Flag{
			&cli.StringFlag{
				Name:    "keys",
				Usage:   "comma-separated keys to load before the shell starts",
				EnvVars: []string{"ORDSET_KEYS"},
			},
		}, logFlags...),
		Action: runShell,
	}
	app.Commands = []*cli.Command{
		cmdStats,
	}
	return app
}

func runShell(cctx *cli.Context) error {
	logger := configLogger(cctx, os.Stderr)

	tree := bst.New()
	if err := loadKeys(tree, cctx.String("keys")); err != nil {
		return err
	}

	logger.Debug("starting shell", "preloaded", tree.Len())
	return shell.New(tree, os.Stdin, cctx.App.Writer, logger).Run()
}
