package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/ordset/ordset/internal/bst"
)

var cmdStats = &cli.Command{
	Name:  "stats",
	Usage: "load a key list and print tree statistics",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "keys",
			Usage:    "comma-separated keys to load",
			Required: true,
			EnvVars:  []string{"ORDSET_KEYS"},
		},
		&cli.BoolFlag{
			Name:  "render",
			Usage: "also print the tree diagram",
		},
	}, logFlags...),
	Action: runStats,
}

func runStats(cctx *cli.Context) error {
	tree := bst.New()
	if err := loadKeys(tree, cctx.String("keys")); err != nil {
		return err
	}

	out := cctx.App.Writer
	fmt.Fprintf(out, "keys:   %d\n", tree.Len())
	fmt.Fprintf(out, "height: %d\n", tree.Height())
	if min, ok := tree.Min(); ok {
		fmt.Fprintf(out, "min:    %d\n", min)
	}
	if max, ok := tree.Max(); ok {
		fmt.Fprintf(out, "max:    %d\n", max)
	}

	if cctx.Bool("render") && !tree.IsEmpty() {
		fmt.Fprint(out, tree.Render())
	}
	return nil
}
