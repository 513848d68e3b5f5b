// Command viewshed computes viewsheds and view counts over ESRI ASCII
// elevation grids.
//
//	viewshed vshed    [--row R --col C] [--epsilon E] in.asc out.asc
//	viewshed vcount   in.asc out.asc
//	viewshed avcount  [--epsilon E] in.asc out.asc
//	viewshed svcount  [--block K] [--area-scaling] in.asc out.asc
//	viewshed nnvcount [--neighborhood K] counts.asc out.asc
//	viewshed info     [--epsilon E] in.asc
//	viewshed diff     a.asc b.asc out.asc
//	viewshed simp     [--max-side N] in.asc out.asc
//	viewshed render   [--colorizer NAME] [--viewshed v.asc --row R --col C] in.asc out.png
//
// Global flags --config, --workers and --quiet precede the subcommand.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/ttacon/chalk"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	t := newTool(ctx, os.Stdout, os.Stderr)
	if err := t.app().Run(os.Args); err != nil {
		stop()
		failWith(os.Stderr, err)
	}
}

// failWith prints err in red and exits.
func failWith(w io.Writer, err error) {
	fmt.Fprint(w, chalk.Red)
	log.New(w, "viewshed: ", 0).Print(err, chalk.Reset)
	os.Exit(1)
}
