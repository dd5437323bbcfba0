package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/herohde/vice/pkg/engine"
	"github.com/herohde/vice/pkg/engine/console"
	"github.com/herohde/vice/pkg/engine/uci"
	"github.com/seekerror/logw"
)

var (
	depth = flag.Uint("depth", 0, "Default search depth limit (0 for no limit, subject to go depth/movetime)")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: vice [options]

VICE is a UCI chess engine searching under alpha-beta with quiescence.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, "vice", "vice contributors", engine.WithOptions(engine.Options{Depth: *depth}))

	in := engine.ReadStdinLines(ctx)
	switch <-in {
	case uci.ProtocolName:
		out := uci.NewDriver(ctx, e, in)
		engine.WriteStdoutLines(ctx, out)

	case console.ProtocolName:
		out := console.NewDriver(ctx, e, in)
		engine.WriteStdoutLines(ctx, out)

	default:
		flag.Usage()
		logw.Exitf(ctx, "Protocol not supported")
	}
}
