package main

import (
	"os"

	"github.com/alecthomas/kong"
)

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("strparse"),
		kong.Description("Parse and decode raw text: integer lists, tokens, key=value pairs, percent and hex encodings."),
		kong.UsageOnError(),
	)

	g, err := cli.globals(os.Stdin, os.Stdout)
	ctx.FatalIfErrorf(err)

	err = ctx.Run(g)
	_ = g.Logger.Sync()
	ctx.FatalIfErrorf(err)
}
