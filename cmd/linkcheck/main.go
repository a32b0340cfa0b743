package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/linkcheck/cmd/linkcheck/commands"
	"git.home.luguber.info/inful/linkcheck/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("linkcheck"),
		kong.Description("Link-integrity checker and repairer for documentation trees"),
		kong.Vars{"version": version.Version},
	)
	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
