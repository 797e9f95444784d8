// Command packrat parses files with packrat grammars.
package main

import (
	"github.com/alecthomas/kong"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var (
	version = "dev"
	log     = commonlog.GetLogger("packrat.cmd")
	cli     struct {
		Version kong.VersionFlag
		Verbose int `short:"v" type:"counter" help:"Increase log verbosity."`

		Parse   parseCmd   `cmd:"" help:"Parse a file and print its AST."`
		Grammar grammarCmd `cmd:"" help:"Print a grammar."`
	}
)

func main() {
	kctx := kong.Parse(&cli,
		kong.Description(`A command-line tool for packrat grammars.`),
		kong.Vars{"version": version},
	)
	commonlog.Configure(cli.Verbose, nil)
	err := kctx.Run()
	kctx.FatalIfErrorf(err)
}
