// Command ebnf2json parses an EBNF grammar, in the form understood by golang.org/x/exp/ebnf,
// and prints its structure as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/alecthomas/packrat"
)

var (
	memoFlag  = kingpin.Flag("memo", "Memoize rule matches.").Bool()
	traceFlag = kingpin.Flag("trace", "Trace rule matches to stderr.").Bool()
	fileArg   = kingpin.Arg("file", "EBNF file (read from stdin if omitted).").File()
)

func main() {
	kingpin.CommandLine.Help = `An EBNF parser compatible with Go's exp/ebnf. The grammar is
in the form:

  Production  = name "=" [ Expression ] "." .
  Expression  = Alternative { "|" Alternative } .
  Alternative = Term { Term } .
  Term        = name | token [ "…" token ] | Group | Option | Repetition .
  Group       = "(" Expression ")" .
  Option      = "[" Expression "]" .
  Repetition  = "{" Expression "}" .
`
	kingpin.Parse()

	g := newGrammar()
	options := []packrat.Option{}
	if *memoFlag {
		options = append(options, packrat.UseMemoization())
	}
	if *traceFlag {
		options = append(options, packrat.Trace(os.Stderr))
	}
	parser, err := packrat.New(g.Grammar, options...)
	kingpin.FatalIfError(err, "")

	r := os.Stdin
	if *fileArg != nil {
		r = *fileArg
		defer r.Close()
	}
	ast, err := parser.Parse("", r)
	kingpin.FatalIfError(err, "")
	ebnf, err := g.ebnf(ast)
	kingpin.FatalIfError(err, "")

	bytes, _ := json.MarshalIndent(ebnf, "", "  ")
	fmt.Printf("%s\n", bytes)
}
