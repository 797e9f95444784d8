package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/packrat"
	"github.com/alecthomas/packrat/ebnf"
	"github.com/alecthomas/packrat/grammars/pattern"
	"github.com/alecthomas/packrat/lexer"
)

type GrammarFlags struct {
	Grammar string `short:"g" type:"existingfile" help:"EBNF grammar file. Defaults to the structural search pattern grammar."`
	Start   string `short:"s" default:"Start" help:"Start production of the EBNF grammar."`
}

// Load the grammar. The pattern grammar is returned as well when it is used.
func (f *GrammarFlags) load() (*packrat.Grammar, *pattern.Grammar, error) {
	if f.Grammar == "" {
		g := pattern.New()
		return g.Grammar, g, nil
	}
	r, err := os.Open(f.Grammar)
	if err != nil {
		return nil, nil, err
	}
	defer r.Close()
	g, err := ebnf.Parse(f.Grammar, r, f.Start, lexer.TextScannerLexer)
	if err != nil {
		return nil, nil, err
	}
	log.Debugf("loaded %d rules from %s", len(g.Rules()), f.Grammar)
	return g, nil, nil
}

type grammarCmd struct {
	GrammarFlags `embed:""`

	Dump bool `help:"Dump the decorated matcher graph instead of EBNF."`
	Memo bool `help:"Decorate with memoization when dumping."`
}

func (c *grammarCmd) Run() error {
	g, _, err := c.load()
	if err != nil {
		return err
	}
	if !c.Dump {
		fmt.Println(g)
		return nil
	}
	if err := packrat.Decorate(g, c.Memo); err != nil {
		return err
	}
	fmt.Print(packrat.Dump(g.Root()))
	return nil
}
