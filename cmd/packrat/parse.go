package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"

	"github.com/alecthomas/packrat"
)

type parseCmd struct {
	GrammarFlags `embed:""`

	Memo  bool   `help:"Memoize rule matches."`
	Trace bool   `help:"Trace rule matches to stderr."`
	Stats bool   `help:"Print rule statistics to stderr."`
	Input string `arg:"" default:"-" help:"File to parse (read from stdin if omitted)."`
}

func (c *parseCmd) Help() string {
	return `
Parses the input with either an EBNF grammar or, by default, the structural
search pattern grammar and prints the resulting AST.
`
}

func (c *parseCmd) Run() error {
	var r io.Reader = os.Stdin
	filename := "<stdin>"
	if c.Input != "-" {
		f, err := os.Open(c.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r, filename = f, c.Input
	}

	g, pg, err := c.load()
	if err != nil {
		return err
	}
	options := []packrat.Option{}
	if c.Memo {
		options = append(options, packrat.UseMemoization())
	}
	if c.Trace {
		options = append(options, packrat.Trace(os.Stderr))
	}
	stats := packrat.NewStatistics()
	if c.Stats {
		options = append(options, packrat.Listen(stats))
	}
	parser, err := packrat.New(g, options...)
	if err != nil {
		return err
	}

	ast, err := parser.Parse(filename, r)
	if err != nil {
		return err
	}
	log.Infof("parsed %d tokens from %s", ast.End, filename)
	fmt.Println(repr.String(toTree(ast), repr.Indent("  "), repr.OmitEmpty(true)))
	if pg != nil {
		compiled, err := pg.Compile(ast)
		if err != nil {
			return err
		}
		fmt.Println(repr.String(compiled, repr.Indent("  "), repr.OmitEmpty(true)))
	}
	if c.Stats {
		fmt.Fprint(os.Stderr, stats)
	}
	return nil
}

// A printable AST node.
type tree struct {
	Type     string
	Token    string
	Pos      string
	Children []*tree
}

func toTree(node *packrat.Node) *tree {
	out := &tree{Type: node.Type.Name()}
	if node.Token != nil {
		out.Pos = node.Token.Pos.String()
		if node.Type == packrat.TokenNode {
			out.Token = node.Token.Value
		}
	}
	for _, child := range node.Children {
		out.Children = append(out.Children, toTree(child))
	}
	return out
}
