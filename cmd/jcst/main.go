// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

// Program jcst reads a JSON text and prints its tokens and concrete syntax
// tree, for diagnostics.
//
// Usage:
//
//	jcst [flags] [file]
//
// If no file is given, or the file is "-", input is read from stdin.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/creachadair/jcst"
	"github.com/creachadair/jcst/cst"
	"github.com/tailscale/hujson"
)

// cli defines the command-line interface. Each flag can also be set from the
// environment.
type cli struct {
	File   string `arg:"" optional:"" default:"-" help:"Path of input JSON file (- for stdin)."`
	Tokens bool   `help:"Print the token sequence before the tree." short:"t" env:"JCST_TOKENS"`
	Indent bool   `help:"Print the tree indented, one node per line." short:"i" env:"JCST_INDENT"`
	JWCC   bool   `name:"jwcc" help:"Accept JSON with commas and comments in the input." env:"JCST_JWCC"`
	Check  bool   `help:"Verify the structure of the parsed tree." short:"c" env:"JCST_CHECK"`
	Debug  bool   `help:"Enable debug logging." short:"d" env:"JCST_DEBUG"`
}

func newParser(c *cli) (*kong.Kong, error) {
	return kong.New(c,
		kong.Name("jcst"),
		kong.Description("Print the tokens and concrete syntax tree of a JSON text."),
		kong.UsageOnError(),
	)
}

func main() {
	var c cli
	p, err := newParser(&c)
	if err != nil {
		panic(err)
	}
	_, err = p.Parse(os.Args[1:])
	p.FatalIfErrorf(err)

	if err := run(&c, os.Stdin, os.Stdout, newLogger(os.Stderr, c.Debug)); err != nil {
		fmt.Fprintf(os.Stderr, "jcst: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run reads the input selected by c, and writes the requested renderings of
// it to out.
func run(c *cli, stdin io.Reader, out io.Writer, log *slog.Logger) error {
	src, err := readInput(c.File, stdin)
	if err != nil {
		return err
	}
	log.Debug("read input", "file", c.File, "bytes", len(src))

	if c.JWCC {
		src, err = hujson.Standardize(src)
		if err != nil {
			return fmt.Errorf("standardize %s: %w", c.File, err)
		}
		log.Debug("standardized JWCC input", "bytes", len(src))
	}

	toks, err := jcst.Tokenize(string(src))
	if err != nil {
		return fmt.Errorf("tokenize %s: %w", c.File, err)
	}
	log.Debug("tokenized input", "tokens", len(toks))
	if c.Tokens {
		for i, tok := range toks {
			fmt.Fprintf(out, "%d\t%v\t%v\n", i, tok.Span, tok)
		}
	}

	root, err := cst.Parse(toks)
	if err != nil {
		return fmt.Errorf("parse %s: %w", c.File, err)
	}
	if c.Check {
		if err := cst.Check(root); err != nil {
			return fmt.Errorf("check %s: %w", c.File, err)
		}
		log.Debug("tree structure is valid")
	}

	if c.Indent {
		return cst.Format(out, root)
	}
	_, err = fmt.Fprintln(out, root)
	return err
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path == "" || path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}
