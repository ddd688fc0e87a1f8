package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/hiddesc/hiddesc"
	"github.com/hiddesc/hiddesc/internal/types"
)

type lintCmd struct {
	sourceFlags
	Ignore []string `help:"Ignore notice codes (repeatable, supports globs like \"delimiter-*\")." placeholder:"CODE"`
	Quiet  bool     `short:"q" help:"No output, exit code only."`
}

func (c *lintCmd) Run(logger *slog.Logger) error {
	src, err := c.load(logger)
	if err != nil {
		return err
	}
	notices, e := hiddesc.Lint(src, compileOpts(logger)...)
	if !c.Quiet {
		for _, n := range notices {
			if c.ignored(n.Code) {
				continue
			}
			pos := hiddesc.PositionOf(src, int(n.Span.Start))
			fmt.Fprintf(os.Stdout, "%s:%d:%d: %s\n", c.File, pos.Line, pos.Column, n)
		}
	}
	if !e.Ok() {
		if c.Quiet {
			os.Exit(1)
		}
		return c.sourceError(e)
	}
	return nil
}

func (c *lintCmd) ignored(code string) bool {
	for _, pattern := range c.Ignore {
		if types.MatchGlob(pattern, code) {
			return true
		}
	}
	return false
}
