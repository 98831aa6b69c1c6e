package main

import (
	"fmt"

	"github.com/digitty-forks/data-validation/path"

	"github.com/expr-lang/expr"
	"github.com/scott-cotton/cli"
)

func filter(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		cfg.Filter.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Expr == "" {
		return fmt.Errorf("%w: filter requires -e <expr>", cli.ErrUsage)
	}
	prg, err := expr.Compile(cfg.Expr, expr.AsBool())
	if err != nil {
		return fmt.Errorf("error compiling %q: %w", cfg.Expr, err)
	}
	return eachLine(cc, args, func(file string, n int, line string) error {
		p, err := path.Parse(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", file, n, err)
		}
		res, err := expr.Run(prg, filterEnv(p))
		if err != nil {
			return fmt.Errorf("%s:%d: error evaluating %q: %w", file, n, cfg.Expr, err)
		}
		keep, _ := res.(bool)
		if keep != cfg.Invert {
			fmt.Fprintln(cc.Out, p)
		}
		return nil
	})
}

func filterEnv(p path.Path) map[string]any {
	last := ""
	if !p.Empty() {
		last = p.Last()
	}
	return map[string]any{
		"text":  p.String(),
		"steps": p.Steps(),
		"size":  p.Len(),
		"last":  last,
	}
}
