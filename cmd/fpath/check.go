package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/digitty-forks/data-validation/path"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	bad := 0
	if err := eachLine(cc, args, func(file string, n int, line string) error {
		_, perr := path.Parse(line)
		if perr == nil {
			return nil
		}
		bad++
		fmt.Fprintf(cc.Out, "%s:%d: %v\n", file, n, perr)
		var pe *path.ParseError
		if errors.As(perr, &pe) {
			fmt.Fprintf(cc.Out, "  %s\n", highlight(cfg.MainConfig, cc.Out, line, pe.Off))
		}
		return nil
	}); err != nil {
		return err
	}
	if bad > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// highlight marks the input from the offending offset onward.
func highlight(cfg *MainConfig, w io.Writer, line string, off int) string {
	if off > len(line) {
		off = len(line)
	}
	if !cfg.useColor(w) {
		return line[:off] + " >>> " + line[off:]
	}
	return line[:off] + color.New(color.FgRed, color.Bold).Sprint(line[off:])
}
