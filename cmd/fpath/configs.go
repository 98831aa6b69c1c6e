package main

import (
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='color output'"`

	Main *cli.Command
}

func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type CheckConfig struct {
	*MainConfig

	Check *cli.Command
}

type EncodeConfig struct {
	*MainConfig

	Encode *cli.Command
}

type DecodeConfig struct {
	*MainConfig

	Decode *cli.Command
}

type SortConfig struct {
	*MainConfig

	Unique bool `cli:"name=u desc='drop duplicate paths'"`
	Sort   *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Expr   string `cli:"name=e desc='expression to evaluate per path'"`
	Invert bool   `cli:"name=v desc='keep paths NOT matching the expression'"`
	Filter *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}
