package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "fpath").
		WithSynopsis("fpath [opts] command [opts] [args]").
		WithDescription("fpath is a tool for working with serialized feature paths.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fpathMain(cfg, cc, args)
		}).
		WithSubs(
			CheckCommand(cfg),
			EncodeCommand(cfg),
			DecodeCommand(cfg),
			SortCommand(cfg),
			FilterCommand(cfg),
			DiffCommand(cfg))
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("check").
		WithAliases("c", "ch").
		WithSynopsis("check [files]").
		WithDescription("check that serialized paths conform to the step grammar").
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
	cfg.Check = cmd
	return cmd
}

func EncodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EncodeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("encode").
		WithAliases("e", "en").
		WithSynopsis("encode [files]").
		WithDescription("encode YAML path messages as serialized paths, one per line").
		WithRun(func(cc *cli.Context, args []string) error {
			return encode(cfg, cc, args)
		})
	cfg.Encode = cmd
	return cmd
}

func DecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DecodeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("decode").
		WithAliases("d", "de").
		WithSynopsis("decode [files]").
		WithDescription("decode serialized paths into YAML path messages").
		WithRun(func(cc *cli.Context, args []string) error {
			return decode(cfg, cc, args)
		})
	cfg.Decode = cmd
	return cmd
}

func SortCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SortConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Sort, "sort").
		WithAliases("s").
		WithSynopsis("sort [-u] [files]").
		WithDescription("sort serialized paths in step order").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return sortPaths(cfg, cc, args)
		})
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter -e <expr> [-v] [files]").
		WithDescription(filterDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return filter(cfg, cc, args)
		})
}

const filterDescription = `filter keeps serialized paths matching an expression.

The expression is evaluated per path with the environment

  text   the serialized form
  steps  the list of raw steps
  size   the number of steps
  last   the final step, "" for the empty path

For example:

  fpath filter -e 'size > 2 && last == "missing"' stats-keys.txt`

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("di").
		WithSynopsis("diff a b").
		WithDescription("diff two files of serialized paths, sorted and normalized").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
