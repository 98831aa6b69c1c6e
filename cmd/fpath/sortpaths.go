package main

import (
	"fmt"

	"github.com/digitty-forks/data-validation/path"

	"github.com/scott-cotton/cli"
)

func sortPaths(cfg *SortConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sort.Parse(cc, args)
	if err != nil {
		cfg.Sort.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var paths []path.Path
	if err := eachLine(cc, args, func(file string, n int, line string) error {
		p, err := path.Parse(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", file, n, err)
		}
		paths = append(paths, p)
		return nil
	}); err != nil {
		return err
	}
	path.Sort(paths)
	for i, p := range paths {
		if cfg.Unique && i > 0 && p.Equal(paths[i-1]) {
			continue
		}
		fmt.Fprintln(cc.Out, p)
	}
	return nil
}
