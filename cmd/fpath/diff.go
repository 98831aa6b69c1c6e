package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/digitty-forks/data-validation/path"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two files", cli.ErrUsage)
	}
	from, err := loadSorted(cc, args[0])
	if err != nil {
		return err
	}
	to, err := loadSorted(cc, args[1])
	if err != nil {
		return err
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(from, to, true)
	if cfg.useColor(cc.Out) {
		_, err := io.WriteString(cc.Out, dmp.DiffPrettyText(diffs))
		return err
	}
	return renderDiffs(cc.Out, diffs)
}

// loadSorted reads serialized paths from file, normalizes them through
// the codec, and returns them sorted one per line.
func loadSorted(cc *cli.Context, file string) (string, error) {
	var paths []path.Path
	if err := eachFileLine(cc, file, func(file string, n int, line string) error {
		p, err := path.Parse(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", file, n, err)
		}
		paths = append(paths, p)
		return nil
	}); err != nil {
		return "", err
	}
	path.Sort(paths)
	var b strings.Builder
	for _, p := range paths {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	return b.String(), nil
}

func renderDiffs(w io.Writer, diffs []diffpatch.Diff) error {
	for _, d := range diffs {
		prefix := "  "
		switch d.Type {
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffDelete:
			prefix = "- "
		}
		for _, line := range strings.Split(strings.TrimRight(d.Text, "\n"), "\n") {
			if _, err := fmt.Fprintf(w, "%s%s\n", prefix, line); err != nil {
				return err
			}
		}
	}
	return nil
}
