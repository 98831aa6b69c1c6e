package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
)

// eachLine feeds the non-empty lines of the given files to fn; "-" and
// an empty file list mean stdin.  Serialized paths containing raw
// newline bytes inside quoted steps cannot be handled by the
// line-oriented commands.
func eachLine(cc *cli.Context, files []string, fn func(file string, n int, line string) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := eachFileLine(cc, file, fn); err != nil {
			return err
		}
	}
	return nil
}

func eachFileLine(cc *cli.Context, file string, fn func(file string, n int, line string) error) error {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	n := 0
	for sc.Scan() {
		n++
		line := sc.Text()
		if line == "" {
			continue
		}
		if err := fn(file, n, line); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("error reading %q: %w", file, err)
	}
	return nil
}

func readAll(cc *cli.Context, file string) ([]byte, error) {
	var r io.Reader
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", file, err)
	}
	return d, nil
}
