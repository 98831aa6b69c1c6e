package main

import (
	"fmt"

	"github.com/digitty-forks/data-validation/path"
	"github.com/digitty-forks/data-validation/pathpb"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func decode(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
	if err != nil {
		cfg.Decode.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var msgs []*pathpb.Path
	if err := eachLine(cc, args, func(file string, n int, line string) error {
		p, err := path.Parse(line)
		if err != nil {
			return fmt.Errorf("%s:%d: %w", file, n, err)
		}
		msgs = append(msgs, p.AsProto())
		return nil
	}); err != nil {
		return err
	}
	d, err := yaml.Marshal(msgs)
	if err != nil {
		return fmt.Errorf("error encoding paths: %w", err)
	}
	_, err = cc.Out.Write(d)
	return err
}
