package main

import (
	"fmt"

	"github.com/digitty-forks/data-validation/path"
	"github.com/digitty-forks/data-validation/pathpb"

	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func encode(cfg *EncodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Encode.Parse(cc, args)
	if err != nil {
		cfg.Encode.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, file := range args {
		msgs, err := readPathDoc(cc, file)
		if err != nil {
			return err
		}
		for _, m := range msgs {
			fmt.Fprintln(cc.Out, path.FromProto(m))
		}
	}
	return nil
}

func readPathDoc(cc *cli.Context, file string) ([]*pathpb.Path, error) {
	d, err := readAll(cc, file)
	if err != nil {
		return nil, err
	}
	var msgs []*pathpb.Path
	if err := yaml.Unmarshal(d, &msgs); err != nil {
		return nil, fmt.Errorf("error decoding %q: %w", file, err)
	}
	return msgs, nil
}
