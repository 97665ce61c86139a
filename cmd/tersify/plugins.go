package main

import (
	"fmt"
	"sort"

	"github.com/scott-cotton/cli"
)

func plugins(cfg *PluginsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Plugins.Parse(cc, args); err != nil {
		return err
	}
	names := cfg.reg.TypeNames()
	sort.Strings(names)
	fmt.Fprintf(cc.Out, "configured plugins:\n")
	for _, name := range names {
		p := cfg.reg.Lookup(name)
		if s, ok := p.(fmt.Stringer); ok {
			fmt.Fprintf(cc.Out, "\t- %s\n", s)
			continue
		}
		fmt.Fprintf(cc.Out, "\t- %s\n", name)
	}
	return nil
}
