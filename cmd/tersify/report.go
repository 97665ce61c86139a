package main

import (
	"fmt"

	tersify "github.com/tersify/go-tersify"
	"github.com/tersify/go-tersify/encode"
	"github.com/tersify/go-tersify/ir"
	"github.com/tersify/go-tersify/report"

	"github.com/scott-cotton/cli"
)

func runReport(cfg *ReportConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Report.Parse(cc, args)
	if err != nil {
		cfg.Report.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	eng := tersify.New(cfg.reg)
	for _, arg := range args {
		doc, err := getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, reps, err := eng.TersifyReport(doc)
		if err != nil {
			return fmt.Errorf("error tersifying %s: %w", arg, err)
		}
		if cfg.PatchOut {
			d, err := report.Patch(res, reps)
			if err != nil {
				return fmt.Errorf("error building patch for %s: %w", arg, err)
			}
			if _, err := cc.Out.Write(append(d, '\n')); err != nil {
				return err
			}
			continue
		}
		if err := encode.Encode(replacementsNode(reps), cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return fmt.Errorf("error encoding report for %s: %w", arg, err)
		}
	}
	return nil
}

func replacementsNode(reps []tersify.Replacement) *ir.Node {
	vals := make([]*ir.Node, len(reps))
	for i, rep := range reps {
		vals[i] = ir.FromMap(map[string]*ir.Node{
			"path":       ir.FromString(rep.Path),
			"type":       ir.FromString(rep.TypeName),
			"id":         ir.FromString(rep.Identity),
			"structural": ir.FromBool(rep.Structural),
		})
	}
	return ir.FromSlice(vals)
}
