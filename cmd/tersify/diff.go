package main

import (
	"bytes"
	"fmt"
	"io"

	tersify "github.com/tersify/go-tersify"
	"github.com/tersify/go-tersify/encode"
	"github.com/tersify/go-tersify/ir"

	"github.com/scott-cotton/cli"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	eng := tersify.New(cfg.reg)
	changed := false
	for _, arg := range args {
		doc, err := getObjFile(cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		res, err := eng.Tersify(doc)
		if err != nil {
			return fmt.Errorf("error tersifying %s: %w", arg, err)
		}
		if res == doc {
			continue
		}
		changed = true
		if err := diffDocs(cfg, cc.Out, doc, res); err != nil {
			return err
		}
	}
	if changed {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// diffDocs compares the plain text renderings. Colors are applied to
// the diff itself, never to the rendering being compared.
func diffDocs(cfg *DiffConfig, w io.Writer, from, to *ir.Node) error {
	before, err := renderPlain(cfg, from)
	if err != nil {
		return err
	}
	after, err := renderPlain(cfg, to)
	if err != nil {
		return err
	}
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(before, after, true)
	if cfg.Color {
		_, err := w.Write([]byte(diffCfg.DiffPrettyText(diffs)))
		return err
	}
	return writePlainDiff(w, diffs)
}

func renderPlain(cfg *DiffConfig, n *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	var fmat encode.Format
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	} else if cfg.J {
		fmat = encode.JSONFormat
	}
	if err := encode.Encode(n, buf, encode.EncodeFormat(fmat)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// writePlainDiff marks insertions {+like this+} and deletions
// [-like this-] in wdiff style.
func writePlainDiff(w io.Writer, diffs []diffpatch.Diff) error {
	for _, d := range diffs {
		var text string
		switch d.Type {
		case diffpatch.DiffInsert:
			text = "{+" + d.Text + "+}"
		case diffpatch.DiffDelete:
			text = "[-" + d.Text + "-]"
		default:
			text = d.Text
		}
		if _, err := w.Write([]byte(text)); err != nil {
			return err
		}
	}
	return nil
}
