package main

import (
	"bytes"
	"fmt"
	"io"
	"os"

	tersify "github.com/tersify/go-tersify"
	"github.com/tersify/go-tersify/encode"
	"github.com/tersify/go-tersify/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return viewReader(cfg, cc.Out, cc.In)
	}
	return viewFiles(cfg, cc.Out, args)
}

func viewFiles(cfg *ViewConfig, w io.Writer, files []string) error {
	for i, file := range files {
		if err := viewFile(cfg, w, file); err != nil {
			return err
		}
		if i < len(files)-1 {
			w.Write([]byte("\n---\n"))
		}
	}
	return nil
}

func viewFile(cfg *ViewConfig, w io.Writer, file string) error {
	var (
		f   *os.File
		err error
	)
	if file != "-" {
		f, err = os.Open(file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		defer f.Close()
	} else {
		f = os.Stdin
	}
	if err := viewReader(cfg, w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func viewReader(cfg *ViewConfig, w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	eng := tersify.New(cfg.reg)
	docs := bytes.Split(in, []byte("\n---\n"))
	n := len(docs)
	opts := cfg.encOpts(w)
	for i, doc := range docs {
		y, err := parse.Parse(doc)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		if !cfg.Raw {
			y, err = eng.Tersify(y)
			if err != nil {
				return fmt.Errorf("error tersifying document %d: %w", i, err)
			}
		}
		if err := encode.Encode(y, w, opts...); err != nil {
			return fmt.Errorf("error encoding result %d: %w", i, err)
		}
		if i < n-1 {
			if _, err := w.Write([]byte("\n---\n")); err != nil {
				return fmt.Errorf("error writing document %d: %w", i, err)
			}
		}
	}
	return nil
}
