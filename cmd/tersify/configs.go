package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tersify/go-tersify/encode"
	"github.com/tersify/go-tersify/plugin"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='encode with color'"`

	J bool `cli:"name=j aliases=json desc='output in json'"`
	Y bool `cli:"name=y aliases=yaml desc='output in yaml'"`

	OutFormat *encode.Format

	Out      string
	CloseOut func() error

	reg *plugin.Registry

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **encode.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := encode.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// pluginOpt registers a summarization plugin from a command line
// argument of the form type=expression, e.g.
//
//	-plugin 'bank.Card="ending " + Number[-4:]'
func (cfg *MainConfig) pluginOpt(_ *cli.Context, a string) (any, error) {
	typeName, src, ok := strings.Cut(a, "=")
	if !ok {
		return nil, fmt.Errorf("%w: argument %q expected type=expression", cli.ErrUsage, a)
	}
	p, err := plugin.NewExpr(typeName, src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.reg.Register(p)
	return 0, nil
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat encode.Format
	switch {
	case cfg.Y:
		fmat = encode.YAMLFormat
	case cfg.J:
		fmat = encode.JSONFormat
	}
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig

	Raw bool `cli:"name=raw desc='render without tersifying'"`

	View *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Diff *cli.Command
}

type ReportConfig struct {
	*MainConfig

	PatchOut bool `cli:"name=patch desc='output an RFC 6902 patch instead of the replacement list'"`

	Report *cli.Command
}

type PluginsConfig struct {
	*MainConfig

	Plugins *cli.Command
}
