package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/tersify/go-tersify/plugin"

	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{reg: plugin.NewRegistry()}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: yaml/y, json/j",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		},
		&cli.Opt{
			Name:        "plugin",
			Aliases:     []string{"P"},
			Description: "summarization plugin as type=expression",
			Type:        cli.NamedFuncOpt(cfg.pluginOpt, "(type=expr)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "tersify").
		WithSynopsis("tersify [opts] command [opts]").
		WithDescription("tersify summarizes complex objects nested in documents.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tersifyMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			DiffCommand(cfg),
			ReportCommand(cfg),
			PluginsCommand(cfg))
}

func tersifyMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.J && cfg.Y {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("tersify documents and render the result").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithSynopsis("diff [files]").
		WithDescription("show what tersification changed, as a text diff").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func ReportCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReportConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("report").
		WithAliases("r", "re").
		WithOpts(opts...).
		WithSynopsis("report [-patch] [files]").
		WithDescription("list the replacements tersification makes").
		WithRun(func(cc *cli.Context, args []string) error {
			return runReport(cfg, cc, args)
		})
	cfg.Report = cmd
	return cmd
}

func PluginsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PluginsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Plugins, "plugins").
		WithAliases("pl").
		WithSynopsis("plugins").
		WithDescription("list configured plugins").
		WithRun(func(cc *cli.Context, args []string) error {
			return plugins(cfg, cc, args)
		})
}
