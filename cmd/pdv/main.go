package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/jhoicas/mb-vendas/internal/bootstrap"
	"github.com/jhoicas/mb-vendas/internal/interfaces/cli"
	"github.com/jhoicas/mb-vendas/pkg/config"
	"github.com/jhoicas/mb-vendas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: "development", Level: "warn", Output: os.Stderr})

	open := func(ctx context.Context) (*bootstrap.App, error) {
		return bootstrap.New(ctx, cfg, log)
	}

	commander := subcommands.NewCommander(flag.CommandLine, "pdv")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cli.Commands(cfg, open) {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
