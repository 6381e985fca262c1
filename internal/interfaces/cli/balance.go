package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/jhoicas/mb-vendas/pkg/currency"
)

type balanceCmd struct {
	open Opener
	out  io.Writer
}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "muestra el saldo de caja" }
func (*balanceCmd) Usage() string {
	return `pdv balance

  Suma entradas menos salidas de todo el historial de caja.
`
}

func (*balanceCmd) SetFlags(*flag.FlagSet) {}

func (c *balanceCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.open(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	balance, err := app.Cash.Balance(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(writer(c.out), "Saldo: %s\n", currency.FormatBRL(balance))
	return subcommands.ExitSuccess
}
