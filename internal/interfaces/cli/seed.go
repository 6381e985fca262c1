package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
)

type seedCmd struct {
	open Opener
	out  io.Writer
}

func (*seedCmd) Name() string     { return "seed" }
func (*seedCmd) Synopsis() string { return "carga el catálogo inicial si el almacén está vacío" }
func (*seedCmd) Usage() string {
	return `pdv seed

  Escribe Coxinha, Refrigerante 2L, Combo Lanche, Pastel y Suco Natural
  cuando no hay productos. No modifica un catálogo existente.
`
}

func (*seedCmd) SetFlags(*flag.FlagSet) {}

func (c *seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.open(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	seeded, err := app.SeedCatalog(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	w := writer(c.out)
	if seeded {
		fmt.Fprintln(w, "catálogo inicial cargado")
	} else {
		fmt.Fprintln(w, "el catálogo ya tiene productos; sin cambios")
	}
	return subcommands.ExitSuccess
}

func writer(w io.Writer) io.Writer {
	if w == nil {
		return os.Stdout
	}
	return w
}
