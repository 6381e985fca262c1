package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type parseCmd struct {
	open Opener
	out  io.Writer
}

func (*parseCmd) Name() string     { return "parse" }
func (*parseCmd) Synopsis() string { return "interpreta una transcripción de venta por voz" }
func (*parseCmd) Usage() string {
	return `pdv parse "<transcripción>"

  Ejemplo: pdv parse "Uma coxinha para João Félix no Pix"
  Muestra el borrador contra el catálogo actual sin registrar la venta.
`
}

func (*parseCmd) SetFlags(*flag.FlagSet) {}

func (c *parseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	transcript := strings.TrimSpace(strings.Join(f.Args(), " "))
	if transcript == "" {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	app, err := c.open(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	parsed, validation, err := app.Sales.ParseVoiceSale(ctx, transcript)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	w := writer(c.out)
	fmt.Fprintf(w, "Produto:    %s\n", parsed.ProductName)
	fmt.Fprintf(w, "Quantidade: %d\n", parsed.Quantity)
	fmt.Fprintf(w, "Cliente:    %s\n", parsed.CustomerName)
	fmt.Fprintf(w, "Pagamento:  %s\n", parsed.PaymentMethod)
	fmt.Fprintf(w, "Confiança:  %s\n", parsed.Confidence)
	for _, e := range validation.Errors {
		fmt.Fprintf(w, "  ! %s\n", e)
	}
	return subcommands.ExitSuccess
}
