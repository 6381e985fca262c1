package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/google/subcommands"

	"github.com/jhoicas/mb-vendas/internal/domain/entity"
	"github.com/jhoicas/mb-vendas/pkg/currency"
)

type reportCmd struct {
	open Opener
	out  io.Writer

	from string
	to   string
	pdf  string
}

func (*reportCmd) Name() string     { return "report" }
func (*reportCmd) Synopsis() string { return "resume las ventas confirmadas de un período" }
func (*reportCmd) Usage() string {
	return `pdv report [-from YYYY-MM-DD] [-to YYYY-MM-DD] [-pdf <archivo>]

  Muestra total de ventas, faturamento por forma de pago, por producto y por
  vendedor. Con -pdf además escribe el relatorio en PDF.
`
}

func (c *reportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.from, "from", "", "Fecha inicial inclusiva (YYYY-MM-DD).")
	f.StringVar(&c.to, "to", "", "Fecha final inclusiva (YYYY-MM-DD).")
	f.StringVar(&c.pdf, "pdf", "", "Ruta del PDF a generar.")
}

func (c *reportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	app, err := c.open(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer app.Close()

	report, err := app.Sales.GetSalesReport(ctx, c.from, c.to)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printReport(writer(c.out), report)

	if c.pdf != "" {
		doc, err := app.Sales.ReportPDF(ctx, c.from, c.to)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if err := os.WriteFile(c.pdf, doc, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		fmt.Fprintf(writer(c.out), "PDF escrito en %s\n", c.pdf)
	}
	return subcommands.ExitSuccess
}

func printReport(w io.Writer, r *entity.SalesReport) {
	fmt.Fprintf(w, "Vendas: %d\n", r.TotalSales)
	fmt.Fprintf(w, "Faturamento: %s\n", currency.FormatBRL(r.TotalRevenue))
	fmt.Fprintf(w, "Descontos: %s\n", currency.FormatBRL(r.TotalDiscount))

	fmt.Fprintln(w, "\nFormas de pagamento:")
	for _, m := range entity.PaymentMethods {
		if v, ok := r.RevenueByPaymentMethod[m]; ok {
			fmt.Fprintf(w, "  %-12s %s\n", m, currency.FormatBRL(v))
		}
	}

	fmt.Fprintln(w, "\nProdutos:")
	ids := make([]string, 0, len(r.ByProduct))
	for id := range r.ByProduct {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		p := r.ByProduct[id]
		fmt.Fprintf(w, "  %-20s %4d  %s\n", p.ProductName, p.Quantity, currency.FormatBRL(p.Revenue))
	}

	fmt.Fprintln(w, "\nVendedores:")
	sellers := make([]string, 0, len(r.BySeller))
	for id := range r.BySeller {
		sellers = append(sellers, id)
	}
	sort.Strings(sellers)
	for _, id := range sellers {
		s := r.BySeller[id]
		fmt.Fprintf(w, "  %-20s %4d  %s\n", s.SellerName, s.SalesCount, currency.FormatBRL(s.Revenue))
	}
}
