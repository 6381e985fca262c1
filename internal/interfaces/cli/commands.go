// Package cli implementa los subcomandos de pdv (google/subcommands).
package cli

import (
	"context"

	"github.com/google/subcommands"

	"github.com/jhoicas/mb-vendas/internal/bootstrap"
	"github.com/jhoicas/mb-vendas/pkg/config"
)

// Opener abre la aplicación sólo para los comandos que tocan el almacenamiento.
type Opener func(ctx context.Context) (*bootstrap.App, error)

// Commands devuelve los subcomandos registrables.
func Commands(cfg *config.Config, open Opener) []subcommands.Command {
	return []subcommands.Command{
		&seedCmd{open: open},
		&balanceCmd{open: open},
		&reportCmd{open: open},
		&parseCmd{open: open},
		&tokenCmd{cfg: cfg},
	}
}
