package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"

	"github.com/jhoicas/mb-vendas/pkg/config"
	"github.com/jhoicas/mb-vendas/pkg/jwt"
)

// tokenCmd emite un JWT de desarrollo; en producción los tokens los emite el sistema de usuarios.
type tokenCmd struct {
	cfg *config.Config
	out io.Writer

	user string
	name string
	role string
}

func (*tokenCmd) Name() string     { return "token" }
func (*tokenCmd) Synopsis() string { return "emite un JWT de desarrollo" }
func (*tokenCmd) Usage() string {
	return `pdv token -user <id> [-name <nombre>] [-role admin|vendedor]
`
}

func (c *tokenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.user, "user", "", "ID del usuario (obligatorio).")
	f.StringVar(&c.name, "name", "", "Nombre del vendedor.")
	f.StringVar(&c.role, "role", "vendedor", "Rol: admin o vendedor.")
}

func (c *tokenCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.user == "" {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	tok, err := jwt.Generate(c.cfg.JWT.Secret, jwt.Identity{UserID: c.user, UserName: c.name, Role: c.role}, c.cfg.JWT.Issuer, c.cfg.JWT.Expiration)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(writer(c.out), tok)
	return subcommands.ExitSuccess
}
