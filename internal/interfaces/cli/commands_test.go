package cli

import (
	"bytes"
	"context"
	"flag"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mb-vendas/internal/bootstrap"
	"github.com/jhoicas/mb-vendas/pkg/config"
	"github.com/jhoicas/mb-vendas/pkg/jwt"
	"github.com/jhoicas/mb-vendas/pkg/logger"
)

func testConfig() *config.Config {
	return &config.Config{
		App:   config.AppConfig{Name: "MB Vendas"},
		JWT:   config.JWTConfig{Secret: "cli-secret", Issuer: "mb-vendas-test", Expiration: 5},
		Store: config.StoreConfig{Driver: config.StoreMemory, KeyPrefix: "cli_"},
	}
}

// sharedOpener reutiliza la misma App para que el almacén en memoria sobreviva entre comandos.
func sharedOpener(t *testing.T, cfg *config.Config) Opener {
	t.Helper()
	app, err := bootstrap.New(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	return func(context.Context) (*bootstrap.App, error) { return app, nil }
}

func run(t *testing.T, cmd subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.SetFlags(fs)
	require.NoError(t, fs.Parse(args))
	return cmd.Execute(context.Background(), fs)
}

func TestSeedBalanceYParse(t *testing.T) {
	cfg := testConfig()
	open := sharedOpener(t, cfg)
	var out bytes.Buffer

	require.Equal(t, subcommands.ExitSuccess, run(t, &seedCmd{open: open, out: &out}))
	assert.Contains(t, out.String(), "catálogo inicial cargado")

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &seedCmd{open: open, out: &out}))
	assert.Contains(t, out.String(), "sin cambios")

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &balanceCmd{open: open, out: &out}))
	assert.Equal(t, "Saldo: R$0,00\n", out.String())

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &parseCmd{open: open, out: &out}, "dois", "pastel", "pro", "Carlos", "no", "dinheiro"))
	assert.Contains(t, out.String(), "Produto:    Pastel")
	assert.Contains(t, out.String(), "Quantidade: 2")
	assert.Contains(t, out.String(), "Pagamento:  Dinheiro")

	out.Reset()
	require.Equal(t, subcommands.ExitSuccess, run(t, &reportCmd{open: open, out: &out}))
	assert.Contains(t, out.String(), "Vendas: 0")
}

func TestParse_SinTranscripcion(t *testing.T) {
	assert.Equal(t, subcommands.ExitUsageError, run(t, &parseCmd{}))
}

func TestToken_EmiteJWTValido(t *testing.T) {
	cfg := testConfig()
	var out bytes.Buffer

	require.Equal(t, subcommands.ExitSuccess, run(t, &tokenCmd{cfg: cfg, out: &out}, "-user", "u1", "-name", "Ana", "-role", "admin"))

	id, err := jwt.Parse(cfg.JWT.Secret, string(bytes.TrimSpace(out.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, "Ana", id.UserName)
	assert.Equal(t, "admin", id.Role)

	assert.Equal(t, subcommands.ExitUsageError, run(t, &tokenCmd{cfg: cfg}))
}
