package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/hushh-labs/concierge/pkg/cli/config"
	httpctrl "github.com/hushh-labs/concierge/pkg/controller/http"
	"github.com/hushh-labs/concierge/pkg/service/oracle"
	"github.com/hushh-labs/concierge/pkg/usecase"
	"github.com/hushh-labs/concierge/pkg/utils/logging"
)

func cmdServe(version string) *cli.Command {
	var addr string
	var oracleTimeout time.Duration
	var geminiCfg config.Gemini
	var repoCfg config.Repository
	var catalogCfg config.Catalog
	var taxonomyCfg config.Taxonomy
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("CONCIERGE_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "oracle-timeout",
			Usage:       "Timeout for LLM calls",
			Value:       60 * time.Second,
			Sources:     cli.EnvVars("CONCIERGE_ORACLE_TIMEOUT"),
			Destination: &oracleTimeout,
		},
	}

	// Add shared config flags
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, taxonomyCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return goerr.Wrap(err, "failed to configure sentry")
			}
			defer flush()

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			catalogClient, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure catalog")
			}

			engine, err := taxonomyCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to configure taxonomy")
			}

			llmClient, err := geminiCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure Gemini client")
			}

			reasoner, err := oracle.New(llmClient)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize reasoning gateway")
			}

			uc := usecase.New(repo, catalogClient, reasoner,
				usecase.WithEngine(engine),
				usecase.WithOracleTimeout(oracleTimeout),
			)

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
