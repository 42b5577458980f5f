package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/pulse/pkg/cli/config"
	httpctrl "github.com/secmon-lab/pulse/pkg/controller/http"
	"github.com/secmon-lab/pulse/pkg/service/quality"
	"github.com/secmon-lab/pulse/pkg/usecase"
	"github.com/secmon-lab/pulse/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdServe() *cli.Command {
	var addr string
	var apiKey string
	var requireAPIKey bool
	var slackCfg config.Slack
	var qualityCfg config.Quality

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("PULSE_ADDR"),
			Destination: &addr,
		},
		&cli.StringFlag{
			Name:        "api-key",
			Usage:       "Require this X-API-Key header on /api routes (disabled when empty)",
			Category:    "Authentication",
			Sources:     cli.EnvVars("PULSE_API_KEY"),
			Destination: &apiKey,
		},
		&cli.BoolFlag{
			Name:        "require-api-key",
			Usage:       "Refuse /api requests with 503 when no API key is configured",
			Category:    "Authentication",
			Sources:     cli.EnvVars("PULSE_REQUIRE_API_KEY"),
			Destination: &requireAPIKey,
		},
	}
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, qualityCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			uc, err := buildUseCases(&slackCfg, &qualityCfg)
			if err != nil {
				return err
			}

			srvOpts := []httpctrl.Options{}
			if apiKey != "" {
				srvOpts = append(srvOpts, httpctrl.WithAPIKey(apiKey))
				logging.Default().Info("API key guard enabled")
			}
			if requireAPIKey {
				srvOpts = append(srvOpts, httpctrl.WithRequiredAuth())
				if apiKey == "" {
					logging.Default().Warn("API key is required but not set, /api requests will be refused")
				}
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc, srvOpts...),
				ReadHeaderTimeout: 30 * time.Second,
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr, "slack", uc.HasSlack())
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

// buildUseCases wires the classifier and optional Slack ingestion shared by
// the serve, ask and classify commands
func buildUseCases(slackCfg *config.Slack, qualityCfg *config.Quality) (*usecase.UseCases, error) {
	qcfg, err := qualityCfg.Configure()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load quality configuration")
	}

	opts := []usecase.Option{
		usecase.WithClassifier(quality.New(qcfg)),
	}

	svc, channelID, err := slackCfg.Configure()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure slack service")
	}
	if svc != nil {
		opts = append(opts, usecase.WithSlackService(svc, channelID))
		logging.Default().Info("Slack ingestion enabled", "slack", slackCfg)
	} else {
		logging.Default().Info("Slack not configured, requests must carry their own dataset")
	}

	return usecase.New(opts...), nil
}
