package cli

import (
	"context"
	"encoding/json"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/pulse/pkg/cli/config"
	"github.com/secmon-lab/pulse/pkg/domain/model"
	"github.com/secmon-lab/pulse/pkg/usecase"
	"github.com/secmon-lab/pulse/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdAsk() *cli.Command {
	var inputPath string
	var days int
	var slackCfg config.Slack
	var qualityCfg config.Quality

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "input",
			Aliases:     []string{"i"},
			Usage:       "Path to a JSON dataset file (checkins and optional roster) instead of live Slack ingestion",
			Sources:     cli.EnvVars("PULSE_INPUT"),
			Destination: &inputPath,
		},
		&cli.IntFlag{
			Name:        "days",
			Usage:       "Trailing days of channel history to ingest when reading from Slack",
			Value:       31,
			Sources:     cli.EnvVars("PULSE_INGEST_DAYS"),
			Destination: &days,
		},
	}
	flags = append(flags, slackCfg.Flags()...)
	flags = append(flags, qualityCfg.Flags()...)

	return &cli.Command{
		Name:      "ask",
		Usage:     "Answer one natural-language question about check-ins",
		ArgsUsage: "<question>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			question := strings.TrimSpace(strings.Join(c.Args().Slice(), " "))
			if question == "" {
				return goerr.New("question is required")
			}

			uc, err := buildUseCases(&slackCfg, &qualityCfg)
			if err != nil {
				return err
			}

			ds, err := loadDataset(ctx, uc, inputPath, days)
			if err != nil {
				return err
			}

			resp := uc.AnswerQuestion(ctx, question, ds)

			color.New(color.FgCyan, color.Bold).Printf("intent: %s\n", resp.Intent)
			if resp.Answer != "" {
				color.New(color.Bold).Printf("%s\n", resp.Answer)
			}

			data, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return goerr.Wrap(err, "failed to marshal response")
			}
			safe.Write(ctx, os.Stdout, append(data, '\n'))
			return nil
		},
	}
}

// loadDataset reads the dataset from a file when given, otherwise ingests the
// trailing window from Slack
func loadDataset(ctx context.Context, uc *usecase.UseCases, inputPath string, days int) (usecase.Dataset, error) {
	if inputPath != "" {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			return usecase.Dataset{}, goerr.Wrap(err, "failed to read dataset", goerr.V("path", inputPath))
		}
		var ds usecase.Dataset
		if err := json.Unmarshal(data, &ds); err != nil {
			return usecase.Dataset{}, goerr.Wrap(err, "failed to parse dataset", goerr.V("path", inputPath))
		}
		return ds, nil
	}

	if !uc.HasSlack() {
		return usecase.Dataset{}, goerr.New("either --input or Slack configuration is required")
	}

	now := time.Now()
	window := model.NewTimeWindow(
		model.StartOfDay(now.AddDate(0, 0, -(days-1))),
		model.DayWindow(now).End,
	)
	return uc.Ingest(ctx, window)
}
