package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/pulse/pkg/cli/config"
	"github.com/secmon-lab/pulse/pkg/domain/types"
	"github.com/secmon-lab/pulse/pkg/service/quality"
	"github.com/urfave/cli/v3"
)

func cmdClassify() *cli.Command {
	var qualityCfg config.Quality

	return &cli.Command{
		Name:      "classify",
		Usage:     "Classify the quality of one check-in message (reads stdin when no argument)",
		ArgsUsage: "[text]",
		Flags:     qualityCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			text := strings.Join(c.Args().Slice(), " ")
			if strings.TrimSpace(text) == "" {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return goerr.Wrap(err, "failed to read stdin")
				}
				text = string(data)
			}

			qcfg, err := qualityCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load quality configuration")
			}

			result := quality.New(qcfg).Classify(text)
			labelColor(result.Label).Printf("%s", result.Label)
			color.New(color.Faint).Printf(" (score %.2f)\n", result.Score)
			return nil
		},
	}
}

func labelColor(label types.QualityLabel) *color.Color {
	switch label {
	case types.QualityStrong:
		return color.New(color.FgGreen, color.Bold)
	case types.QualityMedium:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}
