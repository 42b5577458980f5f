package config_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/pulse/pkg/domain/model/config"
)

func TestDefaultIsValid(t *testing.T) {
	gt.NoError(t, config.Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *config.QualityConfig)
	}{
		{
			name: "empty keyword group",
			mutate: func(c *config.QualityConfig) {
				c.Keywords.Progress = nil
			},
		},
		{
			name: "empty keyword",
			mutate: func(c *config.QualityConfig) {
				c.Keywords.Plan = append(c.Keywords.Plan, "")
			},
		},
		{
			name: "duplicate keyword",
			mutate: func(c *config.QualityConfig) {
				c.Keywords.Blocker = append(c.Keywords.Blocker, "blocked")
			},
		},
		{
			name: "negative weight",
			mutate: func(c *config.QualityConfig) {
				c.Scoring.WordWeight = -1
			},
		},
		{
			name: "negative cap",
			mutate: func(c *config.QualityConfig) {
				c.Scoring.SignalCap = -1
			},
		},
		{
			name: "message strong below medium",
			mutate: func(c *config.QualityConfig) {
				c.Message.Strong = 30
			},
		},
		{
			name: "window strong below medium",
			mutate: func(c *config.QualityConfig) {
				c.Window.Strong = 1.5
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)
			gt.Error(t, cfg.Validate())
		})
	}
}
