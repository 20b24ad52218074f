package config

import (
	"context"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/kord/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"KORD_RUNTIME_PATH" envDefault:".kord"`

	// Prefix leads every command invocation; messages without it never reach
	// the dispatcher.
	Prefix string `env:"KORD_PREFIX" envDefault:"."`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}
