package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/kord/pkg/log"
)

type KookConfig struct {
	Token string `env:"KORD_KOOK_TOKEN,required,notEmpty"`
}

func NewKookConfig(ctx context.Context) *KookConfig {
	c := &KookConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse KOOK config")
	}
	return c
}
