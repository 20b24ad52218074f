package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/sandevgo/kord/internal/command"
	"github.com/sandevgo/kord/internal/config"
	"github.com/sandevgo/kord/internal/service/builtin"
	"github.com/sandevgo/kord/internal/transport/kook"
	"github.com/sandevgo/kord/pkg/log"
	"github.com/sandevgo/kord/pkg/srv"
)

func NewServices(ctx context.Context) []srv.Service {
	logger := log.FromCtx(ctx)

	// init env
	if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
		logger.Fatal().Err(err).Msg("failed to init env")
	}

	// 1. Configuration
	appCfg := config.NewAppConfig(ctx)
	kookCfg := config.NewKookConfig(ctx)

	// 2. Command dispatcher
	cmder := command.New(appCfg.Prefix, command.NewHooks())
	if err := builtin.Register(cmder); err != nil {
		logger.Fatal().Err(err).Msg("failed to register builtin commands")
	}

	// 3. Transport
	bot := kook.NewBot(kookCfg, cmder.Middleware())

	return []srv.Service{bot}
}

func initEnv(ctx context.Context, runtimePath string) error {
	logger := log.FromCtx(ctx)
	envFile := filepath.Join(runtimePath, ".env")

	if _, err := os.Stat(envFile); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	if err := godotenv.Load(envFile); err != nil {
		logger.Warn().Err(err).Str("path", envFile).Msg("failed to load .env file")
		return err
	}

	logger.Debug().Str("path", envFile).Msg("loaded .env file")
	return nil
}
