package kook

import (
	"context"

	"github.com/sandevgo/kord/internal/config"
	"github.com/sandevgo/kord/internal/core"
	"github.com/sandevgo/kord/pkg/log"
)

// Bot ties the gateway to the message pipeline and implements srv.Service.
// Middlewares run in the given order; the first stage that handles a message
// stops the chain.
type Bot struct {
	gateway  *Gateway
	sender   *Sender
	pipeline core.HandlerFunc
}

func NewBot(cfg *config.KookConfig, middlewares ...core.Middleware) *Bot {
	// Terminal stage: a message no middleware claimed is simply ignored.
	pipeline := core.HandlerFunc(func(ctx context.Context, bot core.Sender, s *core.Session) error {
		return nil
	})
	for i := len(middlewares) - 1; i >= 0; i-- {
		pipeline = middlewares[i](pipeline)
	}

	return &Bot{
		gateway:  NewGateway(cfg.Token),
		sender:   NewSender(cfg.Token),
		pipeline: pipeline,
	}
}

// Sender exposes the outbound client for code that messages outside the
// request/reply flow.
func (b *Bot) Sender() core.Sender {
	return b.sender
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting kook bot")
	return b.gateway.Run(ctx, b.handleEvent)
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.gateway.Close()
	return nil
}

func (b *Bot) handleEvent(ctx context.Context, s *core.Session) {
	if s.IsBot {
		return
	}
	if err := b.pipeline(ctx, b.sender, s); err != nil {
		log.FromCtx(ctx).Error().Err(err).Str("msg_id", s.ID).Msg("message pipeline failed")
	}
}
