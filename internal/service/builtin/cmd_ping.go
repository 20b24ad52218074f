package builtin

import (
	"context"

	"github.com/sandevgo/kord/internal/command"
	"github.com/sandevgo/kord/internal/core"
)

func registerPing(scope *command.Scope) error {
	cmd, err := scope.Register("ping", "确认机器人在线", nil)
	if err != nil {
		return err
	}

	cmd.Action(func(ctx context.Context, args command.Args, bot core.Sender, s *core.Session) (string, error) {
		return "pong", nil
	})
	return nil
}
