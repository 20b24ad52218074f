package builtin

import (
	"github.com/sandevgo/kord/internal/command"
	"github.com/sandevgo/kord/internal/core"
)

// Register wires the built-in commands into the commander. Global commands
// are visible everywhere; guild commands only where the message carries a
// guild id.
func Register(cmder *command.Commander) error {
	global := cmder.Scope("builtin", nil)
	guild := cmder.Scope("builtin-guild", func(s *core.Session) bool { return s.GuildID != "" })

	if err := registerHelp(cmder, global); err != nil {
		return err
	}
	if err := registerPing(global); err != nil {
		return err
	}
	if err := registerEcho(global); err != nil {
		return err
	}
	if err := registerRoll(guild); err != nil {
		return err
	}
	return nil
}
