package builtin

import (
	"context"
	"strings"

	"github.com/sandevgo/kord/internal/command"
	"github.com/sandevgo/kord/internal/core"
)

const maxEchoRepeat = 5

func registerEcho(scope *command.Scope) error {
	cmd, err := scope.Register("echo <text> [suffix]", "复读一段文本", command.Flags{
		"repeat": {Type: command.FlagInt, Shorthand: "r", Default: 1, Usage: "重复次数"},
		"upper":  {Type: command.FlagBool, Shorthand: "u", Usage: "转为大写"},
	})
	if err != nil {
		return err
	}

	cmd.Action(func(ctx context.Context, args command.Args, bot core.Sender, s *core.Session) (string, error) {
		text := args.String("text")
		if suffix := args.String("suffix"); suffix != "" {
			text += " " + suffix
		}
		if args.Bool("upper") {
			text = strings.ToUpper(text)
		}

		n := args.Int("repeat")
		if n < 1 {
			n = 1
		}
		if n > maxEchoRepeat {
			n = maxEchoRepeat
		}

		lines := make([]string, n)
		for i := range lines {
			lines[i] = text
		}
		return strings.Join(lines, "\n"), nil
	})
	return nil
}
