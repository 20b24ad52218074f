package builtin

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sandevgo/kord/internal/command"
	"github.com/sandevgo/kord/internal/core"
)

func registerHelp(cmder *command.Commander, scope *command.Scope) error {
	cmd, err := scope.Register("help [command]", "查看指令帮助", nil)
	if err != nil {
		return err
	}

	cmd.Alias("帮助").Action(func(ctx context.Context, args command.Args, bot core.Sender, s *core.Session) (string, error) {
		visible := cmder.Visible(s)

		if name := args.String("command"); name != "" {
			for _, c := range visible {
				if c.Name() == name {
					return renderCommand(cmder.Prefix(), c), nil
				}
			}
			return fmt.Sprintf("未找到指令「%s」", name), nil
		}

		var b strings.Builder
		b.WriteString("可用指令：\n")
		for _, c := range visible {
			fmt.Fprintf(&b, "`%s%s` %s\n", cmder.Prefix(), c.Name(), c.Description())
		}
		return strings.TrimRight(b.String(), "\n"), nil
	})
	return nil
}

// renderCommand prints one command's signature, aliases and flags.
func renderCommand(prefix string, c *command.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "`%s%s`", prefix, c.Signature())
	if c.Description() != "" {
		b.WriteString(" " + c.Description())
	}
	if aliases := c.Aliases(); len(aliases) > 0 {
		b.WriteString("\n别名：" + strings.Join(aliases, "、"))
	}

	flags := c.Flags()
	if len(flags) > 0 {
		names := make([]string, 0, len(flags))
		for name := range flags {
			names = append(names, name)
		}
		sort.Strings(names)
		b.WriteString("\n选项：")
		for _, name := range names {
			spec := flags[name]
			b.WriteString("\n`--" + name + "`")
			if spec.Shorthand != "" {
				b.WriteString("（`-" + spec.Shorthand + "`）")
			}
			if spec.Usage != "" {
				b.WriteString(" " + spec.Usage)
			}
		}
	}
	return b.String()
}
