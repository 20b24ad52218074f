package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/sandevgo/kord/internal/core"
)

// ErrMissingArgument reports a positional-arity shortfall. The user-facing
// reply has already been sent when Execute returns it; the handler was not
// invoked.
var ErrMissingArgument = errors.New("missing required argument")

// Handler is the callback bound to a command via Action. Returning a
// non-empty string sends it as the reply.
type Handler func(ctx context.Context, args Args, bot core.Sender, s *core.Session) (string, error)

// Command is one registered command: its head token, aliases, parameter
// lists derived from the declaration signature, flag schema and handler.
type Command struct {
	name        string
	signature   string
	aliases     []string
	description string
	flags       Flags
	required    []string
	optional    []string
	handler     Handler
}

func newCommand(signature, description string, flags Flags) (*Command, error) {
	head, required, optional := ParseSignature(signature)
	if head == "" {
		return nil, fmt.Errorf("empty command signature %q", signature)
	}
	return &Command{
		name:        head,
		signature:   signature,
		description: description,
		flags:       flags,
		required:    required,
		optional:    optional,
	}, nil
}

func (c *Command) Name() string        { return c.name }
func (c *Command) Signature() string   { return c.signature }
func (c *Command) Description() string { return c.description }
func (c *Command) Flags() Flags        { return c.flags }

func (c *Command) Aliases() []string {
	return slices.Clone(c.aliases)
}

// Alias adds alternate head tokens that resolve to this command.
func (c *Command) Alias(aliases ...string) *Command {
	c.aliases = append(c.aliases, aliases...)
	return c
}

// Action binds the handler. Meant to be called once at registration time.
func (c *Command) Action(h Handler) *Command {
	c.handler = h
	return c
}

func (c *Command) matches(head string) bool {
	return c.name == head || slices.Contains(c.aliases, head)
}

// Execute tokenizes argsText, extracts flags, binds positional parameters and
// invokes the handler. A positional-arity shortfall is recovered with a
// user-facing reply and reported as ErrMissingArgument; every other failure
// propagates to the caller. At most one outbound message is sent per call.
func (c *Command) Execute(ctx context.Context, argsText string, bot core.Sender, s *core.Session) error {
	tokens := Tokenize(argsText)

	flagValues, positionals, err := c.flags.parse(tokens)
	if err != nil {
		return fmt.Errorf("parse flags of %q: %w", c.name, err)
	}
	if len(positionals) > 0 && c.matches(positionals[0]) {
		positionals = positionals[1:]
	}

	if len(positionals) < len(c.required) {
		missing := strings.Join(c.required[len(positionals):], "、")
		reply := fmt.Sprintf("指令「%s」缺少必要参数：%s", c.name, missing)
		if err := bot.SendMessage(ctx, s.ChannelID, reply, core.WithQuote(s.ID)); err != nil {
			return err
		}
		return ErrMissingArgument
	}

	args := make(Args, len(flagValues)+len(c.required)+len(c.optional))
	for name, v := range flagValues {
		args[name] = v
	}
	for i, name := range c.required {
		args[name] = positionals[i]
	}
	for i, name := range c.optional {
		j := i + len(c.required)
		if j >= len(positionals) {
			break
		}
		args[name] = positionals[j]
	}

	// Invariant guard: every declared required name must be bound.
	for _, name := range c.required {
		if !args.Has(name) {
			return fmt.Errorf("required parameter %q of %q left unbound", name, c.name)
		}
	}

	if c.handler == nil {
		return fmt.Errorf("command %q has no action", c.name)
	}

	reply, err := c.handler(ctx, args, bot, s)
	if err != nil {
		return err
	}
	if reply == "" {
		return nil
	}
	return bot.SendMessage(ctx, s.ChannelID, reply)
}
