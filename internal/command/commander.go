package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sandevgo/kord/internal/core"
	"github.com/sandevgo/kord/pkg/log"
)

// Commander owns the command registry for one bot and intercepts inbound
// messages as the first stage of the message pipeline.
type Commander struct {
	prefix string
	hooks  *Hooks

	mu     sync.RWMutex
	scopes []*Scope
}

// Scope is a registration handle. Commands registered under it are visible
// only to sessions its filter accepts, and disappear together on Dispose.
type Scope struct {
	name      string
	filter    func(*core.Session) bool
	commander *Commander
	commands  []*Command
}

func New(prefix string, hooks *Hooks) *Commander {
	if hooks == nil {
		hooks = NewHooks()
	}
	return &Commander{prefix: prefix, hooks: hooks}
}

func (c *Commander) Prefix() string { return c.prefix }
func (c *Commander) Hooks() *Hooks  { return c.hooks }

// Scope creates a registration scope. A nil filter accepts every session.
func (c *Commander) Scope(name string, filter func(*core.Session) bool) *Scope {
	s := &Scope{name: name, filter: filter, commander: c}
	c.mu.Lock()
	c.scopes = append(c.scopes, s)
	c.mu.Unlock()
	return s
}

// Register parses the declaration signature and adds the command to the
// scope. Duplicate names within one scope are rejected; alias collisions are
// not checked, lookup order decides.
func (s *Scope) Register(signature, description string, flags Flags) (*Command, error) {
	cmd, err := newCommand(signature, description, flags)
	if err != nil {
		return nil, err
	}

	c := s.commander
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, existing := range s.commands {
		if existing.name == cmd.name {
			return nil, fmt.Errorf("command %q already registered in scope %q", cmd.name, s.name)
		}
	}
	s.commands = append(s.commands, cmd)
	return cmd, nil
}

// Dispose removes the scope and every command registered under it.
func (s *Scope) Dispose() {
	c := s.commander
	c.mu.Lock()
	defer c.mu.Unlock()
	s.commands = nil
	for i, sc := range c.scopes {
		if sc == s {
			c.scopes = append(c.scopes[:i], c.scopes[i+1:]...)
			break
		}
	}
}

// Visible returns the commands whose scope accepts the session, scopes and
// commands both in registration order.
func (c *Commander) Visible(s *core.Session) []*Command {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var out []*Command
	for _, sc := range c.scopes {
		if sc.filter != nil && !sc.filter(s) {
			continue
		}
		out = append(out, sc.commands...)
	}
	return out
}

// Middleware installs the commander as a pipeline stage. Command text,
// matched or not, terminates the pipeline; everything else falls through.
func (c *Commander) Middleware() core.Middleware {
	return func(next core.HandlerFunc) core.HandlerFunc {
		return func(ctx context.Context, bot core.Sender, s *core.Session) error {
			if c.Dispatch(ctx, bot, s) {
				return nil
			}
			return next(ctx, bot, s)
		}
	}
}

// Dispatch runs the parse/match/execute sequence for one message and reports
// whether the message was treated as a command invocation. Handler errors are
// logged here and never re-raised to the transport.
func (c *Commander) Dispatch(ctx context.Context, bot core.Sender, s *core.Session) bool {
	if !strings.HasPrefix(s.Content, c.prefix) {
		return false
	}
	logger := log.FromCtx(ctx)
	text := strings.TrimPrefix(s.Content, c.prefix)

	text, ok := c.hooks.runPreParse(ctx, text, bot, s)
	if !ok {
		logger.Debug().Str("msg_id", s.ID).Msg("dispatch vetoed by pre-parse hook")
		return false
	}

	head, argsText := text, ""
	if i := strings.IndexByte(text, ' '); i >= 0 {
		head, argsText = text[:i], text[i+1:]
	}
	if head == "" {
		// Bare prefix, nothing to match against.
		return false
	}

	visible := c.Visible(s)
	var matched *Command
	for _, cmd := range visible {
		if cmd.matches(head) {
			matched = cmd
			break
		}
	}

	if matched == nil {
		c.suggest(ctx, bot, s, head, visible)
		return true
	}

	if reply := c.hooks.runBeforeExecute(ctx, matched, bot, s); reply != "" {
		if err := bot.SendMessage(ctx, s.ChannelID, reply); err != nil {
			logger.Error().Err(err).Str("command", matched.name).Msg("failed to send before-execute reply")
		}
		return true
	}

	if err := matched.Execute(ctx, argsText, bot, s); err != nil {
		if !errors.Is(err, ErrMissingArgument) {
			logger.Error().Err(err).Str("command", matched.name).Str("msg_id", s.ID).Msg("command execution failed")
		}
		return true
	}

	c.hooks.runExecuted(ctx, matched, bot, s)
	return true
}
