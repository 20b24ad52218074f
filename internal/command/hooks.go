package command

import (
	"context"
	"slices"
	"sync"

	"github.com/sandevgo/kord/internal/core"
)

// PreParseFunc runs against the de-prefixed text before matching. Returning a
// non-empty string replaces the text; returning ok=false vetoes dispatch.
// A listener with nothing to say returns ("", true).
type PreParseFunc func(ctx context.Context, text string, bot core.Sender, s *core.Session) (string, bool)

// BeforeExecuteFunc may short-circuit execution by returning a reply string.
type BeforeExecuteFunc func(ctx context.Context, cmd *Command, bot core.Sender, s *core.Session) string

// ExecutedFunc is notified after a successful execution. Results are ignored.
type ExecutedFunc func(ctx context.Context, cmd *Command, bot core.Sender, s *core.Session)

// Hooks are the three extension points around dispatch, each with its own
// call contract: pre-parse bails at the first listener that rewrites or
// vetoes, before-execute runs listeners serially and stops at the first
// non-empty reply, and executed listeners fire in parallel without being
// awaited.
type Hooks struct {
	mu            sync.RWMutex
	preParse      []PreParseFunc
	beforeExecute []BeforeExecuteFunc
	executed      []ExecutedFunc
}

func NewHooks() *Hooks {
	return &Hooks{}
}

func (h *Hooks) OnPreParse(fn PreParseFunc) {
	h.mu.Lock()
	h.preParse = append(h.preParse, fn)
	h.mu.Unlock()
}

func (h *Hooks) OnBeforeExecute(fn BeforeExecuteFunc) {
	h.mu.Lock()
	h.beforeExecute = append(h.beforeExecute, fn)
	h.mu.Unlock()
}

func (h *Hooks) OnExecuted(fn ExecutedFunc) {
	h.mu.Lock()
	h.executed = append(h.executed, fn)
	h.mu.Unlock()
}

// runPreParse returns the possibly rewritten text; ok=false means a listener
// vetoed parsing.
func (h *Hooks) runPreParse(ctx context.Context, text string, bot core.Sender, s *core.Session) (string, bool) {
	for _, fn := range h.preParseSnapshot() {
		replaced, ok := fn(ctx, text, bot, s)
		if !ok {
			return "", false
		}
		if replaced != "" {
			return replaced, true
		}
	}
	return text, true
}

// runBeforeExecute returns the first non-empty reply; later listeners are
// not invoked once one has answered.
func (h *Hooks) runBeforeExecute(ctx context.Context, cmd *Command, bot core.Sender, s *core.Session) string {
	h.mu.RLock()
	fns := slices.Clone(h.beforeExecute)
	h.mu.RUnlock()

	for _, fn := range fns {
		if reply := fn(ctx, cmd, bot, s); reply != "" {
			return reply
		}
	}
	return ""
}

// runExecuted broadcasts the notification, one goroutine per listener.
func (h *Hooks) runExecuted(ctx context.Context, cmd *Command, bot core.Sender, s *core.Session) {
	h.mu.RLock()
	fns := slices.Clone(h.executed)
	h.mu.RUnlock()

	for _, fn := range fns {
		go fn(ctx, cmd, bot, s)
	}
}

func (h *Hooks) preParseSnapshot() []PreParseFunc {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return slices.Clone(h.preParse)
}
