package command

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/sandevgo/kord/internal/core"
)

type sentMessage struct {
	channel string
	content string
	opts    core.SendOptions
}

type mockSender struct {
	mu   sync.Mutex
	sent []sentMessage
	err  error
}

func (m *mockSender) SendMessage(ctx context.Context, channelID, content string, opts ...core.SendOption) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMessage{channel: channelID, content: content, opts: core.BuildSendOptions(opts...)})
	return nil
}

func (m *mockSender) messages() []sentMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMessage(nil), m.sent...)
}

func testSession(content string) *core.Session {
	return &core.Session{
		ID:           "msg-1",
		ChannelID:    "chan-1",
		GuildID:      "guild-1",
		Content:      content,
		AuthorID:     "user-1",
		AuthorName:   "tester",
		AuthorAvatar: "https://img.example/avatar.png",
	}
}

func mustCommand(t *testing.T, signature, description string, flags Flags) *Command {
	t.Helper()
	cmd, err := newCommand(signature, description, flags)
	if err != nil {
		t.Fatalf("newCommand(%q): %v", signature, err)
	}
	return cmd
}

func TestExecuteBindsPositionals(t *testing.T) {
	tests := []struct {
		name     string
		argsText string
		expected map[string]string
		absent   []string
	}{
		{
			name:     "all parameters supplied",
			argsText: "1 2 3",
			expected: map[string]string{"a": "1", "b": "2", "c": "3"},
		},
		{
			name:     "optional left unset",
			argsText: "1 2",
			expected: map[string]string{"a": "1", "b": "2"},
			absent:   []string{"c"},
		},
		{
			name:     "extra positionals ignored",
			argsText: "1 2 3 4",
			expected: map[string]string{"a": "1", "b": "2", "c": "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := mustCommand(t, "bind <a> <b> [c]", "", nil)
			var got Args
			cmd.Action(func(ctx context.Context, args Args, bot core.Sender, s *core.Session) (string, error) {
				got = args
				return "", nil
			})

			bot := &mockSender{}
			if err := cmd.Execute(context.Background(), tt.argsText, bot, testSession(".bind "+tt.argsText)); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for name, want := range tt.expected {
				if got.String(name) != want {
					t.Errorf("args[%q] = %q, want %q", name, got.String(name), want)
				}
			}
			for _, name := range tt.absent {
				if got.Has(name) {
					t.Errorf("args[%q] should be absent, got %v", name, got[name])
				}
			}
			if len(bot.messages()) != 0 {
				t.Errorf("expected no outbound message, got %d", len(bot.messages()))
			}
		})
	}
}

func TestExecuteMissingRequired(t *testing.T) {
	cmd := mustCommand(t, "bind <a> <b> [c]", "", nil)
	calls := 0
	cmd.Action(func(ctx context.Context, args Args, bot core.Sender, s *core.Session) (string, error) {
		calls++
		return "", nil
	})

	bot := &mockSender{}
	if err := cmd.Execute(context.Background(), "1", bot, testSession(".bind 1")); !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument, got %v", err)
	}

	if calls != 0 {
		t.Errorf("handler called %d times, want 0", calls)
	}
	sent := bot.messages()
	if len(sent) != 1 {
		t.Fatalf("expected 1 outbound message, got %d", len(sent))
	}
	if !strings.Contains(sent[0].content, "缺少必要参数") {
		t.Errorf("unexpected reply: %q", sent[0].content)
	}
	if sent[0].opts.Quote != "msg-1" {
		t.Errorf("reply should quote the trigger, got %q", sent[0].opts.Quote)
	}
}

func TestExecuteSendsHandlerReply(t *testing.T) {
	cmd := mustCommand(t, "greet <name>", "", nil)
	cmd.Action(func(ctx context.Context, args Args, bot core.Sender, s *core.Session) (string, error) {
		return "Hello, " + args.String("name"), nil
	})

	bot := &mockSender{}
	if err := cmd.Execute(context.Background(), "Alice", bot, testSession(".greet Alice")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sent := bot.messages()
	if len(sent) != 1 {
		t.Fatalf("expected 1 outbound message, got %d", len(sent))
	}
	if sent[0].channel != "chan-1" || sent[0].content != "Hello, Alice" {
		t.Errorf("unexpected message: %+v", sent[0])
	}
}

func TestExecuteEmptyReplySendsNothing(t *testing.T) {
	cmd := mustCommand(t, "quiet", "", nil)
	cmd.Action(func(ctx context.Context, args Args, bot core.Sender, s *core.Session) (string, error) {
		return "", nil
	})

	bot := &mockSender{}
	if err := cmd.Execute(context.Background(), "", bot, testSession(".quiet")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bot.messages()) != 0 {
		t.Errorf("expected no outbound message, got %d", len(bot.messages()))
	}
}

func TestExecuteMergesFlags(t *testing.T) {
	cmd := mustCommand(t, "echo <text>", "", Flags{
		"upper":  {Type: FlagBool, Shorthand: "u"},
		"repeat": {Type: FlagInt, Shorthand: "r", Default: 1},
	})
	var got Args
	cmd.Action(func(ctx context.Context, args Args, bot core.Sender, s *core.Session) (string, error) {
		got = args
		return "", nil
	})

	bot := &mockSender{}
	if err := cmd.Execute(context.Background(), `--upper "hi there" -r 2`, bot, testSession(".echo")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.String("text") != "hi there" {
		t.Errorf("text = %q, want %q", got.String("text"), "hi there")
	}
	if !got.Bool("upper") {
		t.Error("upper flag not bound")
	}
	if got.Int("repeat") != 2 {
		t.Errorf("repeat = %d, want 2", got.Int("repeat"))
	}
}

func TestExecuteDropsLeadingHead(t *testing.T) {
	cmd := mustCommand(t, "greet <name>", "", nil)
	var got Args
	cmd.Action(func(ctx context.Context, args Args, bot core.Sender, s *core.Session) (string, error) {
		got = args
		return "", nil
	})

	if err := cmd.Execute(context.Background(), "greet Alice", &mockSender{}, testSession(".greet greet Alice")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.String("name") != "Alice" {
		t.Errorf("name = %q, want %q", got.String("name"), "Alice")
	}
}

func TestExecuteHandlerErrorPropagates(t *testing.T) {
	cmd := mustCommand(t, "boom", "", nil)
	wantErr := errors.New("handler blew up")
	cmd.Action(func(ctx context.Context, args Args, bot core.Sender, s *core.Session) (string, error) {
		return "", wantErr
	})

	bot := &mockSender{}
	err := cmd.Execute(context.Background(), "", bot, testSession(".boom"))
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected handler error, got %v", err)
	}
	if len(bot.messages()) != 0 {
		t.Errorf("expected no outbound message, got %d", len(bot.messages()))
	}
}

func TestExecuteWithoutAction(t *testing.T) {
	cmd := mustCommand(t, "noop", "", nil)

	if err := cmd.Execute(context.Background(), "", &mockSender{}, testSession(".noop")); err == nil {
		t.Fatal("expected error for command without action, got nil")
	}
}
