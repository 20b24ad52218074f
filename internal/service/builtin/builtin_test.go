package builtin

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/sandevgo/kord/internal/command"
	"github.com/sandevgo/kord/internal/core"
)

type recordingSender struct {
	mu   sync.Mutex
	sent []string
}

func (r *recordingSender) SendMessage(ctx context.Context, channelID, content string, opts ...core.SendOption) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, content)
	return nil
}

func (r *recordingSender) last(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		t.Fatal("no message was sent")
	}
	return r.sent[len(r.sent)-1]
}

func guildSession(content string) *core.Session {
	return &core.Session{
		ID:        "msg-1",
		ChannelID: "chan-1",
		GuildID:   "guild-1",
		Content:   content,
		AuthorID:  "user-1",
	}
}

func newCommander(t *testing.T) *command.Commander {
	t.Helper()
	cmder := command.New(".", nil)
	if err := Register(cmder); err != nil {
		t.Fatalf("register builtins: %v", err)
	}
	return cmder
}

func TestHelpListsVisibleCommands(t *testing.T) {
	cmder := newCommander(t)
	bot := &recordingSender{}

	if handled := cmder.Dispatch(context.Background(), bot, guildSession(".help")); !handled {
		t.Fatal("help should be handled")
	}

	reply := bot.last(t)
	for _, name := range []string{"help", "ping", "echo", "roll"} {
		if !strings.Contains(reply, name) {
			t.Errorf("help output missing %q:\n%s", name, reply)
		}
	}
}

func TestHelpHidesGuildCommandsInDirectMessages(t *testing.T) {
	cmder := newCommander(t)
	bot := &recordingSender{}

	dm := guildSession(".help")
	dm.GuildID = ""
	cmder.Dispatch(context.Background(), bot, dm)

	if strings.Contains(bot.last(t), "roll") {
		t.Error("guild-only command listed in a direct message")
	}
}

func TestHelpSingleCommand(t *testing.T) {
	cmder := newCommander(t)
	bot := &recordingSender{}

	cmder.Dispatch(context.Background(), bot, guildSession(".help echo"))

	reply := bot.last(t)
	for _, want := range []string{"echo <text> [suffix]", "--repeat", "--upper"} {
		if !strings.Contains(reply, want) {
			t.Errorf("echo help missing %q:\n%s", want, reply)
		}
	}
}

func TestPing(t *testing.T) {
	cmder := newCommander(t)
	bot := &recordingSender{}

	cmder.Dispatch(context.Background(), bot, guildSession(".ping"))
	if bot.last(t) != "pong" {
		t.Errorf("ping reply = %q, want pong", bot.last(t))
	}
}

func TestEcho(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{
			name:     "plain",
			message:  ".echo hello",
			expected: "hello",
		},
		{
			name:     "quoted text with suffix",
			message:  `.echo "hello world" !`,
			expected: "hello world !",
		},
		{
			name:     "upper and repeat",
			message:  ".echo -u -r 2 hey",
			expected: "HEY\nHEY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmder := newCommander(t)
			bot := &recordingSender{}
			cmder.Dispatch(context.Background(), bot, guildSession(tt.message))
			if got := bot.last(t); got != tt.expected {
				t.Errorf("echo reply = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestRollDefaultDie(t *testing.T) {
	cmder := newCommander(t)
	bot := &recordingSender{}

	cmder.Dispatch(context.Background(), bot, guildSession(".roll"))
	if !strings.HasPrefix(bot.last(t), "🎲 ") {
		t.Errorf("unexpected roll reply: %q", bot.last(t))
	}
}

func TestParseDice(t *testing.T) {
	tests := []struct {
		spec    string
		count   int
		sides   int
		wantErr bool
	}{
		{spec: "", count: 1, sides: 6},
		{spec: "2d6", count: 2, sides: 6},
		{spec: "1D20", count: 1, sides: 20},
		{spec: "d6", wantErr: true},
		{spec: "2x6", wantErr: true},
		{spec: "0d6", wantErr: true},
		{spec: "2d1", wantErr: true},
		{spec: "9999d6", wantErr: true},
	}

	for _, tt := range tests {
		t.Run("spec_"+tt.spec, func(t *testing.T) {
			count, sides, err := parseDice(tt.spec)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("parseDice(%q) expected error", tt.spec)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseDice(%q): %v", tt.spec, err)
			}
			if count != tt.count || sides != tt.sides {
				t.Errorf("parseDice(%q) = %dd%d, want %dd%d", tt.spec, count, sides, tt.count, tt.sides)
			}
		})
	}
}
