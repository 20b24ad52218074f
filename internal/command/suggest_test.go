package command

import (
	"testing"
)

func TestSimilarThreshold(t *testing.T) {
	commands := make([]*Command, 0, 3)
	for _, name := range []string{"greet", "status", "music"} {
		cmd, err := newCommand(name, "", nil)
		if err != nil {
			t.Fatalf("newCommand(%q): %v", name, err)
		}
		commands = append(commands, cmd)
	}

	tests := []struct {
		name     string
		head     string
		expected []string
	}{
		{
			name:     "transposition typo scores high",
			head:     "geret",
			expected: []string{"greet"},
		},
		{
			name:     "single deletion",
			head:     "statu",
			expected: []string{"status"},
		},
		{
			name:     "nothing close",
			head:     "xylophone",
			expected: nil,
		},
		{
			name:     "exact name still ranks first",
			head:     "music",
			expected: []string{"music"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := similar(tt.head, commands)
			if len(got) != len(tt.expected) {
				t.Fatalf("similar(%q) returned %d candidates, want %d", tt.head, len(got), len(tt.expected))
			}
			for i, want := range tt.expected {
				if got[i].cmd.Name() != want {
					t.Errorf("candidate[%d] = %q, want %q", i, got[i].cmd.Name(), want)
				}
				if got[i].score < similarityThreshold {
					t.Errorf("candidate %q scored %.2f, below threshold", want, got[i].score)
				}
			}
		})
	}
}

func TestSimilarSortsByScore(t *testing.T) {
	var commands []*Command
	for _, name := range []string{"played", "play"} {
		cmd, err := newCommand(name, "", nil)
		if err != nil {
			t.Fatalf("newCommand(%q): %v", name, err)
		}
		commands = append(commands, cmd)
	}

	got := similar("plays", commands)
	if len(got) < 2 {
		t.Fatalf("expected both candidates above threshold, got %d", len(got))
	}
	if got[0].score < got[1].score {
		t.Errorf("candidates not sorted by descending score: %.2f before %.2f", got[0].score, got[1].score)
	}
}
