package command

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/sandevgo/kord/internal/core"
	"github.com/sandevgo/kord/pkg/log"
)

// similarityThreshold is the minimum normalized Damerau-Levenshtein score for
// a command name to be offered as a suggestion.
const similarityThreshold = 0.6

type suggestion struct {
	cmd   *Command
	score float64
}

// similar ranks visible commands by name similarity to head, keeping only
// those at or above the threshold, best first.
func similar(head string, visible []*Command) []suggestion {
	var out []suggestion
	for _, cmd := range visible {
		score, err := edlib.StringsSimilarity(head, cmd.name, edlib.DamerauLevenshtein)
		if err != nil || float64(score) < similarityThreshold {
			continue
		}
		out = append(out, suggestion{cmd: cmd, score: float64(score)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].score > out[j].score })
	return out
}

// suggest handles the no-match path: a plain quoted reply when nothing comes
// close, otherwise a card listing the near misses.
func (c *Commander) suggest(ctx context.Context, bot core.Sender, s *core.Session, head string, visible []*Command) {
	logger := log.FromCtx(ctx)

	candidates := similar(head, visible)
	if len(candidates) == 0 {
		reply := fmt.Sprintf("未找到指令「%s%s」", c.prefix, head)
		if err := bot.SendMessage(ctx, s.ChannelID, reply, core.WithQuote(s.ID)); err != nil {
			logger.Error().Err(err).Msg("failed to send no-match reply")
		}
		return
	}

	content, err := suggestionCard(c.prefix, s, candidates).Marshal()
	if err != nil {
		logger.Error().Err(err).Msg("failed to marshal suggestion card")
		return
	}
	if err := bot.SendMessage(ctx, s.ChannelID, content, core.AsCard()); err != nil {
		logger.Error().Err(err).Msg("failed to send suggestion card")
	}
}

// suggestionCard builds the similar-command card: fixed header, one
// kmarkdown line per candidate and a context footer carrying the author
// avatar and the raw trigger text.
func suggestionCard(prefix string, s *core.Session, candidates []suggestion) *core.Card {
	var b strings.Builder
	for i, cand := range candidates {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("**" + prefix + cand.cmd.name + "**")
		if aliases := cand.cmd.aliases; len(aliases) > 0 {
			b.WriteString("（" + strings.Join(aliases, "、") + "）")
		}
		if cand.cmd.description != "" {
			b.WriteString(" " + cand.cmd.description)
		}
	}

	card := core.NewCard(core.CardThemeWarning)
	card.AddHeader("相似指令提示")
	card.AddSection(b.String())
	card.AddContext(
		core.CardElement{Type: core.ElementTypeImage, Src: s.AuthorAvatar},
		core.CardElement{Type: core.ElementTypeKMarkdown, Content: "触发指令：" + s.Content},
	)
	return card
}
