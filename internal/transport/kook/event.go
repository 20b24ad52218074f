package kook

import (
	"encoding/json"

	"github.com/sandevgo/kord/internal/core"
)

// Websocket signaling opcodes.
// https://developer.kookapp.cn/doc/websocket
const (
	signalEvent     = 0
	signalHello     = 1
	signalPing      = 2
	signalPong      = 3
	signalResume    = 4
	signalReconnect = 5
	signalResumeAck = 6
)

type frame struct {
	Signal int             `json:"s"`
	Data   json.RawMessage `json:"d,omitempty"`
	SN     int64           `json:"sn,omitempty"`
}

type helloData struct {
	Code      int    `json:"code"`
	SessionID string `json:"session_id"`
}

// systemEventType marks non-chat events (member joins, reactions, ...).
const systemEventType = 255

// event is the subset of the platform event payload the bot consumes.
type event struct {
	ChannelType string `json:"channel_type"`
	Type        int    `json:"type"`
	TargetID    string `json:"target_id"`
	AuthorID    string `json:"author_id"`
	Content     string `json:"content"`
	MsgID       string `json:"msg_id"`
	Extra       struct {
		GuildID string `json:"guild_id"`
		Author  struct {
			Username string `json:"username"`
			Avatar   string `json:"avatar"`
			Bot      bool   `json:"bot"`
		} `json:"author"`
	} `json:"extra"`
}

// session normalizes a chat message event for the dispatcher; it returns nil
// for anything that is not user text.
func (e *event) session() *core.Session {
	if e.ChannelType != "GROUP" && e.ChannelType != "PERSON" {
		return nil
	}
	if e.Type == systemEventType {
		return nil
	}
	return &core.Session{
		ID:           e.MsgID,
		ChannelID:    e.TargetID,
		GuildID:      e.Extra.GuildID,
		Content:      e.Content,
		AuthorID:     e.AuthorID,
		AuthorName:   e.Extra.Author.Username,
		AuthorAvatar: e.Extra.Author.Avatar,
		IsBot:        e.Extra.Author.Bot,
	}
}
