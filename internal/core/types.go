package core

const (
	KordName          = "Kord"
	KordUserAgent     = "Kord-Bot/0.1"
	KordRepositoryURL = "https://github.com/sandevgo/kord"
	KordVersion       = "0.1.0"
)

// Session is a normalized inbound chat message. The transport layer fills it
// from a platform event; the dispatcher only reads it.
type Session struct {
	ID           string // message id, used for reply quoting
	ChannelID    string
	GuildID      string
	Content      string
	AuthorID     string
	AuthorName   string
	AuthorAvatar string
	IsBot        bool
}
