package core

import "context"

// Directory is the read side of the platform: what handlers may look up
// while deciding what to do.
type Directory interface {
	Emojis(ctx context.Context, guildID string) ([]Emoji, error)
	Channels(ctx context.Context, guildID string) ([]Channel, error)
	// FindMember resolves a name to a guild member, or ErrMemberNotFound.
	FindMember(ctx context.Context, guildID, query string) (Member, error)
}

// Effects is the write side of the platform.
type Effects interface {
	SendText(ctx context.Context, channelID, content string) error
	SendRich(ctx context.Context, channelID string, msg RichMessage) error
	// SendDirect fails with ErrDirectMessageUnavailable when the user cannot
	// be reached.
	SendDirect(ctx context.Context, userID, content string) error
	DeleteMessage(ctx context.Context, channelID, messageID string) error
	CreateChannel(ctx context.Context, guildID, name string, kind ChannelKind) error
	SetPresence(ctx context.Context, text string) error
}

// Platform is everything the router needs from the chat platform.
type Platform interface {
	Directory
	Effects
}
