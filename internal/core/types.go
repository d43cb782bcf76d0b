// Package core holds the platform-neutral model the router and command
// handlers work with: members, messages, guild resources and the actions a
// handler asks the platform to perform.
package core

import (
	"fmt"
	"slices"
)

// ColorBlue is the embed colour used for rich messages.
const ColorBlue = 0x3498db

// Member is a guild member as far as the bot cares about one.
type Member struct {
	ID          string
	Name        string // account username
	DisplayName string // nickname or global name, Name when neither is set
	RoleNames   []string
	Bot         bool
}

// Mention renders the member as a ping.
func (m Member) Mention() string {
	return "<@" + m.ID + ">"
}

// HasRole reports whether the member holds a role with exactly this name.
func (m Member) HasRole(name string) bool {
	return slices.Contains(m.RoleNames, name)
}

// Message is an incoming chat message. GuildID is empty for direct messages.
type Message struct {
	ID        string
	ChannelID string
	GuildID   string
	Content   string
	Author    Member
}

// ChannelKind tells text channels and categories apart.
type ChannelKind int

const (
	ChannelOther ChannelKind = iota
	ChannelText
	ChannelCategory
)

func (k ChannelKind) String() string {
	switch k {
	case ChannelText:
		return "text"
	case ChannelCategory:
		return "category"
	default:
		return "other"
	}
}

// Channel is a guild channel or category.
type Channel struct {
	ID   string
	Name string
	Kind ChannelKind
}

// Emoji is a custom guild emoji.
type Emoji struct {
	ID       string
	Name     string
	Animated bool
}

// Render returns the form that displays the emoji when sent in a message.
func (e Emoji) Render() string {
	if e.Animated {
		return fmt.Sprintf("<a:%s:%s>", e.Name, e.ID)
	}
	return fmt.Sprintf("<:%s:%s>", e.Name, e.ID)
}

// RichMessage is an image with a short title and caption.
type RichMessage struct {
	Title    string
	ImageURL string
	Caption  string
	Color    int
}
