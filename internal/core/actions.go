package core

import (
	"context"
	"fmt"
)

// Action is one outbound effect a handler wants performed. Handlers only
// describe actions; the router applies them.
type Action interface {
	Apply(ctx context.Context, fx Effects) error
	fmt.Stringer
}

type SendText struct {
	ChannelID string
	Content   string
}

func (a SendText) Apply(ctx context.Context, fx Effects) error {
	return fx.SendText(ctx, a.ChannelID, a.Content)
}

func (a SendText) String() string {
	return fmt.Sprintf("send text to %s: %q", a.ChannelID, a.Content)
}

type SendRich struct {
	ChannelID string
	Message   RichMessage
}

func (a SendRich) Apply(ctx context.Context, fx Effects) error {
	return fx.SendRich(ctx, a.ChannelID, a.Message)
}

func (a SendRich) String() string {
	return fmt.Sprintf("send rich message to %s: %q (%s)", a.ChannelID, a.Message.Title, a.Message.ImageURL)
}

type SendDirect struct {
	UserID  string
	Content string
}

func (a SendDirect) Apply(ctx context.Context, fx Effects) error {
	return fx.SendDirect(ctx, a.UserID, a.Content)
}

func (a SendDirect) String() string {
	return fmt.Sprintf("send direct message to %s: %q", a.UserID, a.Content)
}

type DeleteMessage struct {
	ChannelID string
	MessageID string
}

func (a DeleteMessage) Apply(ctx context.Context, fx Effects) error {
	return fx.DeleteMessage(ctx, a.ChannelID, a.MessageID)
}

func (a DeleteMessage) String() string {
	return fmt.Sprintf("delete message %s in %s", a.MessageID, a.ChannelID)
}

// CreateChannel creates a text channel or a category.
type CreateChannel struct {
	GuildID string
	Name    string
	Kind    ChannelKind
}

func (a CreateChannel) Apply(ctx context.Context, fx Effects) error {
	return fx.CreateChannel(ctx, a.GuildID, a.Name, a.Kind)
}

func (a CreateChannel) String() string {
	return fmt.Sprintf("create %s channel %q in %s", a.Kind, a.Name, a.GuildID)
}

type SetPresence struct {
	Text string
}

func (a SetPresence) Apply(ctx context.Context, fx Effects) error {
	return fx.SetPresence(ctx, a.Text)
}

func (a SetPresence) String() string {
	return fmt.Sprintf("set presence to %q", a.Text)
}
