package discord

import (
	"context"

	"emperror.dev/errors"
	"github.com/bwmarrin/discordgo"

	"github.com/keshon/server-buddy/internal/core"
)

const memberSearchLimit = 100

// Platform implements core.Platform on a discordgo session. Reads prefer the
// state cache and fall back to REST.
type Platform struct {
	session *discordgo.Session
}

func (p *Platform) Emojis(ctx context.Context, guildID string) ([]core.Emoji, error) {
	if g, err := p.session.State.Guild(guildID); err == nil && len(g.Emojis) > 0 {
		return toEmojis(g.Emojis), nil
	}
	emojis, err := p.session.GuildEmojis(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return toEmojis(emojis), nil
}

func (p *Platform) Channels(ctx context.Context, guildID string) ([]core.Channel, error) {
	channels, err := p.session.GuildChannels(guildID, discordgo.WithContext(ctx))
	if err != nil {
		return nil, err
	}
	return toChannels(channels), nil
}

// FindMember matches query against usernames, global names and nicknames.
func (p *Platform) FindMember(ctx context.Context, guildID, query string) (core.Member, error) {
	members, err := p.session.GuildMembersSearch(guildID, query, memberSearchLimit, discordgo.WithContext(ctx))
	if err != nil {
		return core.Member{}, err
	}
	for _, m := range members {
		if m.User == nil {
			continue
		}
		if m.User.Username == query || m.User.GlobalName == query || m.Nick == query {
			return toMember(p.session.State, guildID, m.User, m), nil
		}
	}
	return core.Member{}, core.ErrMemberNotFound
}

func (p *Platform) SendText(ctx context.Context, channelID, content string) error {
	_, err := p.session.ChannelMessageSendComplex(channelID, textMessage(content), discordgo.WithContext(ctx))
	return err
}

func (p *Platform) SendRich(ctx context.Context, channelID string, msg core.RichMessage) error {
	_, err := p.session.ChannelMessageSendEmbed(channelID, toEmbed(msg), discordgo.WithContext(ctx))
	return err
}

func (p *Platform) SendDirect(ctx context.Context, userID, content string) error {
	ch, err := p.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		return directMessageUnavailable(err)
	}
	if _, err := p.session.ChannelMessageSendComplex(ch.ID, textMessage(content), discordgo.WithContext(ctx)); err != nil {
		return directMessageUnavailable(err)
	}
	return nil
}

func directMessageUnavailable(err error) error {
	return errors.WithMessage(core.ErrDirectMessageUnavailable, err.Error())
}

func (p *Platform) DeleteMessage(ctx context.Context, channelID, messageID string) error {
	return p.session.ChannelMessageDelete(channelID, messageID, discordgo.WithContext(ctx))
}

func (p *Platform) CreateChannel(ctx context.Context, guildID, name string, kind core.ChannelKind) error {
	_, err := p.session.GuildChannelCreate(guildID, name, channelType(kind), discordgo.WithContext(ctx))
	return err
}

func (p *Platform) SetPresence(_ context.Context, text string) error {
	return p.session.UpdateGameStatus(0, text)
}
