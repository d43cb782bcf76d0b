package discord

import (
	"github.com/bwmarrin/discordgo"
	embed "github.com/clinet/discordgo-embed"

	"github.com/keshon/server-buddy/internal/core"
)

// toMember converts a user and, in guilds, its member record. Role IDs are
// resolved to names through the state cache; unknown roles are dropped.
func toMember(st *discordgo.State, guildID string, u *discordgo.User, m *discordgo.Member) core.Member {
	out := core.Member{}
	if u != nil {
		out.ID = u.ID
		out.Name = u.Username
		out.DisplayName = u.GlobalName
		out.Bot = u.Bot
	}
	if m == nil {
		if out.DisplayName == "" {
			out.DisplayName = out.Name
		}
		return out
	}

	if m.Nick != "" {
		out.DisplayName = m.Nick
	}
	if out.DisplayName == "" {
		out.DisplayName = out.Name
	}

	for _, id := range m.Roles {
		if st == nil {
			break
		}
		role, err := st.Role(guildID, id)
		if err != nil {
			continue
		}
		out.RoleNames = append(out.RoleNames, role.Name)
	}
	return out
}

func toMessage(st *discordgo.State, m *discordgo.Message) core.Message {
	return core.Message{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		GuildID:   m.GuildID,
		Content:   m.Content,
		Author:    toMember(st, m.GuildID, m.Author, m.Member),
	}
}

func toChannels(in []*discordgo.Channel) []core.Channel {
	out := make([]core.Channel, 0, len(in))
	for _, ch := range in {
		kind := core.ChannelOther
		switch ch.Type {
		case discordgo.ChannelTypeGuildText:
			kind = core.ChannelText
		case discordgo.ChannelTypeGuildCategory:
			kind = core.ChannelCategory
		}
		out = append(out, core.Channel{ID: ch.ID, Name: ch.Name, Kind: kind})
	}
	return out
}

func toEmojis(in []*discordgo.Emoji) []core.Emoji {
	out := make([]core.Emoji, 0, len(in))
	for _, e := range in {
		out = append(out, core.Emoji{ID: e.ID, Name: e.Name, Animated: e.Animated})
	}
	return out
}

func channelType(kind core.ChannelKind) discordgo.ChannelType {
	if kind == core.ChannelCategory {
		return discordgo.ChannelTypeGuildCategory
	}
	return discordgo.ChannelTypeGuildText
}

func toEmbed(msg core.RichMessage) *discordgo.MessageEmbed {
	e := embed.NewEmbed().
		SetTitle(msg.Title).
		SetColor(msg.Color)
	if msg.ImageURL != "" {
		e = e.SetImage(msg.ImageURL)
	}
	if msg.Caption != "" {
		e = e.SetFooter(msg.Caption)
	}
	return e.MessageEmbed
}

// textMessage wraps content so that only user mentions ping; @everyone, @here
// and role mentions are sent as plain text.
func textMessage(content string) *discordgo.MessageSend {
	return &discordgo.MessageSend{
		Content: content,
		AllowedMentions: &discordgo.MessageAllowedMentions{
			Parse: []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers},
		},
	}
}
