package discord

import (
	"testing"

	"emperror.dev/errors"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/server-buddy/internal/core"
)

func testState(t *testing.T) *discordgo.State {
	t.Helper()
	st := discordgo.NewState()
	require.NoError(t, st.GuildAdd(&discordgo.Guild{
		ID: "g1",
		Roles: []*discordgo.Role{
			{ID: "r1", Name: "Member"},
			{ID: "r2", Name: "Moderator"},
		},
	}))
	return st
}

func TestToMember(t *testing.T) {
	st := testState(t)
	u := &discordgo.User{ID: "1", Username: "alice", GlobalName: "Alice"}

	m := toMember(st, "g1", u, &discordgo.Member{Nick: "Ally", Roles: []string{"r2", "gone"}})
	assert.Equal(t, core.Member{ID: "1", Name: "alice", DisplayName: "Ally", RoleNames: []string{"Moderator"}}, m)

	m = toMember(st, "g1", u, &discordgo.Member{})
	assert.Equal(t, "Alice", m.DisplayName)

	m = toMember(st, "", &discordgo.User{ID: "2", Username: "bot", Bot: true}, nil)
	assert.Equal(t, "bot", m.DisplayName)
	assert.True(t, m.Bot)
	assert.Empty(t, m.RoleNames)
}

func TestToMessage(t *testing.T) {
	st := testState(t)
	msg := toMessage(st, &discordgo.Message{
		ID:        "m1",
		ChannelID: "c1",
		GuildID:   "g1",
		Content:   "$create games",
		Author:    &discordgo.User{ID: "1", Username: "alice"},
		Member:    &discordgo.Member{Roles: []string{"r1", "r2"}},
	})
	assert.Equal(t, "m1", msg.ID)
	assert.Equal(t, "$create games", msg.Content)
	assert.True(t, msg.Author.HasRole("Moderator"))
	assert.True(t, core.Authorize(msg.Author, "Moderator"))
}

func TestToChannels(t *testing.T) {
	got := toChannels([]*discordgo.Channel{
		{ID: "1", Name: "general", Type: discordgo.ChannelTypeGuildText},
		{ID: "2", Name: "Games", Type: discordgo.ChannelTypeGuildCategory},
		{ID: "3", Name: "voice", Type: discordgo.ChannelTypeGuildVoice},
	})
	assert.Equal(t, []core.Channel{
		{ID: "1", Name: "general", Kind: core.ChannelText},
		{ID: "2", Name: "Games", Kind: core.ChannelCategory},
		{ID: "3", Name: "voice", Kind: core.ChannelOther},
	}, got)

	assert.Equal(t, discordgo.ChannelTypeGuildCategory, channelType(core.ChannelCategory))
	assert.Equal(t, discordgo.ChannelTypeGuildText, channelType(core.ChannelText))
}

func TestToEmojis(t *testing.T) {
	got := toEmojis([]*discordgo.Emoji{{ID: "9", Name: "parrot", Animated: true}})
	assert.Equal(t, []core.Emoji{{ID: "9", Name: "parrot", Animated: true}}, got)
}

func TestToEmbed(t *testing.T) {
	embed := toEmbed(core.RichMessage{Title: "Pup!", ImageURL: "https://img/dog.png", Caption: "Dogs sniff.", Color: core.ColorBlue})
	assert.Equal(t, "Pup!", embed.Title)
	assert.Equal(t, core.ColorBlue, embed.Color)
	require.NotNil(t, embed.Image)
	assert.Equal(t, "https://img/dog.png", embed.Image.URL)
	require.NotNil(t, embed.Footer)
	assert.Equal(t, "Dogs sniff.", embed.Footer.Text)

	assert.Nil(t, toEmbed(core.RichMessage{Title: "Kitty!"}).Footer)
}

func TestTextMessage_OnlyUserMentionsPing(t *testing.T) {
	msg := textMessage("Hello, I hope @everyone has a good day!")
	assert.Equal(t, "Hello, I hope @everyone has a good day!", msg.Content)
	require.NotNil(t, msg.AllowedMentions)
	assert.Equal(t, []discordgo.AllowedMentionType{discordgo.AllowedMentionTypeUsers}, msg.AllowedMentions.Parse)
	assert.Empty(t, msg.AllowedMentions.Roles)
}

func TestDirectMessageUnavailable(t *testing.T) {
	err := directMessageUnavailable(errors.New("Cannot send messages to this user"))
	assert.ErrorIs(t, err, core.ErrDirectMessageUnavailable)
	assert.Contains(t, err.Error(), "Cannot send messages to this user")
}

func TestIntents(t *testing.T) {
	assert.NotZero(t, Intents&discordgo.IntentMessageContent)
	assert.NotZero(t, Intents&discordgo.IntentGuildMembers)
}
