package discord

import (
	"context"
	"testing"

	"gamenight/internal/domain/contract"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modalEvent(customID string, inputs map[string]string) *discordgo.Interaction {
	var rows []discordgo.MessageComponent
	for id, value := range inputs {
		rows = append(rows, &discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			&discordgo.TextInput{CustomID: id, Value: value},
		}})
	}
	return &discordgo.Interaction{
		ID:      "1",
		Type:    discordgo.InteractionModalSubmit,
		GuildID: "112233445566778899",
		Data:    discordgo.ModalSubmitInteractionData{CustomID: customID, Components: rows},
	}
}

func TestInteraction_Accessors(t *testing.T) {
	t.Run("Should read the custom id and the actor of a button press", func(t *testing.T) {
		event := &discordgo.Interaction{
			Type:      discordgo.InteractionMessageComponent,
			GuildID:   "112233445566778899",
			ChannelID: "223344556677889900",
			Member:    &discordgo.Member{User: &discordgo.User{ID: "998877665544332211", Username: "alice"}},
			Data:      discordgo.MessageComponentInteractionData{CustomID: "a:lx2k9a:A:x"},
		}
		ix := NewInteraction(nil, event)

		assert.Equal(t, "a:lx2k9a:A:x", ix.CustomID())
		assert.Equal(t, "998877665544332211", ix.ActorID())
		assert.Equal(t, "alice", ix.ActorName())
		assert.Equal(t, "223344556677889900", ix.ChannelID())
		assert.Equal(t, "", ix.Value("title"))
	})

	t.Run("Should fall back to the user outside of guilds", func(t *testing.T) {
		ix := NewInteraction(nil, &discordgo.Interaction{
			Type: discordgo.InteractionApplicationCommand,
			User: &discordgo.User{ID: "42", Username: "bob"},
			Data: discordgo.ApplicationCommandInteractionData{Name: "gameday"},
		})

		assert.Equal(t, "", ix.CustomID())
		assert.Equal(t, "42", ix.ActorID())
		assert.Equal(t, "bob", ix.ActorName())
	})

	t.Run("Should read modal inputs by custom id", func(t *testing.T) {
		ix := NewInteraction(nil, modalEvent("setup-modal", map[string]string{
			"scheduling-channel": "board-games",
			"title":              "Friday night",
		}))

		assert.Equal(t, "setup-modal", ix.CustomID())
		assert.Equal(t, "board-games", ix.Value("scheduling-channel"))
		assert.Equal(t, "Friday night", ix.Value("title"))
		assert.Equal(t, "", ix.Value("missing"))
	})
}

func TestInteraction_DeferTwiceIsNoop(t *testing.T) {
	ix := NewInteraction(nil, modalEvent("setup-modal", nil))
	ix.acked = true

	require.NoError(t, ix.Defer(context.Background()))
	assert.True(t, ix.Acknowledged())
}

func TestTextInputValue_ValueComponents(t *testing.T) {
	components := []discordgo.MessageComponent{
		discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.TextInput{CustomID: "location", Value: "Game store"},
		}},
	}
	assert.Equal(t, "Game store", textInputValue(components, "location"))
}

func TestPrivateOverwrites(t *testing.T) {
	overwrites := privateOverwrites("guild", "role")

	require.Len(t, overwrites, 2)
	assert.Equal(t, "guild", overwrites[0].ID)
	assert.Equal(t, int64(discordgo.PermissionViewChannel), overwrites[0].Deny)
	assert.Zero(t, overwrites[0].Allow)
	assert.Equal(t, "role", overwrites[1].ID)
	assert.Equal(t, int64(discordgo.PermissionViewChannel), overwrites[1].Allow)
	assert.Zero(t, overwrites[1].Deny)
}

func TestChannelLookups(t *testing.T) {
	channels := []*discordgo.Channel{
		{ID: "1", Name: "Board-Games", Type: discordgo.ChannelTypeGuildText},
		{ID: "2", Name: "board-games", Type: discordgo.ChannelTypeGuildVoice},
		{ID: "3", Name: "general", Type: discordgo.ChannelTypeGuildText, ParentID: "10"},
		{ID: "4", Name: "food", Type: discordgo.ChannelTypeGuildText, ParentID: "10"},
		{ID: "10", Name: "friday", Type: discordgo.ChannelTypeGuildCategory},
	}

	tests := []struct {
		name   string
		lookup string
		wantID string
	}{
		{name: "Should match case insensitively", lookup: "board-games", wantID: "1"},
		{name: "Should accept a leading hash", lookup: "#general", wantID: "3"},
		{name: "Should skip categories", lookup: "friday"},
		{name: "Should return nothing for unknown names", lookup: "memes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := textChannelNamed(channels, tt.lookup)
			if tt.wantID == "" {
				assert.Nil(t, ch)
				return
			}
			require.NotNil(t, ch)
			assert.Equal(t, tt.wantID, ch.ID)
		})
	}

	children := childrenOf(channels, "10")
	require.Len(t, children, 2)
	assert.Equal(t, "3", children[0].ID)
	assert.Equal(t, "4", children[1].ID)
}

func TestEditFields(t *testing.T) {
	t.Run("Should clear components when none are given", func(t *testing.T) {
		content, embeds, components := editFields(contract.Message{Content: "cancelled"})

		assert.Equal(t, "cancelled", *content)
		assert.NotNil(t, *embeds)
		assert.Empty(t, *embeds)
		assert.NotNil(t, *components)
		assert.Empty(t, *components)
	})

	t.Run("Should keep the given components", func(t *testing.T) {
		row := discordgo.ActionsRow{Components: []discordgo.MessageComponent{discordgo.Button{Label: "I'm in", CustomID: "x"}}}
		_, _, components := editFields(contract.Message{Components: []discordgo.MessageComponent{row}})

		assert.Len(t, *components, 1)
	})
}
