package bot

import (
	"context"
	"fmt"
	"strings"

	"gamenight/internal/common"
	"gamenight/internal/customid"
	"gamenight/internal/domain/contract"
	"gamenight/internal/domain/entity"

	"github.com/rs/zerolog/log"
)

func (bot *Bot) onCreateCampaignSubmit(ctx context.Context, ix contract.Interaction, intent customid.Intent) error {

	create, ok := intent.(customid.CreateCampaign)
	if !ok {
		return fmt.Errorf("unexpected intent %T", intent)
	}
	if err := ix.Defer(ctx); err != nil {
		return err
	}
	server, err := bot.serverFor(ctx, ix, create)
	if err != nil {
		return err
	}

	campaign := &entity.Campaign{
		ServerID:        server.ID,
		Title:           strings.TrimSpace(ix.Value(inputTitle)),
		Description:     strings.TrimSpace(ix.Value(inputDescription)),
		RegularGameTime: strings.TrimSpace(ix.Value(inputRegularGameTime)),
		GameName:        strings.TrimSpace(ix.Value(inputGameName)),
	}
	if campaign.Title == "" {
		return respond(ctx, ix, InputNotValid("A campaign needs a title"))
	}
	if create.GameRoleID != "" {
		game, err := bot.dm.Game().GetByRoleID(ctx, server.ID, create.GameRoleID)
		if err != nil {
			return err
		}
		if game != nil {
			campaign.GameID = game.ID
			if campaign.GameName == "" {
				campaign.GameName = game.Name
			}
		}
	}

	roleName := strings.TrimSpace(ix.Value(inputRoleName))
	if roleName == "" {
		roleName = CampaignRoleName(campaign.Title)
	}
	if campaign.RoleID, err = bot.platform.CreateRole(ctx, create.GuildID, roleName); err != nil {
		log.Error().Err(err).Msg(fmt.Sprintf("Could not create role for campaign %s", campaign.Title))
		return respond(ctx, ix, CampaignCreationFailed())
	}
	common.BestEffort(ctx, "create campaign channels", func(ctx context.Context) error {
		categoryID, err := bot.platform.CreatePrivateCategory(ctx, create.GuildID, CampaignCategoryName(campaign.Title), campaign.RoleID, campaignChannels(campaign.Title))
		campaign.CategoryID = categoryID
		return err
	})

	if err := bot.dm.Campaign().Create(ctx, campaign); err != nil {
		log.Error().Err(err).Msg(fmt.Sprintf("Could not save campaign %s", campaign.Title))
		if campaign.CategoryID != "" {
			common.BestEffort(ctx, "delete campaign channels", func(ctx context.Context) error {
				return bot.platform.DeleteCategory(ctx, create.GuildID, campaign.CategoryID)
			})
		}
		common.BestEffort(ctx, "delete campaign role", func(ctx context.Context) error {
			return bot.platform.DeleteRole(ctx, create.GuildID, campaign.RoleID)
		})
		return respond(ctx, ix, CampaignCreationFailed())
	}

	channelID := announcementChannel(server, ix)
	common.BestEffort(ctx, "post campaign announcement", func(ctx context.Context) error {
		return bot.postCampaignAnnouncement(ctx, campaign, channelID)
	})

	log.Info().Msg(fmt.Sprintf("Campaign created: %s", campaign.ID))
	return respond(ctx, ix, CampaignCreated(campaign))
}

func (bot *Bot) postCampaignAnnouncement(ctx context.Context, campaign *entity.Campaign, channelID string) error {

	players, err := bot.dm.Player().ListByCampaign(ctx, campaign.ID)
	if err != nil {
		return err
	}
	messageID, err := bot.platform.SendMessage(ctx, channelID, CampaignAnnouncement(campaign, players))
	if err != nil {
		return err
	}
	campaign.AnnouncementChannelID = channelID
	campaign.AnnouncementID = messageID
	return bot.dm.Campaign().Update(ctx, campaign)
}

func (bot *Bot) announceCampaign(ctx context.Context, ix contract.Interaction, server *entity.Server, roleID string) error {

	if err := ix.Defer(ctx); err != nil {
		return err
	}
	campaign, err := bot.dm.Campaign().GetByRoleID(ctx, roleID)
	if err != nil {
		return err
	}
	if campaign == nil || campaign.ServerID != server.ID {
		return respond(ctx, ix, CampaignNotFound())
	}
	if err := bot.postCampaignAnnouncement(ctx, campaign, announcementChannel(server, ix)); err != nil {
		return err
	}
	return respond(ctx, ix, CampaignAnnounced(campaign))
}
