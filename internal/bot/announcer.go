package bot

import (
	"context"
	"fmt"

	"gamenight/internal/domain/entity"
)

// RefreshAnnouncement edits the posted announcement of a subject so it shows
// the current tally. Subjects that were never announced are skipped.
func (bot *Bot) RefreshAnnouncement(ctx context.Context, kind entity.SubjectKind, subjectID string) error {

	switch kind {
	case entity.SubjectGameDay:
		gameDay, err := bot.dm.GameDay().GetByID(ctx, subjectID)
		if err != nil || gameDay == nil || gameDay.AnnouncementID == "" {
			return err
		}
		attendances, err := bot.dm.Attendance().ListByGameDay(ctx, gameDay.ID)
		if err != nil {
			return err
		}
		game, err := bot.gameOf(ctx, gameDay.GameID)
		if err != nil {
			return err
		}
		return bot.platform.EditMessage(ctx, gameDay.AnnouncementChannelID, gameDay.AnnouncementID, GameDayAnnouncement(gameDay, attendances, game))

	case entity.SubjectCampaign:
		campaign, err := bot.dm.Campaign().GetByID(ctx, subjectID)
		if err != nil || campaign == nil || campaign.AnnouncementID == "" {
			return err
		}
		players, err := bot.dm.Player().ListByCampaign(ctx, campaign.ID)
		if err != nil {
			return err
		}
		return bot.platform.EditMessage(ctx, campaign.AnnouncementChannelID, campaign.AnnouncementID, CampaignAnnouncement(campaign, players))
	}
	return fmt.Errorf("unknown subject kind %s", kind)
}
