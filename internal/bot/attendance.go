package bot

import (
	"context"
	"errors"
	"fmt"

	"gamenight/internal/customid"
	"gamenight/internal/domain/contract"
	"gamenight/internal/domain/entity"
	"gamenight/internal/rsvp"

	"github.com/rs/zerolog/log"
)

// subject is what a button press RSVPs to, as far as the replies need.
type subject struct {
	rsvp.Subject
	title string
	open  bool
}

// resolveSubject finds the game day or campaign behind an id within the
// guild the button was pressed in. It returns nil when neither exists there.
func (bot *Bot) resolveSubject(ctx context.Context, id, guildID string) (*subject, error) {

	server, err := bot.dm.Server().GetByDiscordID(ctx, guildID)
	if err != nil {
		return nil, fmt.Errorf("could not look up guild %s: %w", guildID, err)
	}
	if server == nil {
		return nil, nil
	}

	gameDay, err := bot.dm.GameDay().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not look up game day %s: %w", id, err)
	}
	if gameDay != nil {
		if gameDay.ServerID != server.ID {
			log.Warn().Str("subject", id).Str("guild", guildID).Msg("RSVP for a game day of another guild")
			return nil, nil
		}
		return &subject{
			Subject: rsvp.Subject{Kind: entity.SubjectGameDay, ID: gameDay.ID, GuildID: guildID, RoleID: gameDay.RoleID},
			title:   gameDay.Title,
			open:    gameDay.Status.Open(),
		}, nil
	}

	campaign, err := bot.dm.Campaign().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not look up campaign %s: %w", id, err)
	}
	if campaign != nil {
		if campaign.ServerID != server.ID {
			log.Warn().Str("subject", id).Str("guild", guildID).Msg("RSVP for a campaign of another guild")
			return nil, nil
		}
		return &subject{
			Subject: rsvp.Subject{Kind: entity.SubjectCampaign, ID: campaign.ID, GuildID: guildID, RoleID: campaign.RoleID},
			title:   campaign.Title,
			open:    true,
		}, nil
	}
	return nil, nil
}

func (bot *Bot) onAttendance(ctx context.Context, ix contract.Interaction, intent customid.Intent) error {
	attendance, ok := intent.(customid.Attendance)
	if !ok {
		return fmt.Errorf("unexpected intent %T", intent)
	}
	return bot.setStatus(ctx, ix, attendance.SubjectID, attendance.Status, entity.SubjectGameDay)
}

func (bot *Bot) onInterest(ctx context.Context, ix contract.Interaction, intent customid.Intent) error {
	interest, ok := intent.(customid.Interest)
	if !ok {
		return fmt.Errorf("unexpected intent %T", intent)
	}
	return bot.setStatus(ctx, ix, interest.SubjectID, entity.AttendanceInterested, entity.SubjectCampaign)
}

// setStatus acknowledges first, then persists the status and syncs the role.
// expected only picks the wording used when the subject does not exist.
func (bot *Bot) setStatus(ctx context.Context, ix contract.Interaction, subjectID string, status entity.AttendanceStatus, expected entity.SubjectKind) error {

	if err := ix.Defer(ctx); err != nil {
		return err
	}

	subj, err := bot.resolveSubject(ctx, subjectID, ix.GuildID())
	if err != nil {
		log.Error().Err(err).Str("subject", subjectID).Msg("Could not resolve subject")
		return respond(ctx, ix, AttendanceError())
	}
	if subj == nil {
		log.Warn().Str("subject", subjectID).Msg("RSVP for a subject that does not exist")
		if expected == entity.SubjectCampaign {
			return respond(ctx, ix, CampaignNotFound())
		}
		return respond(ctx, ix, GameDayNotFound())
	}
	if !subj.open {
		return respond(ctx, ix, GameDayClosed())
	}

	outcome, err := bot.sync.Set(ctx, subj.Subject, rsvp.Actor{ID: ix.ActorID(), Name: ix.ActorName()}, status)
	switch {
	case errors.Is(err, rsvp.ErrPersistence):
		log.Error().Err(err).Str("subject", subjectID).Str("actor", ix.ActorID()).Msg("Could not save status")
		if subj.Kind == entity.SubjectCampaign {
			return respond(ctx, ix, PlayerStatusFailed())
		}
		return respond(ctx, ix, AttendanceFailed())
	case err != nil:
		log.Error().Err(err).Str("subject", subjectID).Msg("Could not update status")
		return respond(ctx, ix, AttendanceError())
	}

	log.Info().Msg(fmt.Sprintf("User %s is now %s for %s %s", ix.ActorID(), status, subj.Kind, subj.ID))
	if subj.Kind == entity.SubjectCampaign {
		return respond(ctx, ix, CampaignInterestUpdated(subj.title, outcome))
	}
	return respond(ctx, ix, AttendanceUpdated(subj.title, outcome))
}
