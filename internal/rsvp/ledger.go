package rsvp

import (
	"context"
	"fmt"

	"gamenight/internal/domain"
	"gamenight/internal/domain/contract"
	"gamenight/internal/domain/entity"
)

// GameDayLedger stores attendances.
type GameDayLedger struct {
	dm contract.DataManager
}

func NewGameDayLedger(dm contract.DataManager) *GameDayLedger {
	return &GameDayLedger{dm: dm}
}

func (l *GameDayLedger) Record(ctx context.Context, gameDayID string, actor Actor, status entity.AttendanceStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: attendance status %q", domain.ErrValidation, status)
	}
	return l.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.User().Upsert(ctx, actor.ID, actor.Name); err != nil {
			return err
		}
		_, err := tx.Attendance().Upsert(ctx, gameDayID, actor.ID, status)
		return err
	})
}

// CampaignLedger stores campaign players. Interest maps to an interested
// player and availability to a confirmed one.
type CampaignLedger struct {
	dm contract.DataManager
}

func NewCampaignLedger(dm contract.DataManager) *CampaignLedger {
	return &CampaignLedger{dm: dm}
}

func (l *CampaignLedger) Record(ctx context.Context, campaignID string, actor Actor, status entity.AttendanceStatus) error {
	var playerStatus entity.PlayerStatus
	switch status {
	case entity.AttendanceInterested:
		playerStatus = entity.PlayerInterested
	case entity.AttendanceAvailable:
		playerStatus = entity.PlayerConfirmed
	default:
		return fmt.Errorf("%w: campaigns have no %q status", domain.ErrValidation, status)
	}
	return l.dm.WithTransaction(ctx, func(tx contract.DataManager) error {
		if err := tx.User().Upsert(ctx, actor.ID, actor.Name); err != nil {
			return err
		}
		_, err := tx.Player().Upsert(ctx, campaignID, actor.ID, playerStatus)
		return err
	})
}
