package rsvp

import (
	"context"
	"errors"
	"fmt"

	"gamenight/internal/common"
	"gamenight/internal/domain/contract"
	"gamenight/internal/domain/entity"

	"github.com/rs/zerolog/log"
)

var ErrPersistence = errors.New("failed to persist status")

// Subject is what the actor RSVPs to. RoleID is empty when the subject has
// no Discord role.
type Subject struct {
	Kind    entity.SubjectKind
	ID      string
	GuildID string
	RoleID  string
}

type Actor struct {
	ID   string
	Name string
}

// Ledger stores the current status of an actor on one kind of subject.
type Ledger interface {
	Record(ctx context.Context, subjectID string, actor Actor, status entity.AttendanceStatus) error
}

type RoleEditor interface {
	AddRole(ctx context.Context, guildID, userID, roleID string) error
	RemoveRole(ctx context.Context, guildID, userID, roleID string) error
}

type RoleChange int

const (
	RoleUnchanged RoleChange = iota
	RoleGranted
	RoleRevoked
)

// Outcome describes a status change that was persisted. A non-nil RoleErr
// means the role could not be reconciled.
type Outcome struct {
	Status     entity.AttendanceStatus
	RoleChange RoleChange
	RoleErr    error
}

func (o Outcome) Degraded() bool {
	return o.RoleErr != nil
}

// Synchronizer persists RSVP statuses and keeps the subject role of the
// actor in line with them.
type Synchronizer struct {
	ledgers   map[entity.SubjectKind]Ledger
	roles     RoleEditor
	announcer contract.Announcer
}

func NewSynchronizer(roles RoleEditor, announcer contract.Announcer, ledgers map[entity.SubjectKind]Ledger) *Synchronizer {
	return &Synchronizer{ledgers: ledgers, roles: roles, announcer: announcer}
}

// GrantsRole reports whether status makes the actor a member of the subject
// role. Game days only grant it to attendees; campaigns to anyone interested.
func GrantsRole(kind entity.SubjectKind, status entity.AttendanceStatus) bool {
	if kind == entity.SubjectCampaign {
		return status != entity.AttendanceNotAvailable
	}
	return status == entity.AttendanceAvailable
}

// Set records status for the actor and then grants or revokes the subject
// role. Roles are never touched when persisting fails. A role failure is
// returned inside the Outcome, not as an error.
func (s *Synchronizer) Set(ctx context.Context, subject Subject, actor Actor, status entity.AttendanceStatus) (Outcome, error) {
	ledger, ok := s.ledgers[subject.Kind]
	if !ok {
		return Outcome{}, fmt.Errorf("%w: no ledger for %s", ErrPersistence, subject.Kind)
	}
	if err := ledger.Record(ctx, subject.ID, actor, status); err != nil {
		return Outcome{}, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	outcome := Outcome{Status: status}
	if subject.RoleID != "" {
		outcome.RoleChange, outcome.RoleErr = s.syncRole(ctx, subject, actor.ID, status)
		if outcome.RoleErr != nil {
			log.Warn().
				Err(outcome.RoleErr).
				Str("subject", subject.ID).
				Str("actor", actor.ID).
				Str("role", subject.RoleID).
				Msg("Status saved but role could not be updated")
		}
	}

	if s.announcer != nil {
		common.BestEffort(ctx, "refresh announcement", func(ctx context.Context) error {
			return s.announcer.RefreshAnnouncement(ctx, subject.Kind, subject.ID)
		})
	}
	return outcome, nil
}

func (s *Synchronizer) syncRole(ctx context.Context, subject Subject, actorID string, status entity.AttendanceStatus) (RoleChange, error) {
	if GrantsRole(subject.Kind, status) {
		if err := s.roles.AddRole(ctx, subject.GuildID, actorID, subject.RoleID); err != nil {
			return RoleUnchanged, fmt.Errorf("failed to grant role: %w", err)
		}
		return RoleGranted, nil
	}
	// Removing a role the member does not have is accepted by Discord.
	if err := s.roles.RemoveRole(ctx, subject.GuildID, actorID, subject.RoleID); err != nil {
		return RoleUnchanged, fmt.Errorf("failed to revoke role: %w", err)
	}
	return RoleRevoked, nil
}
