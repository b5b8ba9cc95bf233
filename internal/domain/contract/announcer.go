package contract

//go:generate mockgen -source=announcer.go -destination=../../../mocks/announcer_mock.go -package=mocks

import (
	"context"

	"gamenight/internal/domain/entity"
)

// Announcer re-renders the posted announcement of a subject, typically
// after its RSVP tally changed.
type Announcer interface {
	RefreshAnnouncement(ctx context.Context, kind entity.SubjectKind, subjectID string) error
}
