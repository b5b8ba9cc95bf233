package dispatch_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"gamenight/internal/customid"
	"gamenight/internal/dispatch"
	"gamenight/internal/domain/contract"
	"gamenight/internal/domain/entity"
	"gamenight/mocks"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	gameDayID = "3f2b8c1e-4d5a-4b6c-8d7e-9f0a1b2c3d4e"
	actorID   = "998877665544332211"
	guildID   = "112233445566778899"
)

func newInteraction(ctrl *gomock.Controller, customID string) *mocks.MockInteraction {
	ix := mocks.NewMockInteraction(ctrl)
	ix.EXPECT().CustomID().Return(customID).AnyTimes()
	ix.EXPECT().ActorID().Return(actorID).AnyTimes()
	ix.EXPECT().GuildID().Return(guildID).AnyTimes()
	return ix
}

type recorder struct {
	intents []customid.Intent
	raws    []string
}

func (r *recorder) handle(err error) dispatch.HandleFunc {
	return func(ctx context.Context, ix contract.Interaction, intent customid.Intent) error {
		r.intents = append(r.intents, intent)
		return err
	}
}

func (r *recorder) legacy(ctx context.Context, ix contract.Interaction, raw string) error {
	r.raws = append(r.raws, raw)
	return nil
}

func TestDispatcher_Dispatch(t *testing.T) {
	ctx := context.Background()
	attendance := customid.Attendance{SubjectID: gameDayID, Status: entity.AttendanceAvailable}

	tests := []struct {
		name        string
		customID    string
		buildMocks  func(ix *mocks.MockInteraction)
		wantIntents []customid.Intent
		wantRaws    []string
	}{
		{
			name:        "Should route a current custom id to its handler",
			customID:    customid.Encode(attendance),
			wantIntents: []customid.Intent{attendance},
		},
		{
			name:        "Should route the underscore legacy format through the codec",
			customID:    "attendance_AVAILABLE_" + gameDayID,
			wantIntents: []customid.Intent{attendance},
		},
		{
			name:     "Should route a pre-codec raw id to the legacy handler",
			customID: "setup-modal",
			wantRaws: []string{"setup-modal"},
		},
		{
			name:     "Should ignore an unknown custom id without replying",
			customID: "totally-unknown",
		},
		{
			name:     "Should ignore a forged subject id without replying",
			customID: "a:lx2k9a:A:not-a-uuid",
		},
		{
			name:     "Should ignore an intent no handler owns",
			customID: customid.Encode(customid.GameSetup{GuildID: guildID}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			ix := newInteraction(ctrl, tt.customID)
			if tt.buildMocks != nil {
				tt.buildMocks(ix)
			}

			rec := &recorder{}
			d := dispatch.New(
				[]dispatch.Handler{
					dispatch.ForKind(customid.KindAttendance, rec.handle(nil)),
					dispatch.ForKind(customid.KindInterest, rec.handle(nil)),
				},
				[]dispatch.LegacyHandler{dispatch.LegacyExact("setup-modal", rec.legacy)},
			)

			d.Dispatch(ctx, ix)

			assert.Equal(t, tt.wantIntents, rec.intents)
			assert.Equal(t, tt.wantRaws, rec.raws)
		})
	}
}

func TestDispatcher_Dispatch_Failures(t *testing.T) {
	ctx := context.Background()
	customID := customid.Encode(customid.Attendance{SubjectID: gameDayID, Status: entity.AttendanceAvailable})
	notice := contract.Message{Content: dispatch.FailureNotice}

	t.Run("Should edit the deferred reply when an acknowledged handler fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ix := newInteraction(ctrl, customID)
		ix.EXPECT().Defer(gomock.Any()).Return(nil)
		ix.EXPECT().Acknowledged().Return(true)
		ix.EXPECT().EditReply(gomock.Any(), notice).Return(nil).Times(1)

		d := dispatch.New([]dispatch.Handler{
			dispatch.ForKind(customid.KindAttendance, func(ctx context.Context, ix contract.Interaction, _ customid.Intent) error {
				require.NoError(t, ix.Defer(ctx))
				return errors.New("database is locked")
			}),
		}, nil)

		d.Dispatch(ctx, ix)
	})

	t.Run("Should reply directly when a handler panics before acknowledging", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ix := newInteraction(ctrl, customID)
		ix.EXPECT().Acknowledged().Return(false)
		ix.EXPECT().Reply(gomock.Any(), notice).Return(nil).Times(1)

		d := dispatch.New([]dispatch.Handler{
			dispatch.ForKind(customid.KindAttendance, func(context.Context, contract.Interaction, customid.Intent) error {
				var gd *entity.GameDay
				_ = gd.Title
				return nil
			}),
		}, nil)

		assert.NotPanics(t, func() { d.Dispatch(ctx, ix) })
	})

	t.Run("Should swallow a failure to deliver the notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		ix := newInteraction(ctrl, customID)
		ix.EXPECT().Acknowledged().Return(true)
		ix.EXPECT().EditReply(gomock.Any(), notice).Return(errors.New("Unknown interaction"))

		d := dispatch.New([]dispatch.Handler{
			dispatch.ForKind(customid.KindAttendance, func(context.Context, contract.Interaction, customid.Intent) error {
				return errors.New("boom")
			}),
		}, nil)

		assert.NotPanics(t, func() { d.Dispatch(ctx, ix) })
	})

	t.Run("Should keep dispatching after a handler panicked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		first := newInteraction(ctrl, customID)
		first.EXPECT().Acknowledged().Return(false)
		first.EXPECT().Reply(gomock.Any(), notice).Return(nil)
		second := newInteraction(ctrl, customID)

		calls := 0
		d := dispatch.New([]dispatch.Handler{
			dispatch.ForKind(customid.KindAttendance, func(context.Context, contract.Interaction, customid.Intent) error {
				calls++
				if calls == 1 {
					panic("first call")
				}
				return nil
			}),
		}, nil)

		d.Dispatch(ctx, first)
		d.Dispatch(ctx, second)

		assert.Equal(t, 2, calls)
	})
}

func TestDispatcher_FirstMatchWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	ix := newInteraction(ctrl, customid.Encode(customid.Interest{SubjectID: gameDayID}))

	first, second := &recorder{}, &recorder{}
	d := dispatch.New([]dispatch.Handler{
		dispatch.ForKind(customid.KindInterest, first.handle(nil)),
		dispatch.ForKind(customid.KindInterest, second.handle(nil)),
	}, nil)

	d.Dispatch(context.Background(), ix)

	assert.Len(t, first.intents, 1)
	assert.Empty(t, second.intents)
	assert.Len(t, d.Overlaps([]customid.Intent{customid.Interest{SubjectID: gameDayID}}), 1)
}

func TestDispatcher_Overlaps(t *testing.T) {
	d := dispatch.New([]dispatch.Handler{
		dispatch.ForKind(customid.KindAttendance, nil),
		dispatch.ForKind(customid.KindInterest, nil),
	}, nil)

	samples := []customid.Intent{
		customid.Attendance{SubjectID: gameDayID, Status: entity.AttendanceAvailable},
		customid.Interest{SubjectID: gameDayID},
		customid.GameSetup{GuildID: guildID},
	}
	assert.Empty(t, d.Overlaps(samples))
}

func TestDispatcher_LateAcknowledgement(t *testing.T) {
	var buf bytes.Buffer
	defer func(orig zerolog.Logger) { log.Logger = orig }(log.Logger)
	log.Logger = zerolog.New(&buf)

	ctrl := gomock.NewController(t)
	ix := newInteraction(ctrl, customid.Encode(customid.Interest{SubjectID: gameDayID}))
	ix.EXPECT().Defer(gomock.Any()).Return(nil).Times(2)

	d := dispatch.New([]dispatch.Handler{
		dispatch.ForKind(customid.KindInterest, func(ctx context.Context, ix contract.Interaction, _ customid.Intent) error {
			time.Sleep(5 * time.Millisecond)
			if err := ix.Defer(ctx); err != nil {
				return err
			}
			return ix.Defer(ctx)
		}),
	}, nil, dispatch.WithAckDeadline(time.Millisecond))

	d.Dispatch(context.Background(), ix)

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("acknowledged after the deadline")))
}
