package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"gamenight/internal/domain/entity"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type attendanceRepo struct {
	db dbConn
	sb sq.StatementBuilderType
}

func newAttendanceRepo(db dbConn, sb sq.StatementBuilderType) *attendanceRepo {
	return &attendanceRepo{db: db, sb: sb}
}

var attendanceColumns = []string{"id", "game_day_id", "user_id", "status", "updated_at"}

func scanAttendance(row scanner) (*entity.Attendance, error) {
	a := &entity.Attendance{}
	if err := row.Scan(&a.ID, &a.GameDayID, &a.UserID, &a.Status, &a.UpdatedAt); err != nil {
		return nil, err
	}
	return a, nil
}

func (r *attendanceRepo) Upsert(ctx context.Context, gameDayID, userID string, status entity.AttendanceStatus) (*entity.Attendance, error) {
	ts := now()
	query, args, err := r.sb.Insert("attendances").
		Columns("id", "game_day_id", "user_id", "status", "created_at", "updated_at").
		Values(uuid.NewString(), gameDayID, userID, status, ts, ts).
		Suffix("ON CONFLICT (game_day_id, user_id) DO UPDATE SET status = excluded.status, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance upsert: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	a, err := r.Get(ctx, gameDayID, userID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, fmt.Errorf("attendance of %s on %s vanished after upsert", userID, gameDayID)
	}
	return a, nil
}

func (r *attendanceRepo) Get(ctx context.Context, gameDayID, userID string) (*entity.Attendance, error) {
	query, args, err := r.sb.Select(attendanceColumns...).
		From("attendances").
		Where(sq.Eq{"game_day_id": gameDayID, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build attendance query: %w", err)
	}

	a, err := scanAttendance(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance: %w", err)
	}
	return a, nil
}

func (r *attendanceRepo) ListByGameDay(ctx context.Context, gameDayID string) ([]*entity.Attendance, error) {
	query, args, err := r.sb.Select(attendanceColumns...).
		From("attendances").
		Where(sq.Eq{"game_day_id": gameDayID}).
		OrderBy("created_at ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build attendances query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var attendances []*entity.Attendance
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, a)
	}
	return attendances, rows.Err()
}
