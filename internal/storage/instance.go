package storage

import (
	"context"
	"fmt"

	"gamenight/internal/domain/contract"

	sq "github.com/Masterminds/squirrel"
)

// instance implements the DataManager interface
type instance struct {
	db             *DB
	serverRepo     contract.ServerRepo
	userRepo       contract.UserRepo
	gameRepo       contract.GameRepo
	gameDayRepo    contract.GameDayRepo
	attendanceRepo contract.AttendanceRepo
	campaignRepo   contract.CampaignRepo
	playerRepo     contract.PlayerRepo
}

func NewInstance(db *DB) contract.DataManager {
	return repoInstancesWithConn(db, db.conn, db.builder())
}

func repoInstancesWithConn(db *DB, conn dbConn, sb sq.StatementBuilderType) *instance {
	return &instance{
		db:             db,
		serverRepo:     newServerRepo(conn, sb),
		userRepo:       newUserRepo(conn, sb),
		gameRepo:       newGameRepo(conn, sb),
		gameDayRepo:    newGameDayRepo(conn, sb),
		attendanceRepo: newAttendanceRepo(conn, sb),
		campaignRepo:   newCampaignRepo(conn, sb),
		playerRepo:     newPlayerRepo(conn, sb),
	}
}

func (i *instance) Server() contract.ServerRepo         { return i.serverRepo }
func (i *instance) User() contract.UserRepo             { return i.userRepo }
func (i *instance) Game() contract.GameRepo             { return i.gameRepo }
func (i *instance) GameDay() contract.GameDayRepo       { return i.gameDayRepo }
func (i *instance) Attendance() contract.AttendanceRepo { return i.attendanceRepo }
func (i *instance) Campaign() contract.CampaignRepo     { return i.campaignRepo }
func (i *instance) Player() contract.PlayerRepo         { return i.playerRepo }

// WithTransaction executes fn within a database transaction. Nested calls
// are not supported.
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(i.db, tx, i.db.builder())
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
