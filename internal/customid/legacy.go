package customid

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"gamenight/internal/domain"
	"gamenight/internal/domain/entity"
)

// Older bot versions posted components with these ids. Announcements stay
// in channels for months, so they are still decoded.

// attendance_<STATUS>_<game day id>
const legacyAttendancePrefix = "attendance_"

func parseLegacyAttendance(raw string) (Intent, error) {
	parts := strings.Split(raw, "_")
	var status, id string
	switch {
	case len(parts) == 3:
		status, id = parts[1], parts[2]
	case len(parts) == 4 && parts[1]+"_"+parts[2] == string(entity.AttendanceNotAvailable):
		status, id = string(entity.AttendanceNotAvailable), parts[3]
	default:
		return nil, fmt.Errorf("%w: legacy attendance has %d parts", ErrMalformed, len(parts))
	}
	return Attendance{SubjectID: domain.NormalizeSubjectID(id), Status: entity.AttendanceStatus(status)}, nil
}

type legacyFormat struct {
	minParts int
	decode   func(parts []string) (Intent, error)
}

// Compact modal ids. Trailing free text (role and user names) is dropped.
var legacyFormatByTag = map[string]legacyFormat{
	// gs:<ts>:<exists>:<role id>:<guild id>:<role name>
	"gs": {
		minParts: 6,
		decode: func(p []string) (Intent, error) {
			roleID, err := legacyRole(p[2], p[3])
			if err != nil {
				return nil, err
			}
			return GameSetup{GuildID: p[4], RoleID: roleID}, nil
		},
	},
	// gds:<ts>:<user id>:<guild id>:<exists>:<role id>:<username>:<role name>
	"gds": {
		minParts: 8,
		decode: func(p []string) (Intent, error) {
			roleID, err := legacyRole(p[4], p[5])
			if err != nil {
				return nil, err
			}
			return ScheduleGameDay{GuildID: p[3], HostID: p[2], GameRoleID: roleID}, nil
		},
	},
	// cc:<ts>:<guild id>:<escaped game>:<escaped role>
	"cc": {
		minParts: 5,
		decode: func(p []string) (Intent, error) {
			game, err := url.PathUnescape(p[3])
			if err != nil {
				return nil, fmt.Errorf("%w: legacy campaign game: %v", ErrMalformed, err)
			}
			return CreateCampaign{GuildID: p[2], GameRoleID: roleMention(game)}, nil
		},
	},
}

func legacyRole(exists, roleID string) (string, error) {
	switch exists {
	case "1":
		return roleID, nil
	case "0":
		return "", nil
	}
	return "", fmt.Errorf("%w: legacy role flag %q", ErrMalformed, exists)
}

// roleMention extracts the id of a "<@&id>" mention or a bare id, and
// returns "" for anything else.
func roleMention(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<@&") && strings.HasSuffix(s, ">") {
		s = s[3 : len(s)-1]
	}
	if domain.IsSnowflake(s) {
		return s
	}
	return ""
}

type legacyRoleInfo struct {
	Exists bool   `json:"exists"`
	ID     string `json:"id"`
}

type legacyGameInfo struct {
	Input string `json:"input"`
}

// Buttons used to be plain JSON; modals fell back to it as well.
type legacyPayload struct {
	Command    string          `json:"command"`
	Status     string          `json:"status"`
	GameDayID  string          `json:"gameDayId"`
	CampaignID string          `json:"campaignId"`
	GuildID    string          `json:"guildId"`
	UserID     string          `json:"userId"`
	RoleInfo   *legacyRoleInfo `json:"roleInfo"`
	GameInfo   *legacyGameInfo `json:"gameInfo"`
}

func (p legacyPayload) roleID() string {
	if p.RoleInfo == nil || !p.RoleInfo.Exists {
		return ""
	}
	return p.RoleInfo.ID
}

func parseLegacyJSON(raw string) (Intent, error) {
	var p legacyPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("%w: legacy json: %v", ErrMalformed, err)
	}
	switch p.Command {
	case "attendance":
		return Attendance{SubjectID: domain.NormalizeSubjectID(p.GameDayID), Status: entity.AttendanceStatus(p.Status)}, nil
	case "campaign_interest":
		return Interest{SubjectID: domain.NormalizeSubjectID(p.CampaignID)}, nil
	case "game_setup":
		return GameSetup{GuildID: p.GuildID, RoleID: p.roleID()}, nil
	case "game_day_schedule":
		return ScheduleGameDay{GuildID: p.GuildID, HostID: p.UserID, GameRoleID: p.roleID()}, nil
	case "campaign_create":
		var game string
		if p.GameInfo != nil {
			game = roleMention(p.GameInfo.Input)
		}
		return CreateCampaign{GuildID: p.GuildID, GameRoleID: game}, nil
	}
	return nil, ErrUnrecognized
}
