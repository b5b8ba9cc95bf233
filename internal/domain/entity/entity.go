package entity

import "time"

type Server struct {
	ID                  string
	DiscordID           string
	SchedulingChannelID string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type User struct {
	DiscordID string
	Username  string
	CreatedAt time.Time
}

type Game struct {
	ID          string
	ServerID    string
	Name        string
	ShortName   string
	Description string
	RoleID      string
	MinPlayers  int
	MaxPlayers  int
	CreatedAt   time.Time
}

// GameDay is a single scheduled session that members RSVP to.
// Empty string ids mean the Discord resource was never created.
type GameDay struct {
	ID          string
	ServerID    string
	Title       string
	Description string
	DateTime    time.Time
	Location    string
	HostUserID  string
	GameID      string
	Status      GameDayStatus
	RoleID      string
	CategoryID  string
	EventID     string

	AnnouncementChannelID string
	AnnouncementID        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Attendance struct {
	ID        string
	GameDayID string
	UserID    string
	Status    AttendanceStatus
	UpdatedAt time.Time
}

type Campaign struct {
	ID              string
	ServerID        string
	Title           string
	Description     string
	GameID          string
	GameName        string
	RegularGameTime string
	RoleID          string
	CategoryID      string

	AnnouncementChannelID string
	AnnouncementID        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type Player struct {
	ID            string
	CampaignID    string
	UserID        string
	Status        PlayerStatus
	CharacterName string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
