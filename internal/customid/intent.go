package customid

import "gamenight/internal/domain/entity"

type Kind int

const (
	KindAttendance Kind = iota + 1
	KindInterest
	KindGameSetup
	KindScheduleGameDay
	KindCreateCampaign
)

func (k Kind) String() string {
	switch k {
	case KindAttendance:
		return "attendance"
	case KindInterest:
		return "interest"
	case KindGameSetup:
		return "game_setup"
	case KindScheduleGameDay:
		return "schedule_game_day"
	case KindCreateCampaign:
		return "create_campaign"
	}
	return "unknown"
}

// Intent is the decoded meaning of a button or modal custom id. The set of
// implementations is closed.
type Intent interface {
	Kind() Kind
	// Subject is the id the intent acts on, used for logging.
	Subject() string
	intent()
}

// Attendance is an RSVP button on a game day announcement.
type Attendance struct {
	SubjectID string
	Status    entity.AttendanceStatus
}

// Interest is the "I'm Interested" button on a campaign announcement.
type Interest struct {
	SubjectID string
}

// GameSetup is the modal opened by /game setup. RoleID is empty when a new
// role has to be created for the game.
type GameSetup struct {
	GuildID string
	RoleID  string
}

// ScheduleGameDay is the modal opened by /gameday schedule.
type ScheduleGameDay struct {
	GuildID    string
	HostID     string
	GameRoleID string
}

// CreateCampaign is the modal opened by /campaign create.
type CreateCampaign struct {
	GuildID    string
	GameRoleID string
}

func (Attendance) Kind() Kind      { return KindAttendance }
func (Interest) Kind() Kind        { return KindInterest }
func (GameSetup) Kind() Kind       { return KindGameSetup }
func (ScheduleGameDay) Kind() Kind { return KindScheduleGameDay }
func (CreateCampaign) Kind() Kind  { return KindCreateCampaign }

func (i Attendance) Subject() string      { return i.SubjectID }
func (i Interest) Subject() string        { return i.SubjectID }
func (i GameSetup) Subject() string       { return i.GuildID }
func (i ScheduleGameDay) Subject() string { return i.GuildID }
func (i CreateCampaign) Subject() string  { return i.GuildID }

func (Attendance) intent()      {}
func (Interest) intent()        {}
func (GameSetup) intent()       {}
func (ScheduleGameDay) intent() {}
func (CreateCampaign) intent()  {}
