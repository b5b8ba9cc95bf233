package entity

// AttendanceStatus is an actor's RSVP for a game day.
type AttendanceStatus string

const (
	AttendanceAvailable    AttendanceStatus = "AVAILABLE"
	AttendanceInterested   AttendanceStatus = "INTERESTED"
	AttendanceNotAvailable AttendanceStatus = "NOT_AVAILABLE"
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case AttendanceAvailable, AttendanceInterested, AttendanceNotAvailable:
		return true
	}
	return false
}

type GameDayStatus string

const (
	GameDayScheduling GameDayStatus = "SCHEDULING"
	GameDayClosed     GameDayStatus = "CLOSED"
	GameDayCancelled  GameDayStatus = "CANCELLED"
)

// Open reports whether the game day still takes RSVPs.
func (s GameDayStatus) Open() bool {
	return s == GameDayScheduling
}

type PlayerStatus string

const (
	PlayerInterested PlayerStatus = "INTERESTED"
	PlayerConfirmed  PlayerStatus = "CONFIRMED"
)

// SubjectKind names what an RSVP is attached to.
type SubjectKind string

const (
	SubjectGameDay  SubjectKind = "game_day"
	SubjectCampaign SubjectKind = "campaign"
)
