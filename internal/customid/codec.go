package customid

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gamenight/internal/domain"
	"gamenight/internal/domain/entity"
)

// MaxLength is the longest custom id Discord accepts on a component.
const MaxLength = 100

const separator = ":"

var (
	ErrDecode       = errors.New("custom id cannot be decoded")
	ErrUnrecognized = fmt.Errorf("%w: unrecognized format", ErrDecode)
	ErrMalformed    = fmt.Errorf("%w: malformed", ErrDecode)
	ErrInvalid      = fmt.Errorf("%w: invalid field", ErrDecode)
)

// now is swapped in tests.
var now = time.Now

// A format describes one kind of compact id:
//
//	<tag>:<base36 unix millis>:<field>:<field>...
//
// The timestamp only keeps ids unique and is ignored on decode.
type format struct {
	tag    string
	kind   Kind
	fields int
	encode func(Intent) []string
	decode func(fields []string) (Intent, error)
}

var formats = []format{
	{
		// a:<ts>:<status code>:<game day id>
		tag:    "a",
		kind:   KindAttendance,
		fields: 2,
		encode: func(i Intent) []string {
			a := i.(Attendance)
			return []string{statusCodes[a.Status], a.SubjectID}
		},
		decode: func(f []string) (Intent, error) {
			status, ok := statusByCode[f[0]]
			if !ok {
				return nil, fmt.Errorf("%w: status code %q", ErrMalformed, f[0])
			}
			return Attendance{SubjectID: f[1], Status: status}, nil
		},
	},
	{
		// i:<ts>:<campaign id>
		tag:    "i",
		kind:   KindInterest,
		fields: 1,
		encode: func(i Intent) []string {
			return []string{i.(Interest).SubjectID}
		},
		decode: func(f []string) (Intent, error) {
			return Interest{SubjectID: f[0]}, nil
		},
	},
	{
		// g:<ts>:<guild id>:<role id or empty>
		tag:    "g",
		kind:   KindGameSetup,
		fields: 2,
		encode: func(i Intent) []string {
			g := i.(GameSetup)
			return []string{g.GuildID, g.RoleID}
		},
		decode: func(f []string) (Intent, error) {
			return GameSetup{GuildID: f[0], RoleID: f[1]}, nil
		},
	},
	{
		// s:<ts>:<guild id>:<host id>:<game role id or empty>
		tag:    "s",
		kind:   KindScheduleGameDay,
		fields: 3,
		encode: func(i Intent) []string {
			s := i.(ScheduleGameDay)
			return []string{s.GuildID, s.HostID, s.GameRoleID}
		},
		decode: func(f []string) (Intent, error) {
			return ScheduleGameDay{GuildID: f[0], HostID: f[1], GameRoleID: f[2]}, nil
		},
	},
	{
		// c:<ts>:<guild id>:<game role id or empty>
		tag:    "c",
		kind:   KindCreateCampaign,
		fields: 2,
		encode: func(i Intent) []string {
			c := i.(CreateCampaign)
			return []string{c.GuildID, c.GameRoleID}
		},
		decode: func(f []string) (Intent, error) {
			return CreateCampaign{GuildID: f[0], GameRoleID: f[1]}, nil
		},
	},
}

var statusCodes = map[entity.AttendanceStatus]string{
	entity.AttendanceAvailable:    "A",
	entity.AttendanceInterested:   "I",
	entity.AttendanceNotAvailable: "N",
}

var (
	formatByTag  = map[string]format{}
	formatByKind = map[Kind]format{}
	statusByCode = map[string]entity.AttendanceStatus{}
)

func init() {
	for _, f := range formats {
		formatByTag[f.tag] = f
		formatByKind[f.kind] = f
	}
	for status, code := range statusCodes {
		statusByCode[code] = status
	}
}

// Encode serializes an intent into a custom id.
func Encode(intent Intent) string {
	f, ok := formatByKind[intent.Kind()]
	if !ok {
		panic(fmt.Sprintf("no custom id format for intent kind %s", intent.Kind()))
	}
	parts := make([]string, 0, f.fields+2)
	parts = append(parts, f.tag, strconv.FormatInt(now().UnixMilli(), 36))
	parts = append(parts, f.encode(intent)...)
	return strings.Join(parts, separator)
}

// Decode parses a custom id produced by Encode or by one of the older
// encodings and validates every field. Any failure wraps ErrDecode.
func Decode(raw string) (Intent, error) {
	intent, err := parse(raw)
	if err != nil {
		return nil, err
	}
	if err := Validate(intent); err != nil {
		return nil, err
	}
	return intent, nil
}

func parse(raw string) (Intent, error) {
	if raw == "" || len(raw) > MaxLength {
		return nil, ErrUnrecognized
	}
	if strings.HasPrefix(raw, "{") {
		return parseLegacyJSON(raw)
	}
	if strings.HasPrefix(raw, legacyAttendancePrefix) {
		return parseLegacyAttendance(raw)
	}

	parts := strings.Split(raw, separator)
	if f, ok := formatByTag[parts[0]]; ok {
		if len(parts) != f.fields+2 {
			return nil, fmt.Errorf("%w: %s expects %d fields, got %d", ErrMalformed, f.kind, f.fields, len(parts)-2)
		}
		if err := checkTimestamp(parts[1]); err != nil {
			return nil, err
		}
		return f.decode(parts[2:])
	}
	if f, ok := legacyFormatByTag[parts[0]]; ok {
		if len(parts) < f.minParts {
			return nil, fmt.Errorf("%w: legacy %s has %d parts", ErrMalformed, parts[0], len(parts))
		}
		if err := checkTimestamp(parts[1]); err != nil {
			return nil, err
		}
		return f.decode(parts)
	}
	return nil, ErrUnrecognized
}

func checkTimestamp(ts string) error {
	if _, err := strconv.ParseInt(ts, 36, 64); err != nil {
		return fmt.Errorf("%w: timestamp %q", ErrMalformed, ts)
	}
	return nil
}

// Validate checks the shape of every id and enum in the intent. Decoded
// values come from user-controlled components and are never trusted.
func Validate(intent Intent) error {
	invalid := func(field, value string) error {
		return fmt.Errorf("%w: %s %s %q", ErrInvalid, intent.Kind(), field, value)
	}
	optionalSnowflake := func(id string) bool {
		return id == "" || domain.IsSnowflake(id)
	}

	switch i := intent.(type) {
	case Attendance:
		if !domain.IsSubjectID(i.SubjectID) {
			return invalid("subject", i.SubjectID)
		}
		if !i.Status.Valid() {
			return invalid("status", string(i.Status))
		}
	case Interest:
		if !domain.IsSubjectID(i.SubjectID) {
			return invalid("subject", i.SubjectID)
		}
	case GameSetup:
		if !domain.IsSnowflake(i.GuildID) {
			return invalid("guild", i.GuildID)
		}
		if !optionalSnowflake(i.RoleID) {
			return invalid("role", i.RoleID)
		}
	case ScheduleGameDay:
		if !domain.IsSnowflake(i.GuildID) {
			return invalid("guild", i.GuildID)
		}
		if !domain.IsSnowflake(i.HostID) {
			return invalid("host", i.HostID)
		}
		if !optionalSnowflake(i.GameRoleID) {
			return invalid("game role", i.GameRoleID)
		}
	case CreateCampaign:
		if !domain.IsSnowflake(i.GuildID) {
			return invalid("guild", i.GuildID)
		}
		if !optionalSnowflake(i.GameRoleID) {
			return invalid("game role", i.GameRoleID)
		}
	default:
		return fmt.Errorf("%w: unexpected intent %T", ErrInvalid, intent)
	}
	return nil
}
