package bot

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"gamenight/internal/customid"
	"gamenight/internal/domain/contract"
	"gamenight/internal/domain/entity"
	"gamenight/internal/rsvp"

	"github.com/bwmarrin/discordgo"
)

// Use "teal" color for the bot
const color int = 0x008080

const (
	colorYellow int = 0xFEE75C
	colorGreen  int = 0x57F287
	colorRed    int = 0xED4245
	colorBlue   int = 0x3498DB
)

const noOneYet = "No one yet"

func InputNotValid(errorMessage string) []Response {
	return []Response{ResponseString{fmt.Sprintf("Input not valid: \n> %s", errorMessage)}}
}

func Reinstall() []Response {
	return []Response{ResponseString{"This bot needs to be reinstalled. Please kick the bot and invite it again."}}
}

func GuildOnly() []Response {
	return []Response{ResponseString{"Commands only work inside a server."}}
}

func HelpMessage() []Response {

	embed := discordgo.MessageEmbed{Title: "Commands available", Color: color}
	add := func(name, value string) {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: name, Value: value, Inline: false})
	}
	add("`/setup channel <channel>`", "Set the channel where game days and campaigns are announced")
	add("`/game setup [role]`", "Add a game to this server, optionally bound to an existing role")
	add("`/game list`", "List the games of this server")
	add("`/gameday schedule [game]`", "Schedule a game day, optionally for one of the games")
	add("`/gameday announce <role>`", "Post the announcement of a game day again")
	add("`/gameday cancel <role>`", "Cancel a game day and remove its role, channels and event")
	add("`/gameday list`", "List the upcoming game days")
	add("`/campaign create [game]`", "Start a campaign and look for players")
	add("`/campaign announce <role>`", "Post the announcement of a campaign again")
	add("`/help`", "Print the usage of the different commands")
	add("`/ping`", "Check that the bot is alive")
	return []Response{ResponseEmbed{embed}}
}

func Pong() []Response {
	return []Response{ResponseString{"Pong!"}}
}

func ChannelDoesNotExist(channelName string) []Response {
	return []Response{ResponseString{fmt.Sprintf("Channel `%s` does not exist in this server", channelName)}}
}

func ChannelNotText() []Response {
	return []Response{ResponseString{"The scheduling channel must be a text channel."}}
}

func ChannelChanged(channel string) []Response {
	return []Response{ResponseString{fmt.Sprintf("From now on, I will be announcing game days in %s", channel)}}
}

// Attendance replies

func AttendanceUpdated(title string, outcome rsvp.Outcome) []Response {
	var content string
	switch outcome.Status {
	case entity.AttendanceAvailable:
		content = fmt.Sprintf("Attendance updated successfully! You are marked as available for \"%s\".", title)
	case entity.AttendanceInterested:
		content = fmt.Sprintf("Attendance updated successfully! You are marked as interested in \"%s\".", title)
	default:
		content = fmt.Sprintf("Attendance updated successfully! You are marked as not available for \"%s\".", title)
	}
	if outcome.RoleChange == rsvp.RoleGranted {
		content += " You have been assigned the game day role."
	}
	if outcome.Degraded() {
		content += " Your status was saved, but the role assignment failed."
	}
	return []Response{ResponseString{content}}
}

func GameDayNotFound() []Response {
	return []Response{ResponseString{"Game day not found. It may have been deleted."}}
}

func GameDayClosed() []Response {
	return []Response{ResponseString{"This game day is no longer taking RSVPs."}}
}

func AttendanceFailed() []Response {
	return []Response{ResponseString{"Failed to update attendance. Please try again later."}}
}

func AttendanceError() []Response {
	return []Response{ResponseString{"An error occurred while updating your attendance. Please try again later."}}
}

func CampaignInterestUpdated(title string, outcome rsvp.Outcome) []Response {
	var content string
	if outcome.Status == entity.AttendanceAvailable {
		content = fmt.Sprintf("You are now confirmed for the \"%s\" campaign!", title)
	} else {
		content = fmt.Sprintf("You are now interested in the \"%s\" campaign!", title)
	}
	if outcome.RoleChange == rsvp.RoleGranted {
		content += " You have been assigned the campaign role."
	}
	if outcome.Degraded() {
		content += " Your status was saved, but the role assignment failed."
	}
	return []Response{ResponseString{content}}
}

func CampaignNotFound() []Response {
	return []Response{ResponseString{"Campaign not found. It may have been deleted."}}
}

func PlayerStatusFailed() []Response {
	return []Response{ResponseString{"Failed to update player status. Please try again later."}}
}

// Game replies

func GameCreated(game *entity.Game) []Response {
	embed := discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s (%s)", game.Name, game.ShortName),
		Description: orDefault(game.Description, "No description provided"),
		Color:       color,
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Players", Value: playerRange(game), Inline: true},
		&discordgo.MessageEmbedField{Name: "Role", Value: roleMention(game.RoleID), Inline: true},
	)
	return []Response{ResponseString{"Game added!"}, ResponseEmbed{embed}}
}

func GameCreationFailed() []Response {
	return []Response{ResponseString{"Failed to create the game. Please try again later."}}
}

func GameList(games []*entity.Game) []Response {
	if len(games) == 0 {
		return []Response{ResponseString{"No games have been set up in this server yet. Use `/game setup` to add one."}}
	}
	embed := discordgo.MessageEmbed{Title: "Games in this server", Color: color}
	for _, game := range games {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%s (%s)", game.Name, game.ShortName),
			Value:  fmt.Sprintf("Players: %s | Role: %s", playerRange(game), roleMention(game.RoleID)),
			Inline: false,
		})
	}
	return []Response{ResponseEmbed{embed}}
}

func playerRange(game *entity.Game) string {
	notSpecified := func(n int) string {
		if n <= 0 {
			return "Not specified"
		}
		return fmt.Sprint(n)
	}
	return fmt.Sprintf("%s-%s", notSpecified(game.MinPlayers), notSpecified(game.MaxPlayers))
}

// Game day replies

func InvalidDateTime() []Response {
	return []Response{ResponseString{"Invalid date/time format. Please use YYYY-MM-DD HH:MM format."}}
}

func DateTimeInPast() []Response {
	return []Response{ResponseString{"The game day must be scheduled for a future date and time."}}
}

func GameDayCreationFailed() []Response {
	return []Response{ResponseString{"Failed to create the game day. Please try again later."}}
}

func GameDayScheduled(gameDay *entity.GameDay, attendances []*entity.Attendance, game *entity.Game) []Response {
	return []Response{
		ResponseString{"Game day scheduled!"},
		ResponseEmbed{*GameDayEmbed(gameDay, attendances, game)},
	}
}

func GameDayAnnounced(gameDay *entity.GameDay) []Response {
	return []Response{ResponseString{fmt.Sprintf("The announcement for \"%s\" has been posted.", gameDay.Title)}}
}

func GameDayAlreadyCancelled(gameDay *entity.GameDay) []Response {
	return []Response{ResponseString{fmt.Sprintf("\"%s\" was already cancelled.", gameDay.Title)}}
}

func GameDayCancelled(gameDay *entity.GameDay) []Response {
	return []Response{ResponseString{fmt.Sprintf("\"%s\" has been cancelled.", gameDay.Title)}}
}

func GameDayList(gameDays []*entity.GameDay) []Response {
	if len(gameDays) == 0 {
		return []Response{ResponseString{"There are no upcoming game days. Use `/gameday schedule` to create one."}}
	}
	embed := discordgo.MessageEmbed{Title: "Upcoming game days", Color: color}
	for _, gameDay := range gameDays {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   gameDay.Title,
			Value:  fmt.Sprintf("%s | %s | %s", formatDate(gameDay.DateTime), orDefault(gameDay.Location, "No location specified"), gameDay.Status),
			Inline: false,
		})
	}
	return []Response{ResponseEmbed{embed}}
}

// GameDayEmbed renders a game day and its current tally.
func GameDayEmbed(gameDay *entity.GameDay, attendances []*entity.Attendance, game *entity.Game) *discordgo.MessageEmbed {

	embed := &discordgo.MessageEmbed{Title: gameDay.Title}
	switch gameDay.Status {
	case entity.GameDayCancelled:
		embed.Color = colorRed
		embed.Title = fmt.Sprintf("%s - CANCELLED", gameDay.Title)
		embed.Description = "This game day has been cancelled."
		return embed
	case entity.GameDayClosed:
		embed.Color = colorGreen
		embed.Description = "This game day has been closed, and is not taking any more RSVPs."
		return embed
	}
	embed.Color = colorYellow
	embed.Description = orDefault(gameDay.Description, "No description provided")

	if game != nil {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Game",
			Value:  fmt.Sprintf("%s (%s) | Players: %s", game.Name, game.ShortName, playerRange(game)),
			Inline: false,
		})
	}

	location := "No location specified"
	if gameDay.Location != "" {
		location = gameDay.Location
		if gameDay.HostUserID != "" {
			location += fmt.Sprintf(" (Host: <@%s>)", gameDay.HostUserID)
		}
	}
	embed.Fields = append(embed.Fields,
		&discordgo.MessageEmbedField{Name: "Date & Time", Value: formatDate(gameDay.DateTime), Inline: false},
		&discordgo.MessageEmbedField{Name: "Location", Value: location, Inline: false},
	)
	embed.Fields = append(embed.Fields, tallyFields(attendances)...)
	embed.Footer = &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Game Day ID: %s", gameDay.ID)}
	return embed
}

func tallyFields(attendances []*entity.Attendance) []*discordgo.MessageEmbedField {
	byStatus := map[entity.AttendanceStatus][]string{}
	for _, attendance := range attendances {
		byStatus[attendance.Status] = append(byStatus[attendance.Status], fmt.Sprintf("<@%s>", attendance.UserID))
	}
	field := func(label string, status entity.AttendanceStatus) *discordgo.MessageEmbedField {
		mentions := byStatus[status]
		value := noOneYet
		if len(mentions) > 0 {
			value = strings.Join(mentions, " ")
		}
		return &discordgo.MessageEmbedField{Name: fmt.Sprintf("%s (%d)", label, len(mentions)), Value: value, Inline: true}
	}
	return []*discordgo.MessageEmbedField{
		field("✅ Attending", entity.AttendanceAvailable),
		field("🤔 Interested", entity.AttendanceInterested),
		field("❌ Not Available", entity.AttendanceNotAvailable),
	}
}

// GameDayAnnouncement is the channel message members RSVP on. Only open game
// days carry buttons.
func GameDayAnnouncement(gameDay *entity.GameDay, attendances []*entity.Attendance, game *entity.Game) contract.Message {
	msg := contract.Message{
		Content: "@everyone",
		Embeds:  []*discordgo.MessageEmbed{GameDayEmbed(gameDay, attendances, game)},
	}
	if game != nil && game.RoleID != "" {
		msg.Content = roleMention(game.RoleID)
	}
	if gameDay.Status.Open() {
		msg.Components = []discordgo.MessageComponent{attendanceButtons(gameDay.ID)}
	}
	return msg
}

func attendanceButtons(gameDayID string) discordgo.ActionsRow {
	button := func(label string, style discordgo.ButtonStyle, status entity.AttendanceStatus) discordgo.MessageComponent {
		return discordgo.Button{
			Label:    label,
			Style:    style,
			CustomID: customid.Encode(customid.Attendance{SubjectID: gameDayID, Status: status}),
		}
	}
	return discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		button("I'm in", discordgo.SuccessButton, entity.AttendanceAvailable),
		button("I'm Interested", discordgo.PrimaryButton, entity.AttendanceInterested),
		button("Not Available", discordgo.SecondaryButton, entity.AttendanceNotAvailable),
	}}
}

// Campaign replies

func CampaignCreationFailed() []Response {
	return []Response{ResponseString{"Failed to create the campaign. Please try again later."}}
}

func CampaignCreated(campaign *entity.Campaign) []Response {
	return []Response{
		ResponseString{"Campaign created!"},
		ResponseEmbed{*CampaignEmbed(campaign, nil)},
	}
}

func CampaignAnnounced(campaign *entity.Campaign) []Response {
	return []Response{ResponseString{fmt.Sprintf("The announcement for \"%s\" has been posted.", campaign.Title)}}
}

func campaignDisplayName(campaign *entity.Campaign) string {
	if campaign.GameName != "" {
		return fmt.Sprintf("%s (%s)", campaign.Title, campaign.GameName)
	}
	return campaign.Title
}

func CampaignEmbed(campaign *entity.Campaign, players []*entity.Player) *discordgo.MessageEmbed {

	embed := &discordgo.MessageEmbed{
		Title:       campaignDisplayName(campaign),
		Description: orDefault(campaign.Description, "No description provided"),
		Color:       colorBlue,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("Campaign ID: %s", campaign.ID)},
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:   "Regular Game Time",
		Value:  orDefault(campaign.RegularGameTime, "Not decided yet"),
		Inline: true,
	})
	if campaign.GameName != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{Name: "Game", Value: campaign.GameName, Inline: true})
	}

	var interested, confirmed int
	for _, player := range players {
		switch player.Status {
		case entity.PlayerInterested:
			interested++
		case entity.PlayerConfirmed:
			confirmed++
		}
	}
	if interested > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Interested Players",
			Value:  fmt.Sprintf("%d player(s)", interested),
			Inline: true,
		})
	}
	if confirmed > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   "Confirmed Players",
			Value:  fmt.Sprintf("%d player(s)", confirmed),
			Inline: true,
		})
	}
	return embed
}

func CampaignAnnouncement(campaign *entity.Campaign, players []*entity.Player) contract.Message {
	return contract.Message{
		Content: "@everyone",
		Embeds:  []*discordgo.MessageEmbed{CampaignEmbed(campaign, players)},
		Components: []discordgo.MessageComponent{discordgo.ActionsRow{Components: []discordgo.MessageComponent{
			discordgo.Button{
				Label:    "I'm Interested",
				Style:    discordgo.PrimaryButton,
				CustomID: customid.Encode(customid.Interest{SubjectID: campaign.ID}),
			},
		}}},
	}
}

// Names of the Discord resources

func GameDayRoleName(title string, date time.Time) string {
	return fmt.Sprintf("gameday-%s-%s", alnumPrefix(title, 10), date.Format("010206"))
}

func CampaignRoleName(title string) string {
	return fmt.Sprintf("campaign-%s", alnumPrefix(title, 15))
}

func CampaignCategoryName(title string) string {
	return fmt.Sprintf("Campaign: %s", title)
}

func alnumPrefix(s string, n int) string {
	var b strings.Builder
	for _, r := range s {
		if b.Len() == n {
			break
		}
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

func gameDayChannels(title string) []contract.ChannelSpec {
	return []contract.ChannelSpec{
		{Name: "general", Topic: fmt.Sprintf("General discussion for %s", title)},
		{Name: "logistics", Topic: fmt.Sprintf("Logistics planning for %s", title)},
		{Name: "food", Topic: fmt.Sprintf("Food planning for %s", title)},
		{Name: "game", Topic: fmt.Sprintf("Game discussion for %s", title)},
	}
}

func campaignChannels(title string) []contract.ChannelSpec {
	return []contract.ChannelSpec{
		{Name: "general", Topic: fmt.Sprintf("General discussion for %s", title)},
		{Name: "scheduling", Topic: fmt.Sprintf("Session planning for %s", title)},
		{Name: "game", Topic: fmt.Sprintf("In-game discussion for %s", title)},
	}
}

// formatDate uses a Discord timestamp so every member sees their local time.
func formatDate(t time.Time) string {
	return fmt.Sprintf("<t:%d:F>", t.Unix())
}

func roleMention(roleID string) string {
	if roleID == "" {
		return "None"
	}
	return fmt.Sprintf("<@&%s>", roleID)
}

func messageLink(guildID, channelID, messageID string) string {
	return fmt.Sprintf("https://discord.com/channels/%s/%s/%s", guildID, channelID, messageID)
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
