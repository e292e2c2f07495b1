package coordinator

import (
	"fmt"
	"strings"
	"time"

	"github.com/pbf-league/huddle/internal/domains/entities"
)

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func flair(team *entities.Team) string {
	return fmt.Sprintf("[%s](#f/%s)", team.Name, team.Tag)
}

func renderClock(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

func renderDatetime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.UTC().Format("01/02 03:04 UTC")
}

func nthWord(number int) string {
	switch number {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	case 4:
		return "4th"
	default:
		return fmt.Sprintf("%dth", number)
	}
}

func coachString(game *entities.Game, side entities.HomeAway) string {
	var parts []string
	for _, coach := range game.Team(side).Coaches {
		parts = append(parts, "/u/"+coach)
	}
	return strings.Join(parts, " and ")
}

func locationString(status *entities.GameStatus, game *entities.Game) string {
	location := status.Location
	offense := game.Team(status.Possession).Name
	defense := game.Team(status.Possession.Negate()).Name
	switch {
	case location == 0:
		return offense + " goal line"
	case location < 50:
		return fmt.Sprintf("%s %d", offense, location)
	case location == 50:
		return "50"
	default:
		return fmt.Sprintf("%s %d", defense, 100-location)
	}
}

func currentPlayString(game *entities.Game) string {
	status := &game.Status
	switch status.Waiting.Action {
	case entities.ActionConversion:
		return fmt.Sprintf("%s just scored.", game.Team(status.Possession).Name)
	case entities.ActionKickoff:
		return fmt.Sprintf("%s is kicking off.", game.Team(status.Possession).Name)
	default:
		distance := fmt.Sprintf("%d", status.Yards)
		if status.Location+status.Yards >= 100 {
			distance = "goal"
		}
		return fmt.Sprintf("It's %s and %s on the %s.",
			nthWord(status.Down), distance, locationString(status, game))
	}
}

func WaitingOnString(game *entities.Game) string {
	status := &game.Status
	team := game.Team(status.Waiting.On).Name
	switch status.Waiting.Action {
	case entities.ActionCoin:
		return fmt.Sprintf("Waiting on %s for coin toss", team)
	case entities.ActionDefer:
		return fmt.Sprintf("Waiting on %s for receive/defer", team)
	case entities.ActionKickoff:
		return fmt.Sprintf("Waiting on %s for kickoff type", team)
	case entities.ActionPlay:
		return fmt.Sprintf("Waiting on %s for an offensive play", team)
	case entities.ActionDefense:
		return fmt.Sprintf("Waiting on %s for a defensive number", team)
	case entities.ActionConversion:
		return fmt.Sprintf("Waiting on %s for PAT/two point", team)
	case entities.ActionEnd:
		return "Game complete"
	default:
		return "Error, no action"
	}
}

func suggestedPlays(game *entities.Game) string {
	status := &game.Status
	switch status.Waiting.Action {
	case entities.ActionConversion:
		return "**PAT** or **two point**"
	case entities.ActionKickoff:
		return "**normal**, **squib** or **onside**"
	default:
		if status.Down == 4 {
			switch {
			case status.Location > 62:
				return "**field goal**, or go for it with **run** or **pass**"
			case status.Location > 57:
				return "**punt** or **field goal**, or go for it with **run** or **pass**"
			default:
				return "**punt**, or go for it with **run** or **pass**"
			}
		}
		return "**run** or **pass**"
	}
}

// RenderGame builds the externally visible markdown projection of the
// whole game: header, per-team stat tables, situation row and the
// score-by-quarter line.
func RenderGame(game *entities.Game, schedule entities.Schedule) string {
	var bldr strings.Builder

	bldr.WriteString(fmt.Sprintf("%s **%s** @ %s **%s**\n\n",
		flair(&game.Away), game.Away.Name, flair(&game.Home), game.Home.Name))

	if game.StartTime != "" {
		bldr.WriteString(" **Game Start Time:** " + game.StartTime + "\n\n")
	}
	if game.Location != "" {
		bldr.WriteString(" **Location:** " + game.Location + "\n\n")
	}
	if game.Station != "" {
		bldr.WriteString(" **Watch:** " + game.Station + "\n\n")
	}
	bldr.WriteString("\n\n")

	for _, side := range []entities.HomeAway{entities.Away, entities.Home} {
		stats := game.Status.Stats(side)
		bldr.WriteString(flair(game.Team(side)) + "\n\n")
		bldr.WriteString("Total Passing Yards|Total Rushing Yards|Total Yards|Interceptions Lost|Fumbles Lost|Field Goals|Time of Possession|Timeouts\n")
		bldr.WriteString(":-:|:-:|:-:|:-:|:-:|:-:|:-:|:-:\n")
		bldr.WriteString(fmt.Sprintf("%d yards|%d yards|%d yards|%d|%d|%d/%d|%s|%d\n\n___\n",
			stats.PassingYards,
			stats.RushingYards,
			stats.TotalYards,
			stats.Interceptions,
			stats.Fumbles,
			stats.FieldGoalsMade,
			stats.FieldGoalsAttempted,
			renderClock(stats.PossessionSeconds),
			game.Status.State(side).Timeouts,
		))
	}

	bldr.WriteString("\nClock|Quarter|Down|Ball Location|Possession|Playclock|Deadline\n")
	bldr.WriteString(":-:|:-:|:-:|:-:|:-:|:-:|:-:\n")
	bldr.WriteString(fmt.Sprintf("%s|%d|%s & %d|%s|%s|%s|%s\n",
		renderClock(game.Status.Clock),
		game.Status.Quarter,
		nthWord(game.Status.Down),
		game.Status.Yards,
		locationString(&game.Status, game),
		flair(game.Team(game.Status.Possession)),
		renderDatetime(schedule.Playclock),
		renderDatetime(schedule.Deadline),
	))

	bldr.WriteString("\n___\n\nTeam|")
	numQuarters := len(game.Status.Home.Quarters)
	for i := 0; i < numQuarters; i++ {
		bldr.WriteString(fmt.Sprintf("Q%d|", i+1))
	}
	bldr.WriteString("Total\n")
	bldr.WriteString(strings.TrimSuffix(strings.Repeat(":-:|", numQuarters+2), "|"))
	bldr.WriteString("\n")
	for _, side := range []entities.HomeAway{entities.Home, entities.Away} {
		bldr.WriteString(flair(game.Team(side)) + "|")
		for _, quarter := range game.Status.State(side).Quarters {
			bldr.WriteString(fmt.Sprintf("%d|", quarter))
		}
		bldr.WriteString(fmt.Sprintf("**%d**\n", game.Status.State(side).Points))
	}

	return bldr.String()
}

func renderGameTitle(game *entities.Game) string {
	title := fmt.Sprintf("[GAME THREAD] %s @ %s", game.Away.Name, game.Home.Name)
	if game.Away.Record != "" || game.Home.Record != "" {
		title = fmt.Sprintf("[GAME THREAD] %s %s @ %s %s",
			game.Away.Name, game.Away.Record, game.Home.Name, game.Home.Record)
	}
	return title
}

// renderOperatorSummary builds the errored-game diagnosis table: one
// row per archived snapshot with a pre-built rollback message link.
func renderOperatorSummary(game *entities.Game, l links) string {
	var bldr strings.Builder

	bldr.WriteString(fmt.Sprintf("[Game](%s) errored.\n\n", l.Thread(game.Thread)))
	bldr.WriteString("Status|Waiting|Link\n")
	bldr.WriteString(":-:|:-:|:-:\n")

	for i, status := range game.PrevStatuses {
		thing, ok := l.ForThing(game.Thread, status.MessageId)
		if !ok {
			thing = "-"
		}
		bldr.WriteString(fmt.Sprintf("%s/%s with %s & %d on the %d with %s in the %s|%s %s/%s for %s|[Message](%s)\n",
			status.Possession.Name(),
			game.Team(status.Possession).Name,
			nthWord(status.Down),
			status.Yards,
			status.Location,
			renderClock(status.Clock),
			nthWord(status.Quarter),
			thing,
			status.Waiting.On.Name(),
			game.Team(status.Waiting.On).Name,
			status.Waiting.Action,
			l.Compose("Kick game", fmt.Sprintf("kick %s %d", game.Thread, i)),
		))
	}

	return bldr.String()
}
