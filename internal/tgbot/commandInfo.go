package tgbot

import (
	"errors"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/service"
)

type InfoCommand struct {
	service *service.Service
}

func (c *InfoCommand) Run(_ User, args string) (string, error) {
	if args == "" {
		return "", errors.New(`team name is required in the same message, e.g. "/info KSV Baunatal"`)
	}
	team, err := c.service.FindTeam(args)
	if err != nil {
		return "", err
	}
	return printTeam(team), nil
}

func (c *InfoCommand) Help() string {
	return "Team details. Usage: /info and the team name"
}

func printTeam(tp domain.TeamPower) string {
	var buf strings.Builder
	buf.WriteString("Team: ")
	buf.WriteString(tp.Team.TeamName)
	buf.WriteString("\n")
	buf.WriteString("Group: ")
	buf.WriteString(tp.Team.GroupName)
	buf.WriteString(" (")
	buf.WriteString(tp.Team.GroupID)
	buf.WriteString(")\n")
	buf.WriteString("Rank: ")
	buf.WriteString(prettifyRank(tp.Team.Rank))
	buf.WriteString("\n")
	buf.WriteString("Power: ")
	buf.WriteString(strconv.FormatFloat(tp.Overall.Score, 'f', 3, 64))
	buf.WriteString("\n")
	buf.WriteString("Games: ")
	buf.WriteString(strconv.Itoa(tp.Team.Games))
	buf.WriteString(" (")
	buf.WriteString(strconv.Itoa(tp.Team.Wins))
	buf.WriteString("-")
	buf.WriteString(strconv.Itoa(tp.Team.Draws))
	buf.WriteString("-")
	buf.WriteString(strconv.Itoa(tp.Team.Losses))
	buf.WriteString(")\n")
	buf.WriteString("Goals: ")
	buf.WriteString(strconv.Itoa(tp.Team.GoalsFor))
	buf.WriteString(":")
	buf.WriteString(strconv.Itoa(tp.Team.GoalsAgainst))
	return buf.String()
}

func prettifyRank(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	}
	return strconv.Itoa(rank)
}

func (c *InfoCommand) Permission() mapset.Set[UserRole] {
	return mapset.NewSet(everyone...)
}
