package tgbot

import (
	"fmt"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/goserg/powerrank/internal/service"
)

const topSize = 10

type TopCommand struct {
	service *service.Service
}

func (c *TopCommand) Run(_ User, _ string) (string, error) {
	teams, err := c.service.Overall()
	if err != nil {
		return "", err
	}
	var buffer strings.Builder
	for i, tp := range teams {
		if i >= topSize {
			break
		}
		fmt.Fprintf(&buffer, "%d. %s (%.3f)\n", tp.Team.Rank, tp.Team.TeamName, tp.Overall.Score)
	}
	return buffer.String(), nil
}

func (c *TopCommand) Help() string {
	return "Top teams by Power score across all groups"
}

func (c *TopCommand) Permission() mapset.Set[UserRole] {
	return mapset.NewSet(everyone...)
}

type EnhancedCommand struct {
	service *service.Service
}

func (c *EnhancedCommand) Run(_ User, _ string) (string, error) {
	results, err := c.service.Enhanced(c.service.EnhancedDefaults())
	if err != nil {
		return "", err
	}
	var buffer strings.Builder
	for i, r := range results {
		if i >= topSize {
			break
		}
		fmt.Fprintf(&buffer, "%d. %s (%.3f, SoS x%.2f)\n", i+1, r.TeamName, r.EnhancedPower, r.SoSMultiplier)
	}
	return buffer.String(), nil
}

func (c *EnhancedCommand) Help() string {
	return "Top teams by enhanced Power score with the server defaults"
}

func (c *EnhancedCommand) Permission() mapset.Set[UserRole] {
	return mapset.NewSet(everyone...)
}

type CompareCommand struct {
	service *service.Service
}

func (c *CompareCommand) Run(_ User, _ string) (string, error) {
	rows, err := c.service.Compare()
	if err != nil {
		return "", err
	}
	var buffer strings.Builder
	for i, row := range rows {
		if i >= topSize {
			break
		}
		fmt.Fprintf(&buffer, "%d. %s elo %.0f, power #%d (%+d)\n",
			row.EloPosition, row.TeamName, row.Rating, row.PowerPosition, row.DeltaRank)
	}
	return buffer.String(), nil
}

func (c *CompareCommand) Help() string {
	return "Elo order next to the Power order"
}

func (c *CompareCommand) Permission() mapset.Set[UserRole] {
	return mapset.NewSet(everyone...)
}
