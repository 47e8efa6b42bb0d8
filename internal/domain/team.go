package domain

import (
	"time"

	"github.com/google/uuid"
)

type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ScrapedAt time.Time `json:"scrapedAt"`
}

// GroupSnapshot is the state of one group at a point in time.
type GroupSnapshot struct {
	Group   Group       `json:"group"`
	Teams   []TeamStats `json:"teams"`
	Matches []Match     `json:"matches"`
}

type TeamStats struct {
	GroupID      string `json:"groupId"`
	GroupName    string `json:"groupName"`
	TeamID       string `json:"teamId"`
	TeamName     string `json:"teamName"`
	Rank         int    `json:"rank"`
	Games        int    `json:"games"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goalsFor"`
	GoalsAgainst int    `json:"goalsAgainst"`
	GoalDiff     int    `json:"goalDiff"`
	Points       int    `json:"points"`
}

type GroupSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	LastUpdated time.Time `json:"lastUpdated"`
	TeamCount   int       `json:"teamCount"`
}

func (t TeamStats) GoalDifference() int {
	return t.GoalsFor - t.GoalsAgainst
}

func (t TeamStats) HasGames() bool {
	return t.Games > 0
}

// Snapshot is one consistent import of all groups.
type Snapshot struct {
	ID        uuid.UUID       `json:"id"`
	CreatedAt time.Time       `json:"createdAt"`
	Groups    []GroupSnapshot `json:"groups"`
}
