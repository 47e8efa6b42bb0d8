// Package compare puts an external rating table (Elo, Glicko-2) next to the
// overall Power ranking.
package compare

import (
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/cases"

	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/normalize"
	"github.com/goserg/powerrank/internal/power"
)

// DefaultInactivePrefix marks withdrawn teams ("zg." for zurückgezogen).
const DefaultInactivePrefix = "zg."

type Ranker struct {
	inactivePrefix string
}

func New(inactivePrefix string) *Ranker {
	return &Ranker{inactivePrefix: cases.Fold().String(strings.TrimSpace(inactivePrefix))}
}

// Inactive reports whether a rated team should be listed after all active
// ones: it has no rated games or its name carries the inactive marker.
func (r *Ranker) Inactive(entry domain.RatingEntry) bool {
	if entry.Games == 0 {
		return true
	}
	if r.inactivePrefix == "" {
		return false
	}
	return strings.HasPrefix(cases.Fold().String(strings.TrimSpace(entry.TeamName)), r.inactivePrefix)
}

// EloOrder returns ratings with active teams first, each part by rating
// descending and team name ascending.
func (r *Ranker) EloOrder(ratings []domain.RatingEntry) []domain.RatingEntry {
	ordered := make([]domain.RatingEntry, len(ratings))
	copy(ordered, ratings)
	inactive := r.InactiveTeams(ratings)
	names := normalize.NameCollator()
	sort.SliceStable(ordered, func(i, j int) bool {
		ai, aj := inactive.Contains(ordered[i].TeamID), inactive.Contains(ordered[j].TeamID)
		if ai != aj {
			return aj
		}
		if ordered[i].Rating != ordered[j].Rating {
			return ordered[i].Rating > ordered[j].Rating
		}
		return names.CompareString(ordered[i].TeamName, ordered[j].TeamName) < 0
	})
	return ordered
}

// Compare builds one row per rated team in Elo order. powerRanked must be
// the overall Power order; a team missing from it gets power position 0.
// DeltaRank is powerPosition - eloPosition.
func (r *Ranker) Compare(powerRanked []domain.TeamPower, ratings []domain.RatingEntry) []domain.CompareRow {
	powerPos := power.Positions(powerRanked)
	powerScore := make(map[string]float64, len(powerRanked))
	for _, tp := range powerRanked {
		powerScore[tp.Team.TeamID] = tp.Overall.Score
	}

	ordered := r.EloOrder(ratings)
	inactive := r.InactiveTeams(ratings)
	rows := make([]domain.CompareRow, 0, len(ordered))
	for i, entry := range ordered {
		eloPos := i + 1
		rows = append(rows, domain.CompareRow{
			TeamID:        entry.TeamID,
			TeamName:      entry.TeamName,
			GroupID:       entry.GroupID,
			Rating:        entry.Rating,
			Games:         entry.Games,
			Inactive:      inactive.Contains(entry.TeamID),
			Power:         powerScore[entry.TeamID],
			EloPosition:   eloPos,
			PowerPosition: powerPos[entry.TeamID],
			DeltaRank:     powerPos[entry.TeamID] - eloPos,
		})
	}
	return rows
}

// InactiveTeams returns the ids of every inactive rated team.
func (r *Ranker) InactiveTeams(ratings []domain.RatingEntry) mapset.Set[string] {
	set := mapset.NewThreadUnsafeSet[string]()
	for _, entry := range ratings {
		if r.Inactive(entry) {
			set.Add(entry.TeamID)
		}
	}
	return set
}
