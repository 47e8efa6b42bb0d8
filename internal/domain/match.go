package domain

type MatchStatus string

const (
	MatchPlayed    MatchStatus = "played"
	MatchNotPlayed MatchStatus = "not_played"
)

// Match is one fixture of a group. Scores are only meaningful when the
// match was played.
type Match struct {
	ID          string      `json:"id"`
	GroupID     string      `json:"groupId"`
	HomeTeamID  string      `json:"homeTeamId"`
	HomeTeam    string      `json:"homeTeam"`
	AwayTeamID  string      `json:"awayTeamId"`
	AwayTeam    string      `json:"awayTeam"`
	HomeScore   int         `json:"homeScore"`
	AwayScore   int         `json:"awayScore"`
	Status      MatchStatus `json:"status"`
	Note        string      `json:"note,omitempty"`
	MatchDate   string      `json:"matchDate,omitempty"`
	MatchdayTag string      `json:"matchdayTag,omitempty"`
}

func (m Match) Played() bool {
	return m.Status == MatchPlayed
}

func (m Match) Involves(teamID string) bool {
	return m.HomeTeamID == teamID || m.AwayTeamID == teamID
}

// Side returns the match seen from teamID: goals scored, goals conceded and
// the opponent id. ok is false when the team did not take part.
func (m Match) Side(teamID string) (goalsFor, goalsAgainst int, opponentID string, ok bool) {
	switch teamID {
	case m.HomeTeamID:
		return m.HomeScore, m.AwayScore, m.AwayTeamID, true
	case m.AwayTeamID:
		return m.AwayScore, m.HomeScore, m.HomeTeamID, true
	}
	return 0, 0, "", false
}

// FilterTeam returns the matches of teamID, played or not, in input order.
func FilterTeam(matches []Match, teamID string) []Match {
	result := make([]Match, 0)
	for _, match := range matches {
		if match.Involves(teamID) {
			result = append(result, match)
		}
	}
	return result
}
