package domain

// Metrics holds offense, defense and dominance. Raw values are unbounded,
// normalized values lie in [0,1].
type Metrics struct {
	Offense   float64 `json:"offense"`
	Defense   float64 `json:"defense"`
	Dominance float64 `json:"dominance"`
}

type PowerScore struct {
	Raw        Metrics `json:"raw"`
	Normalized Metrics `json:"normalized"`
	Score      float64 `json:"powerScore"`
}

// TeamPower couples a team with its score inside its own group and across
// all groups.
type TeamPower struct {
	Team    TeamStats  `json:"team"`
	Group   PowerScore `json:"groupMetrics"`
	Overall PowerScore `json:"overallMetrics"`
}

// RatingEntry is an externally computed rating (Elo, Glicko-2) of a team.
type RatingEntry struct {
	TeamID   string  `json:"teamId"`
	TeamName string  `json:"teamName"`
	GroupID  string  `json:"groupId"`
	Rating   float64 `json:"elo"`
	Games    int     `json:"games"`
}

type CompareRow struct {
	TeamID        string  `json:"teamId"`
	TeamName      string  `json:"teamName"`
	GroupID       string  `json:"groupId"`
	Rating        float64 `json:"elo"`
	Games         int     `json:"games"`
	Inactive      bool    `json:"inactive"`
	Power         float64 `json:"power"`
	EloPosition   int     `json:"eloRank"`
	PowerPosition int     `json:"powerRank"`
	DeltaRank     int     `json:"delta"`
}

type TrendPoint struct {
	Matchday  int     `json:"x"`
	Offense   float64 `json:"offense"`
	Defense   float64 `json:"defense"`
	Dominance float64 `json:"dominance"`
	Power     float64 `json:"power"`
}
