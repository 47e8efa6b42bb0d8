package webpath

const (
	Health = "/health"

	Api            = "/api"
	ApiGroups      = Api + "/groups"
	ApiGroup       = ApiGroups + "/:id"
	ApiTeamMatches = ApiGroup + "/teams/:team/matches"
	ApiOverall     = Api + "/overall"
	ApiOverallElo  = ApiOverall + "/elo"
	ApiCompare     = Api + "/compare"
	ApiEnhanced    = Api + "/enhanced"
	ApiTrend       = Api + "/teams/:team/trend"
	ApiWeights     = Api + "/weights"
	ApiRecommend   = Api + "/recommendations/simple"
	ApiImport      = Api + "/import"
	ApiExport      = Api + "/export"
	ApiSnapshot    = Api + "/snapshot"
	ApiSnapshots   = Api + "/snapshots"
)

// Path lists the public routes, served on the api index.
func Path() map[string]string {
	return map[string]string{
		"Health":      Health,
		"Groups":      ApiGroups,
		"Group":       ApiGroup,
		"TeamMatches": ApiTeamMatches,
		"Overall":     ApiOverall,
		"OverallElo":  ApiOverallElo,
		"Compare":     ApiCompare,
		"Enhanced":    ApiEnhanced,
		"Trend":       ApiTrend,
		"Weights":     ApiWeights,
		"Recommend":   ApiRecommend,
		"Import":      ApiImport,
		"Export":      ApiExport,
		"Snapshot":    ApiSnapshot,
		"Snapshots":   ApiSnapshots,
	}
}
