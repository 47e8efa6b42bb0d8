package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/goserg/powerrank/internal/cache/mem"
	"github.com/goserg/powerrank/internal/compare"
	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/enhanced"
	"github.com/goserg/powerrank/internal/power"
	"github.com/goserg/powerrank/internal/recommend"
	"github.com/goserg/powerrank/internal/storage"
	"github.com/goserg/powerrank/internal/trend"
	"github.com/goserg/powerrank/internal/weights"
)

var (
	ErrNoData       = errors.New("no data loaded")
	ErrUnknownTeam  = errors.New("unknown team")
	ErrUnknownGroup = errors.New("unknown group")
)

// RatingSource turns a match log into one rating per team.
type RatingSource interface {
	Ratings(teams []domain.TeamStats, matches []domain.Match) []domain.RatingEntry
}

// state is everything derived from one snapshot. It is replaced as a whole
// so every answer is computed from the same data.
type state struct {
	snapshot domain.Snapshot
	groups   map[string]int
	teams    []domain.TeamStats
	matches  []domain.Match
	overall  []domain.TeamPower
	bounds   power.MetricBounds
	ratings  []domain.RatingEntry
}

type Service struct {
	storage  storage.SnapshotStorage
	cache    *mem.Cache
	source   RatingSource
	ranker   *compare.Ranker
	enhanced domain.EnhancedConfig
	log      *logrus.Entry

	mu        sync.RWMutex
	state     *state
	listeners []func(domain.Snapshot)
}

func New(
	st storage.SnapshotStorage,
	cache *mem.Cache,
	source RatingSource,
	ranker *compare.Ranker,
	enhancedDefaults domain.EnhancedConfig,
	log *logrus.Logger,
) *Service {
	return &Service{
		storage:  st,
		cache:    cache,
		source:   source,
		ranker:   ranker,
		enhanced: enhancedDefaults,
		log:      log.WithField("from", "service"),
	}
}

// Load reads the latest stored snapshot. An empty store is not an error.
func (s *Service) Load(ctx context.Context) error {
	snapshot, err := s.storage.LatestSnapshot(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		s.log.Info("no snapshot stored yet")
		return nil
	}
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}
	s.apply(snapshot)
	return nil
}

// Replace stores groups as a new snapshot and serves it from now on.
func (s *Service) Replace(ctx context.Context, groups []domain.GroupSnapshot) (domain.Snapshot, error) {
	snapshot, err := s.storage.SaveSnapshot(ctx, groups)
	if err != nil {
		return domain.Snapshot{}, err
	}
	s.apply(snapshot)
	return snapshot, nil
}

func (s *Service) apply(snapshot domain.Snapshot) {
	st := s.build(snapshot)

	s.mu.Lock()
	s.state = st
	listeners := s.listeners
	s.mu.Unlock()

	s.cache.Update(st.overall)
	s.log.WithFields(logrus.Fields{
		"snapshot": snapshot.ID,
		"groups":   len(snapshot.Groups),
		"teams":    len(st.teams),
	}).Info("ranking updated")

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// OnUpdate registers fn to run after every new snapshot is applied.
func (s *Service) OnUpdate(fn func(domain.Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Service) build(snapshot domain.Snapshot) *state {
	st := &state{
		snapshot: snapshot,
		groups:   make(map[string]int, len(snapshot.Groups)),
	}
	for i, g := range snapshot.Groups {
		st.groups[g.Group.ID] = i
		st.teams = append(st.teams, power.ApplyMatchAggregates(g.Teams, g.Matches)...)
		st.matches = append(st.matches, g.Matches...)
	}
	st.overall = power.Calculate(st.teams)
	st.bounds = power.Bounds(st.teams)
	st.ratings = s.source.Ratings(st.teams, st.matches)
	return st
}

func (s *Service) current() (*state, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state == nil || s.state.snapshot.ID == uuid.Nil {
		return nil, ErrNoData
	}
	return s.state, nil
}

func (s *Service) Snapshot() (domain.Snapshot, error) {
	st, err := s.current()
	if err != nil {
		return domain.Snapshot{}, err
	}
	return st.snapshot, nil
}

// Snapshots lists the stored snapshots newest first, without their groups.
func (s *Service) Snapshots(ctx context.Context) ([]domain.Snapshot, error) {
	snapshots, err := s.storage.ListSnapshots(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snapshots, nil
}

func (s *Service) Groups() ([]domain.GroupSummary, error) {
	st, err := s.current()
	if err != nil {
		return nil, err
	}
	summaries := make([]domain.GroupSummary, 0, len(st.snapshot.Groups))
	for _, g := range st.snapshot.Groups {
		summaries = append(summaries, domain.GroupSummary{
			ID:          g.Group.ID,
			Name:        g.Group.Name,
			LastUpdated: g.Group.ScrapedAt,
			TeamCount:   len(g.Teams),
		})
	}
	return summaries, nil
}

type GroupTable struct {
	Group domain.GroupSummary `json:"group"`
	Teams []domain.TeamPower  `json:"teams"`
}

// Group returns the teams of a group ranked by their group Power score.
func (s *Service) Group(id string) (GroupTable, error) {
	st, err := s.current()
	if err != nil {
		return GroupTable{}, err
	}
	g, err := st.group(id)
	if err != nil {
		return GroupTable{}, err
	}
	return GroupTable{
		Group: domain.GroupSummary{
			ID:          g.Group.ID,
			Name:        g.Group.Name,
			LastUpdated: g.Group.ScrapedAt,
			TeamCount:   len(g.Teams),
		},
		Teams: power.GroupTable(st.overall, g.Group.ID),
	}, nil
}

func (st *state) group(id string) (domain.GroupSnapshot, error) {
	i, ok := st.groups[NormalizeGroupID(id)]
	if !ok {
		return domain.GroupSnapshot{}, fmt.Errorf("%w: %q", ErrUnknownGroup, id)
	}
	return st.snapshot.Groups[i], nil
}

// TeamMatches returns the matches of teamID inside a group in id order.
func (s *Service) TeamMatches(groupID, teamID string) ([]domain.Match, error) {
	st, err := s.current()
	if err != nil {
		return nil, err
	}
	g, err := st.group(groupID)
	if err != nil {
		return nil, err
	}
	teamID = strings.TrimSpace(teamID)
	matches := domain.FilterTeam(g.Matches, teamID)
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].ID < matches[j].ID
	})
	return matches, nil
}

func (s *Service) Overall() ([]domain.TeamPower, error) {
	st, err := s.current()
	if err != nil {
		return nil, err
	}
	overall := make([]domain.TeamPower, len(st.overall))
	copy(overall, st.overall)
	return overall, nil
}

func (s *Service) OverallElo() ([]domain.RatingEntry, error) {
	st, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.ranker.EloOrder(st.ratings), nil
}

func (s *Service) Compare() ([]domain.CompareRow, error) {
	st, err := s.current()
	if err != nil {
		return nil, err
	}
	return s.ranker.Compare(st.overall, st.ratings), nil
}

// EnhancedDefaults is the configuration used when a request sets nothing.
func (s *Service) EnhancedDefaults() domain.EnhancedConfig {
	return s.enhanced
}

func (s *Service) Enhanced(cfg domain.EnhancedConfig) ([]domain.EnhancedResult, error) {
	st, err := s.current()
	if err != nil {
		return nil, err
	}
	base := make(map[string]float64, len(st.overall))
	for _, tp := range st.overall {
		base[tp.Team.TeamID] = tp.Overall.Score
	}
	return enhanced.Calculate(st.teams, st.matches, base, cfg), nil
}

// FindTeam resolves a team by id, then by name.
func (s *Service) FindTeam(ref string) (domain.TeamPower, error) {
	st, err := s.current()
	if err != nil {
		return domain.TeamPower{}, err
	}
	return s.findTeam(st, ref)
}

func (s *Service) findTeam(st *state, ref string) (domain.TeamPower, error) {
	ref = strings.TrimSpace(ref)
	for _, tp := range st.overall {
		if tp.Team.TeamID == ref {
			return tp, nil
		}
	}
	if tp, ok := s.cache.GetTeamByName(ref); ok {
		return tp, nil
	}
	return domain.TeamPower{}, fmt.Errorf("%w: %q", ErrUnknownTeam, ref)
}

// Trend builds the season-to-date series of a team from its group matches,
// normalized with the bounds of the current overall population.
func (s *Service) Trend(teamRef string, metric trend.Metric) (trend.Series, error) {
	st, err := s.current()
	if err != nil {
		return trend.Series{}, err
	}
	tp, err := s.findTeam(st, teamRef)
	if err != nil {
		return trend.Series{}, err
	}
	var matches []domain.Match
	if g, err := st.group(tp.Team.GroupID); err == nil {
		matches = g.Matches
	}
	points := trend.Build(tp.Team.TeamID, matches, st.bounds)
	return trend.Project(tp.Team.TeamID, points, metric), nil
}

// Recommend splits the overall order into groups balanced by Power. A
// non-positive count uses the number of current groups.
func (s *Service) Recommend(groups int) ([]recommend.Group, error) {
	st, err := s.current()
	if err != nil {
		return nil, err
	}
	if groups <= 0 {
		groups = len(st.snapshot.Groups)
	}
	return recommend.Balanced(st.overall, groups), nil
}

func (s *Service) Rebalance(key string, value float64, current weights.Weights) (weights.Weights, error) {
	k, err := weights.ParseKey(key)
	if err != nil {
		return weights.Weights{}, err
	}
	return weights.Rebalance(k, value, current), nil
}

// NormalizeGroupID maps "3", "Group3" and "group3" to "group3".
func NormalizeGroupID(input string) string {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return ""
	}
	if suffix, ok := strings.CutPrefix(input, "group"); ok {
		if isNumeric(suffix) {
			return "group" + suffix
		}
		return input
	}
	if isNumeric(input) {
		return "group" + input
	}
	return input
}

func isNumeric(v string) bool {
	_, err := strconv.Atoi(v)
	return err == nil
}
