package tgbot

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goserg/powerrank/internal/cache/mem"
	"github.com/goserg/powerrank/internal/compare"
	"github.com/goserg/powerrank/internal/domain"
	"github.com/goserg/powerrank/internal/glicko"
	"github.com/goserg/powerrank/internal/service"
	"github.com/goserg/powerrank/internal/storage/sqlite"
)

func newCommands(t *testing.T) (*Commands, *subscriptions) {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	st, err := sqlite.New(filepath.Join(t.TempDir(), "bot.sqlite"), log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	svc := service.New(st, mem.New(), glicko.New(), compare.New(compare.DefaultInactivePrefix),
		domain.DefaultEnhancedConfig(), log)
	_, err = svc.Replace(context.Background(), []domain.GroupSnapshot{{
		Group: domain.Group{ID: "group1", Name: "Gr. 1"},
		Teams: []domain.TeamStats{
			{GroupID: "group1", GroupName: "Gr. 1", TeamID: "1", TeamName: "KSV Baunatal"},
			{GroupID: "group1", GroupName: "Gr. 1", TeamID: "2", TeamName: "OSC Vellmar"},
		},
		Matches: []domain.Match{{
			ID: "m1", GroupID: "group1", HomeTeamID: "1", AwayTeamID: "2",
			HomeScore: 4, AwayScore: 1, Status: domain.MatchPlayed, MatchdayTag: "1",
		}},
	}})
	require.NoError(t, err)

	subs := newSubs()
	return NewCommands(svc, &subs), &subs
}

var (
	admin = User{ID: 1, ChatID: 1, Role: RoleAdmin}
	user  = User{ID: 2, ChatID: 2, Role: RoleUser}
)

func TestCommands_RunCommand(t *testing.T) {
	commands, _ := newCommands(t)
	tests := []struct {
		name     string
		user     User
		cmd      string
		args     string
		contains string
		wantErr  error
	}{
		{name: "top", user: user, cmd: "top", contains: "1. KSV Baunatal (1.000)"},
		{name: "case insensitive", user: user, cmd: "TOP", contains: "KSV Baunatal"},
		{name: "enhanced", user: user, cmd: "enhanced", contains: "1. KSV Baunatal"},
		{name: "compare", user: user, cmd: "compare", contains: "1. KSV Baunatal"},
		{name: "info", user: user, cmd: "info", args: "ksv  baunatal", contains: "Goals: 4:1"},
		{name: "info by id", user: user, cmd: "info", args: "2", contains: "Team: OSC Vellmar"},
		{name: "info unknown", user: user, cmd: "info", args: "Nobody", wantErr: service.ErrUnknownTeam},
		{name: "unknown command", user: user, cmd: "game", wantErr: ErrBadRequest},
		{name: "admin only", user: user, cmd: "snapshot", wantErr: ErrBadRequest},
		{name: "admin snapshot", user: admin, cmd: "snapshot", contains: "Groups: 1"},
		{name: "help for command", user: user, cmd: "help", args: "/info", contains: "Usage: /info"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := commands.RunCommand(tt.user, tt.cmd, tt.args)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Contains(t, got, tt.contains)
		})
	}
}

func TestCommands_InfoWithoutName(t *testing.T) {
	commands, _ := newCommands(t)
	_, err := commands.RunCommand(user, "info", "  ")
	assert.Error(t, err)
}

func TestHelpCommand_Visibility(t *testing.T) {
	commands, _ := newCommands(t)

	got, err := commands.RunCommand(user, "help", "")
	require.NoError(t, err)
	assert.Contains(t, got, "/top\n")
	assert.NotContains(t, got, "/snapshot")

	got, err = commands.RunCommand(admin, "help", "")
	require.NoError(t, err)
	assert.Contains(t, got, "/snapshot\n")
}

func TestSubCommand(t *testing.T) {
	commands, subs := newCommands(t)

	got, err := commands.RunCommand(user, "sub", "")
	require.NoError(t, err)
	assert.Equal(t, "Subscribed to ranking updates", got)
	got, err = commands.RunCommand(user, "sub", "")
	require.NoError(t, err)
	assert.Equal(t, "Already subscribed", got)
	assert.Equal(t, []int64{2}, subs.ChatIDs())

	_, err = commands.RunCommand(user, "unsub", "")
	require.NoError(t, err)
	assert.Empty(t, subs.ChatIDs())
}
