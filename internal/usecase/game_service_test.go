package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/league"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/team"
	"github.com/riskibarqy/sportsline-dashboard/internal/infrastructure/repository/memory"
	gamemock "github.com/riskibarqy/sportsline-dashboard/internal/mocks/domain/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newSeededGameService(ds memory.Dataset) *GameService {
	service := NewGameService(nil, memory.NewGameRepository(memory.NewStore(ds)), 3)
	service.now = func() time.Time { return testNow }
	return service
}

func TestGameService_ResultsAndSchedule(t *testing.T) {
	t.Parallel()

	ds := memory.SeedDataset(testNow)
	ds = memory.SeedGameHistory(ds, "kbo", memory.PlayerIDHong, memory.TeamIDSamsung, memory.TeamIDLG, 7000, 25, testNow)
	service := newSeededGameService(ds)

	results, err := service.ListResults(context.Background(), "kbo")
	require.NoError(t, err)
	require.Len(t, results, GameListLimit)
	for i := 1; i < len(results); i++ {
		assert.False(t, results[i-1].Date.Before(results[i].Date))
		assert.True(t, game.IsFinishedStatus(results[i].Status))
	}

	schedule, err := service.ListSchedule(context.Background(), "kbo")
	require.NoError(t, err)
	require.Len(t, schedule, 1)
	assert.Equal(t, int64(5003), schedule[0].ID)

	_, err = service.ListResults(context.Background(), "xfl")
	assert.ErrorIs(t, err, ErrUnknownLeague)
}

func TestGameService_LatestResults_LeaguesWithResultFirst(t *testing.T) {
	t.Parallel()

	service := newSeededGameService(memory.SeedDataset(testNow))

	latest, err := service.LatestResults(context.Background())
	require.NoError(t, err)
	require.Len(t, latest, league.DefaultCatalog().Len())

	assert.Equal(t, "kbo", latest[0].League.Slug)
	require.NotNil(t, latest[0].Game)
	assert.Equal(t, int64(5002), latest[0].Game.ID)
	assert.Equal(t, "nba", latest[1].League.Slug)
	require.NotNil(t, latest[1].Game)

	assert.Equal(t, "mlb", latest[2].League.Slug)
	for _, item := range latest[2:] {
		assert.Nil(t, item.Game, item.League.Slug)
	}
}

func TestGameService_LatestResults_StoreFailureUsingMockery(t *testing.T) {
	t.Parallel()

	repo := gamemock.NewRepository(t)
	repo.On("List", mock.Anything, mock.MatchedBy(func(q game.Query) bool { return q.LeagueSlug == "epl" })).
		Return(nil, errors.New("too many connections")).
		Once()
	repo.On("List", mock.Anything, mock.MatchedBy(func(q game.Query) bool { return q.LeagueSlug != "epl" })).
		Return([]game.Game{{ID: 1, HomeTeam: team.Team{ID: 1}, AwayTeam: team.Team{ID: 2}}}, nil)

	service := NewGameService(nil, repo, 2)
	_, err := service.LatestResults(context.Background())
	assert.ErrorIs(t, err, ErrDataStoreUnavailable)
	assert.Contains(t, err.Error(), "epl")
}
