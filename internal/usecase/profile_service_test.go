package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/player"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/season"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/statvalue"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/team"
	"github.com/riskibarqy/sportsline-dashboard/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/sportsline-dashboard/internal/platform/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededProfileService(ds memory.Dataset) *ProfileService {
	store := memory.NewStore(ds)
	return NewProfileService(
		nil,
		memory.NewPlayerRepository(store),
		memory.NewSquadRepository(store),
		memory.NewPlayerStatsRepository(store),
		logging.NewNop(),
	)
}

func TestProfileService_GetPlayerProfile_KBOScenario(t *testing.T) {
	t.Parallel()

	service := newSeededProfileService(memory.SeedDataset(testNow))

	profile, err := service.GetPlayerProfile(context.Background(), "kbo", memory.PlayerIDHong)
	require.NoError(t, err)

	assert.Equal(t, "kbo", profile.League.Slug)
	assert.Equal(t, "Hong", profile.Player.Name)
	require.NotNil(t, profile.CurrentSquad)
	assert.Equal(t, "Samsung", profile.CurrentSquad.Team.Name)
	assert.Equal(t, statvalue.Pairs{{Key: "ERA", Value: "6.34"}, {Key: "G", Value: "58"}}, profile.SeasonStats)
	assert.True(t, profile.HasSeasonStats)
	assert.Equal(t, 2026, profile.SeasonYear)
	require.NotNil(t, profile.SeasonTeam)
	assert.Equal(t, "Samsung", profile.SeasonTeam.Name)

	require.Len(t, profile.RecentGames, 2)
	away := profile.RecentGames[0]
	assert.Equal(t, int64(5002), away.GameID)
	assert.Equal(t, game.SideAway, away.Side)
	assert.True(t, away.Opponent.Known)
	assert.Equal(t, "Doosan", away.Opponent.Team.Name)
	assert.Equal(t, "IP:5.1, H:6, ER:3", away.Summary)

	home := profile.RecentGames[1]
	assert.Equal(t, game.SideHome, home.Side)
	assert.Equal(t, "LG", home.Opponent.Team.Name)
	assert.Equal(t, "IP:6.0, H:4, ER:2", home.Summary)
}

func TestProfileService_GetPlayerProfile_NoSquadNoStats(t *testing.T) {
	t.Parallel()

	ds := memory.SeedDataset(testNow)
	ds.Players = append(ds.Players, player.Player{ID: 4242, Name: "Rookie"})
	service := newSeededProfileService(ds)

	profile, err := service.GetPlayerProfile(context.Background(), "kbo", 4242)
	require.NoError(t, err)
	assert.Nil(t, profile.CurrentSquad)
	assert.NotNil(t, profile.SeasonStats)
	assert.Empty(t, profile.SeasonStats)
	assert.False(t, profile.HasSeasonStats)
	assert.Nil(t, profile.SeasonTeam)
	assert.Empty(t, profile.RecentGames)
}

func TestProfileService_GetPlayerProfile_PastSquadHasUnknownOpponent(t *testing.T) {
	t.Parallel()

	ds := memory.SeedDataset(testNow)
	ds = memory.SeedGameHistory(ds, "kbo", memory.PlayerIDKim, memory.TeamIDDoosan, memory.TeamIDLG, 9000, 2, testNow)
	service := newSeededProfileService(ds)

	profile, err := service.GetPlayerProfile(context.Background(), "kbo", memory.PlayerIDKim)
	require.NoError(t, err)
	assert.Equal(t, "Kim Minjae", profile.Player.DisplayName())
	assert.Nil(t, profile.CurrentSquad)
	require.Len(t, profile.RecentGames, 2)
	for _, row := range profile.RecentGames {
		assert.False(t, row.Opponent.Known)
		assert.Equal(t, game.SideUnknown, row.Side)
	}
}

func TestProfileService_GetPlayerProfile_FifteenGamesKeepsTen(t *testing.T) {
	t.Parallel()

	ds := memory.Dataset{
		Seasons: []season.Season{{ID: 1, LeagueSlug: "kbo", Year: 2026, IsCurrent: true}},
		Teams:   []team.Team{{ID: 1, Name: "Samsung"}, {ID: 2, Name: "LG"}},
		Players: []player.Player{{ID: 7, Name: "Hong"}},
	}
	ds = memory.SeedGameHistory(ds, "kbo", 7, 1, 2, 100, 15, testNow)
	service := newSeededProfileService(ds)

	profile, err := service.GetPlayerProfile(context.Background(), "kbo", 7)
	require.NoError(t, err)
	require.Len(t, profile.RecentGames, RecentGamesLimit)

	for i := 1; i < len(profile.RecentGames); i++ {
		assert.True(t, profile.RecentGames[i-1].Date.After(profile.RecentGames[i].Date))
	}
	assert.Equal(t, int64(100), profile.RecentGames[0].GameID)
	assert.Equal(t, int64(109), profile.RecentGames[9].GameID)
	for _, row := range profile.RecentGames {
		assert.NotEqual(t, int64(110), row.GameID)
	}
}

func TestProfileService_GetPlayerProfile_BasketballPositional(t *testing.T) {
	t.Parallel()

	ds := memory.SeedDataset(testNow)
	ds.Games = append(ds.Games, game.Game{
		ID: 6002, LeagueSlug: "nba", Date: testNow.Add(-2 * time.Hour), Status: game.StatusFinal,
		HomeTeam: team.Team{ID: memory.TeamIDLakers}, AwayTeam: team.Team{ID: memory.TeamIDCeltics},
	})
	ds.GameStats = append(ds.GameStats, memory.GameStatRecord{
		ID: 99, PlayerID: memory.PlayerIDJames, TeamID: memory.TeamIDLakers, GameID: 6002,
		Payload: []byte(`{"unexpected": true}`),
	})
	service := newSeededProfileService(ds)

	profile, err := service.GetPlayerProfile(context.Background(), "nba", memory.PlayerIDJames)
	require.NoError(t, err)
	require.Len(t, profile.RecentGames, 2)

	malformed := profile.RecentGames[0]
	assert.Equal(t, playerstats.ShapeFixedPositional, malformed.Shape)
	assert.Equal(t, "Boston Celtics", malformed.Opponent.Team.Name)
	for _, v := range malformed.Positional {
		assert.Equal(t, "-", v)
	}

	full := profile.RecentGames[1]
	assert.Equal(t, "38", full.Positional[0])
	assert.Equal(t, "27", full.Positional[13])
	assert.Empty(t, full.Summary)
	assert.Equal(t, "Boston Celtics", full.Opponent.Team.Name)
	assert.Equal(t, 1, profile.MalformedStats)
}

func TestProfileService_GetPlayerProfile_NotFound(t *testing.T) {
	t.Parallel()

	service := newSeededProfileService(memory.SeedDataset(testNow))

	_, err := service.GetPlayerProfile(context.Background(), "kbo", 777)
	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = service.GetPlayerProfile(context.Background(), "kbo", 0)
	assert.ErrorIs(t, err, ErrPlayerNotFound)

	_, err = service.GetPlayerProfile(context.Background(), "xfl", memory.PlayerIDHong)
	assert.ErrorIs(t, err, ErrUnknownLeague)
}
