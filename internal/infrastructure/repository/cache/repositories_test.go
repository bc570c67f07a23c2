package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/season"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/squad"
	basecache "github.com/riskibarqy/sportsline-dashboard/internal/platform/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingSeasonRepo struct {
	calls int
	err   error
}

func (r *countingSeasonRepo) GetCurrent(_ context.Context, leagueSlug string) (season.Season, bool, error) {
	r.calls++
	if r.err != nil {
		return season.Season{}, false, r.err
	}
	if leagueSlug != "kbo" {
		return season.Season{}, false, nil
	}
	return season.Season{ID: 1, LeagueSlug: "kbo", Year: 2026, IsCurrent: true}, true, nil
}

type countingSquadRepo struct {
	calls int
	items []squad.Membership
}

func (r *countingSquadRepo) ListBySeason(context.Context, int64, int) ([]squad.Membership, error) {
	r.calls++
	return r.items, nil
}

func (r *countingSquadRepo) ListCurrentByPlayer(context.Context, string, int64) ([]squad.Membership, error) {
	r.calls++
	return r.items, nil
}

func TestSeasonRepository_CachesHitsAndMisses(t *testing.T) {
	next := &countingSeasonRepo{}
	repo := NewSeasonRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		item, ok, err := repo.GetCurrent(ctx, "kbo")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, 2026, item.Year)

		_, ok, err = repo.GetCurrent(ctx, "mls")
		require.NoError(t, err)
		assert.False(t, ok)
	}
	assert.Equal(t, 2, next.calls)
}

func TestSeasonRepository_ErrorsAreNotCached(t *testing.T) {
	next := &countingSeasonRepo{err: errors.New("db down")}
	repo := NewSeasonRepository(next, basecache.NewStore(time.Minute))

	_, _, err := repo.GetCurrent(context.Background(), "kbo")
	require.Error(t, err)
	_, _, err = repo.GetCurrent(context.Background(), "kbo")
	require.Error(t, err)
	assert.Equal(t, 2, next.calls)
}

func TestSquadRepository_ReturnsCopies(t *testing.T) {
	next := &countingSquadRepo{items: []squad.Membership{{ID: 1, Position: "P"}}}
	repo := NewSquadRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	first, err := repo.ListBySeason(ctx, 1, 200)
	require.NoError(t, err)
	first[0].Position = "mutated"

	second, err := repo.ListBySeason(ctx, 1, 200)
	require.NoError(t, err)
	assert.Equal(t, "P", second[0].Position)
	assert.Equal(t, 1, next.calls)
}

func TestGameListKey_BucketsBoundsByMinute(t *testing.T) {
	base := time.Date(2026, 3, 28, 12, 0, 5, 0, time.UTC)
	q1 := game.Query{LeagueSlug: "kbo", Statuses: game.FinishedStatuses, Before: base, Limit: 20}
	q2 := q1
	q2.Before = base.Add(30 * time.Second)
	q3 := q1
	q3.Before = base.Add(2 * time.Minute)

	assert.Equal(t, gameListKey(q1), gameListKey(q2))
	assert.NotEqual(t, gameListKey(q1), gameListKey(q3))
	assert.Contains(t, gameListKey(game.Query{LeagueSlug: "nba"}), "games:nba::-:-:")
}
