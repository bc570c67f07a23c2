package cache

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/league"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/player"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/season"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/squad"
	basecache "github.com/riskibarqy/sportsline-dashboard/internal/platform/cache"
)

// cachedLookup keeps the found flag next to the value so misses are cached
// too.
type cachedLookup[T any] struct {
	value  T
	exists bool
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) GetCurrent(ctx context.Context, leagueSlug string) (season.Season, bool, error) {
	cached, err := basecache.Load(ctx, r.cache, "season:current:"+leagueSlug, func(ctx context.Context) (cachedLookup[season.Season], error) {
		item, exists, err := r.next.GetCurrent(ctx, leagueSlug)
		if err != nil {
			return cachedLookup[season.Season]{}, err
		}
		return cachedLookup[season.Season]{value: item, exists: exists}, nil
	})
	if err != nil {
		return season.Season{}, false, err
	}
	return cached.value, cached.exists, nil
}

type SquadRepository struct {
	next  squad.Repository
	cache *basecache.Store
}

func NewSquadRepository(next squad.Repository, cache *basecache.Store) *SquadRepository {
	return &SquadRepository{next: next, cache: cache}
}

func (r *SquadRepository) ListBySeason(ctx context.Context, seasonID int64, limit int) ([]squad.Membership, error) {
	key := "squad:season:" + strconv.FormatInt(seasonID, 10) + ":" + strconv.Itoa(limit)
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]squad.Membership, error) {
		items, err := r.next.ListBySeason(ctx, seasonID, limit)
		if err != nil {
			return nil, err
		}
		return append([]squad.Membership(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]squad.Membership(nil), items...), nil
}

func (r *SquadRepository) ListCurrentByPlayer(ctx context.Context, leagueSlug string, playerID int64) ([]squad.Membership, error) {
	key := "squad:player:" + leagueSlug + ":" + strconv.FormatInt(playerID, 10)
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]squad.Membership, error) {
		items, err := r.next.ListCurrentByPlayer(ctx, leagueSlug, playerID)
		if err != nil {
			return nil, err
		}
		return append([]squad.Membership(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]squad.Membership(nil), items...), nil
}

type PlayerRepository struct {
	next  player.Repository
	cache *basecache.Store
}

func NewPlayerRepository(next player.Repository, cache *basecache.Store) *PlayerRepository {
	return &PlayerRepository{next: next, cache: cache}
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int64) (player.Player, bool, error) {
	key := "player:id:" + strconv.FormatInt(playerID, 10)
	cached, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (cachedLookup[player.Player], error) {
		item, exists, err := r.next.GetByID(ctx, playerID)
		if err != nil {
			return cachedLookup[player.Player]{}, err
		}
		return cachedLookup[player.Player]{value: item, exists: exists}, nil
	})
	if err != nil {
		return player.Player{}, false, err
	}
	return cached.value, cached.exists, nil
}

type PlayerStatsRepository struct {
	next  playerstats.Repository
	cache *basecache.Store
}

func NewPlayerStatsRepository(next playerstats.Repository, cache *basecache.Store) *PlayerStatsRepository {
	return &PlayerStatsRepository{next: next, cache: cache}
}

func (r *PlayerStatsRepository) GetCurrentSeasonStat(ctx context.Context, leagueSlug string, playerID int64) (playerstats.SeasonStat, bool, error) {
	key := "player_stats:season:" + leagueSlug + ":" + strconv.FormatInt(playerID, 10)
	cached, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) (cachedLookup[playerstats.SeasonStat], error) {
		item, exists, err := r.next.GetCurrentSeasonStat(ctx, leagueSlug, playerID)
		if err != nil {
			return cachedLookup[playerstats.SeasonStat]{}, err
		}
		return cachedLookup[playerstats.SeasonStat]{value: item, exists: exists}, nil
	})
	if err != nil {
		return playerstats.SeasonStat{}, false, err
	}
	return cached.value, cached.exists, nil
}

func (r *PlayerStatsRepository) ListRecentGameStats(ctx context.Context, sport league.Sport, playerID int64, limit int) ([]playerstats.GameStat, error) {
	key := "player_stats:games:" + string(sport) + ":" + strconv.FormatInt(playerID, 10) + ":" + strconv.Itoa(limit)
	items, err := basecache.Load(ctx, r.cache, key, func(ctx context.Context) ([]playerstats.GameStat, error) {
		items, err := r.next.ListRecentGameStats(ctx, sport, playerID, limit)
		if err != nil {
			return nil, err
		}
		return append([]playerstats.GameStat(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]playerstats.GameStat(nil), items...), nil
}

type GameRepository struct {
	next  game.Repository
	cache *basecache.Store
}

func NewGameRepository(next game.Repository, cache *basecache.Store) *GameRepository {
	return &GameRepository{next: next, cache: cache}
}

func (r *GameRepository) List(ctx context.Context, query game.Query) ([]game.Game, error) {
	items, err := basecache.Load(ctx, r.cache, gameListKey(query), func(ctx context.Context) ([]game.Game, error) {
		items, err := r.next.List(ctx, query)
		if err != nil {
			return nil, err
		}
		return append([]game.Game(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}
	return append([]game.Game(nil), items...), nil
}

// gameListKey buckets the date bounds to the minute so listings anchored on
// "now" share an entry.
func gameListKey(query game.Query) string {
	var b strings.Builder
	b.WriteString("games:")
	b.WriteString(query.LeagueSlug)
	b.WriteString(":")
	b.WriteString(strings.Join(query.Statuses, ","))
	b.WriteString(":")
	b.WriteString(boundKey(query.Before))
	b.WriteString(":")
	b.WriteString(boundKey(query.After))
	b.WriteString(":")
	b.WriteString(strconv.Itoa(int(query.Order)))
	b.WriteString(":")
	b.WriteString(strconv.Itoa(query.Limit))
	return b.String()
}

func boundKey(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return strconv.FormatInt(t.Truncate(time.Minute).Unix(), 10)
}
