package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/league"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/playerstats"
)

type PlayerStatsRepository struct {
	store *Store
}

func NewPlayerStatsRepository(store *Store) *PlayerStatsRepository {
	return &PlayerStatsRepository{store: store}
}

func (r *PlayerStatsRepository) GetCurrentSeasonStat(_ context.Context, leagueSlug string, playerID int64) (playerstats.SeasonStat, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	current, ok := r.store.currentSeason(leagueSlug)
	if !ok {
		return playerstats.SeasonStat{}, false, nil
	}

	var (
		best  SeasonStatRecord
		found bool
	)
	for _, rec := range r.store.seasonStats {
		if rec.SeasonID != current.ID || rec.PlayerID != playerID {
			continue
		}
		if !found || newerSeasonStat(rec, best) {
			best, found = rec, true
		}
	}
	if !found {
		return playerstats.SeasonStat{}, false, nil
	}

	return playerstats.SeasonStat{
		ID:         best.ID,
		PlayerID:   best.PlayerID,
		SeasonID:   best.SeasonID,
		SeasonYear: current.Year,
		Team:       r.store.teams[best.TeamID],
		Stats:      playerstats.ResolveSeasonShape(best.Payload),
	}, true, nil
}

// newerSeasonStat orders rows by updated_at desc (unset last), then id desc.
func newerSeasonStat(a, b SeasonStatRecord) bool {
	switch {
	case a.UpdatedAt.IsZero() != b.UpdatedAt.IsZero():
		return !a.UpdatedAt.IsZero()
	case !a.UpdatedAt.Equal(b.UpdatedAt):
		return a.UpdatedAt.After(b.UpdatedAt)
	default:
		return a.ID > b.ID
	}
}

func (r *PlayerStatsRepository) ListRecentGameStats(_ context.Context, sport league.Sport, playerID int64, limit int) ([]playerstats.GameStat, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]playerstats.GameStat, 0)
	for _, rec := range r.store.gameStats {
		if rec.PlayerID != playerID {
			continue
		}
		g, ok := r.store.games[rec.GameID]
		if !ok {
			continue
		}
		out = append(out, playerstats.GameStat{
			ID:       rec.ID,
			PlayerID: rec.PlayerID,
			TeamID:   rec.TeamID,
			Game:     g,
			Stats:    playerstats.ResolveGameShape(sport, rec.Payload),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Game.Date.Equal(out[j].Game.Date) {
			return out[i].Game.ID > out[j].Game.ID
		}
		return out[i].Game.Date.After(out[j].Game.Date)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
