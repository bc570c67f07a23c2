package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
)

type GameRepository struct {
	store *Store
}

func NewGameRepository(store *Store) *GameRepository {
	return &GameRepository{store: store}
}

func (r *GameRepository) List(_ context.Context, query game.Query) ([]game.Game, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	statuses := make(map[string]struct{}, len(query.Statuses))
	for _, s := range query.Statuses {
		statuses[s] = struct{}{}
	}

	out := make([]game.Game, 0)
	for _, g := range r.store.games {
		if g.LeagueSlug != query.LeagueSlug {
			continue
		}
		if len(statuses) > 0 {
			if _, ok := statuses[g.Status]; !ok {
				continue
			}
		}
		if !query.Before.IsZero() && g.Date.After(query.Before) {
			continue
		}
		if !query.After.IsZero() && g.Date.Before(query.After) {
			continue
		}
		out = append(out, g)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Date.Equal(out[j].Date) {
			if query.Order == game.OrderDateAsc {
				return out[i].ID < out[j].ID
			}
			return out[i].ID > out[j].ID
		}
		if query.Order == game.OrderDateAsc {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].Date.After(out[j].Date)
	})
	if query.Limit > 0 && len(out) > query.Limit {
		out = out[:query.Limit]
	}
	return out, nil
}
