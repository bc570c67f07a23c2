package memory

import (
	"context"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/squad"
)

type SquadRepository struct {
	store *Store
}

func NewSquadRepository(store *Store) *SquadRepository {
	return &SquadRepository{store: store}
}

func (r *SquadRepository) ListBySeason(_ context.Context, seasonID int64, limit int) ([]squad.Membership, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]squad.Membership, 0)
	for _, m := range r.store.memberships {
		if m.SeasonID == seasonID {
			out = append(out, m)
		}
	}
	squad.SortByPlayerName(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *SquadRepository) ListCurrentByPlayer(_ context.Context, leagueSlug string, playerID int64) ([]squad.Membership, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	current, ok := r.store.currentSeason(leagueSlug)
	if !ok {
		return []squad.Membership{}, nil
	}

	out := make([]squad.Membership, 0, 1)
	for _, m := range r.store.memberships {
		if m.SeasonID == current.ID && m.Player.ID == playerID {
			out = append(out, m)
		}
	}
	squad.SortByRecency(out)
	return out, nil
}
