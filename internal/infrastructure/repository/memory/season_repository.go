package memory

import (
	"context"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/season"
)

type SeasonRepository struct {
	store *Store
}

func NewSeasonRepository(store *Store) *SeasonRepository {
	return &SeasonRepository{store: store}
}

func (r *SeasonRepository) GetCurrent(_ context.Context, leagueSlug string) (season.Season, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.currentSeason(leagueSlug)
	return item, ok, nil
}
