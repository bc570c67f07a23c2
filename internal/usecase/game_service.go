package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/league"
	"go.opentelemetry.io/otel/attribute"
)

// GameListLimit caps results and schedule listings.
const GameListLimit = 20

const defaultFanOutWorkers = 4

// LeagueLatest is one league's most recent finished game, if any.
type LeagueLatest struct {
	League league.League
	Game   *game.Game
}

type GameService struct {
	catalog  *league.Catalog
	gameRepo game.Repository
	workers  int
	now      func() time.Time
}

func NewGameService(catalog *league.Catalog, gameRepo game.Repository, workers int) *GameService {
	if catalog == nil {
		catalog = league.DefaultCatalog()
	}
	if workers < 1 {
		workers = defaultFanOutWorkers
	}
	return &GameService{
		catalog:  catalog,
		gameRepo: gameRepo,
		workers:  workers,
		now:      time.Now,
	}
}

// ListResults returns finished games up to now, newest first.
func (s *GameService) ListResults(ctx context.Context, leagueSlug string) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListResults", attribute.String("league", leagueSlug))
	defer span.End()

	lg, err := resolveLeague(s.catalog, leagueSlug)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, game.Query{
		LeagueSlug: lg.Slug,
		Statuses:   game.FinishedStatuses,
		Before:     s.now(),
		Order:      game.OrderDateDesc,
		Limit:      GameListLimit,
	})
}

// ListSchedule returns upcoming and live games from now on, soonest first.
func (s *GameService) ListSchedule(ctx context.Context, leagueSlug string) ([]game.Game, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.ListSchedule", attribute.String("league", leagueSlug))
	defer span.End()

	lg, err := resolveLeague(s.catalog, leagueSlug)
	if err != nil {
		return nil, err
	}
	return s.list(ctx, game.Query{
		LeagueSlug: lg.Slug,
		Statuses:   game.UpcomingStatuses,
		After:      s.now(),
		Order:      game.OrderDateAsc,
		Limit:      GameListLimit,
	})
}

// LatestResults looks up every catalog league's latest finished game in
// parallel. Leagues with a result come first; ties keep catalog order.
func (s *GameService) LatestResults(ctx context.Context) ([]LeagueLatest, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.GameService.LatestResults")
	defer span.End()

	leagues := s.catalog.List()
	out := make([]LeagueLatest, len(leagues))
	now := s.now()

	workerPool, err := ants.NewPool(s.workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer workerPool.Release()

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)
	for i, lg := range leagues {
		i, lg := i, lg
		out[i] = LeagueLatest{League: lg}
		wg.Add(1)
		if err := workerPool.Submit(func() {
			defer wg.Done()

			items, err := s.gameRepo.List(ctx, game.Query{
				LeagueSlug: lg.Slug,
				Statuses:   game.FinishedStatuses,
				Before:     now,
				Order:      game.OrderDateDesc,
				Limit:      1,
			})
			if err != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = storeError("latest game for "+lg.Slug, err)
				}
				errMu.Unlock()
				return
			}
			if len(items) > 0 {
				latest := items[0]
				out[i].Game = &latest
			}
		}); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit latest result lookup: %w", err)
		}
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Game != nil && out[j].Game == nil
	})
	return out, nil
}

func (s *GameService) list(ctx context.Context, query game.Query) ([]game.Game, error) {
	items, err := s.gameRepo.List(ctx, query)
	if err != nil {
		return nil, storeError("list games", err)
	}
	if items == nil {
		items = []game.Game{}
	}
	sortGames(items, query.Order)
	if len(items) > query.Limit {
		items = items[:query.Limit]
	}
	return items, nil
}
