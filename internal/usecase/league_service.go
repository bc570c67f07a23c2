package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/league"
)

type LeagueService struct {
	catalog *league.Catalog
}

func NewLeagueService(catalog *league.Catalog) *LeagueService {
	if catalog == nil {
		catalog = league.DefaultCatalog()
	}
	return &LeagueService{catalog: catalog}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	_, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	return s.catalog.List(), nil
}

func (s *LeagueService) GetLeague(ctx context.Context, slug string) (league.League, error) {
	_, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	return resolveLeague(s.catalog, slug)
}

func resolveLeague(catalog *league.Catalog, slug string) (league.League, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return league.League{}, fmt.Errorf("%w: league is required", ErrInvalidInput)
	}
	item, ok := catalog.Lookup(slug)
	if !ok {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrUnknownLeague, slug)
	}
	return item, nil
}
