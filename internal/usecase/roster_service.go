package usecase

import (
	"context"
	"strings"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/league"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/season"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/squad"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/team"
	"go.opentelemetry.io/otel/attribute"
)

// RosterLimit caps how many memberships a roster read returns.
const RosterLimit = 200

type RosterService struct {
	catalog    *league.Catalog
	seasonRepo season.Repository
	squadRepo  squad.Repository
}

func NewRosterService(catalog *league.Catalog, seasonRepo season.Repository, squadRepo squad.Repository) *RosterService {
	if catalog == nil {
		catalog = league.DefaultCatalog()
	}
	return &RosterService{
		catalog:    catalog,
		seasonRepo: seasonRepo,
		squadRepo:  squadRepo,
	}
}

// ListCurrentSquad returns the current-season memberships of a league ordered
// by player name. A league without a current season yields an empty list.
func (s *RosterService) ListCurrentSquad(ctx context.Context, leagueSlug string) ([]squad.Membership, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListCurrentSquad", attribute.String("league", leagueSlug))
	defer span.End()

	lg, err := resolveLeague(s.catalog, leagueSlug)
	if err != nil {
		return nil, err
	}

	current, found, err := s.seasonRepo.GetCurrent(ctx, lg.Slug)
	if err != nil {
		return nil, storeError("get current season", err)
	}
	if !found {
		return []squad.Membership{}, nil
	}

	items, err := s.squadRepo.ListBySeason(ctx, current.ID, RosterLimit)
	if err != nil {
		return nil, storeError("list squad by season", err)
	}
	if items == nil {
		items = []squad.Membership{}
	}
	squad.SortByPlayerName(items)
	return items, nil
}

type RosterQuery struct {
	League string
	TeamID int64
	Search string
}

// RosterView is a filtered roster together with every team of the unfiltered
// roster, for the team picker.
type RosterView struct {
	League  league.League
	Teams   []team.Team
	Members []squad.Membership
	Total   int
}

func (s *RosterService) ListRoster(ctx context.Context, query RosterQuery) (RosterView, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListRoster")
	defer span.End()

	lg, err := resolveLeague(s.catalog, query.League)
	if err != nil {
		return RosterView{}, err
	}

	items, err := s.ListCurrentSquad(ctx, lg.Slug)
	if err != nil {
		return RosterView{}, err
	}

	return RosterView{
		League:  lg,
		Teams:   RosterTeams(items),
		Members: FilterRoster(items, query.TeamID, query.Search),
		Total:   len(items),
	}, nil
}

// FilterRoster keeps memberships of teamID (0 = any team) whose player or
// team name contains search, case-insensitively.
func FilterRoster(items []squad.Membership, teamID int64, search string) []squad.Membership {
	term := strings.ToLower(strings.TrimSpace(search))
	out := make([]squad.Membership, 0, len(items))
	for _, m := range items {
		if teamID > 0 && m.Team.ID != teamID {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(m.Player.Name), term) &&
			!strings.Contains(strings.ToLower(m.Team.Name), term) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// RosterTeams returns the distinct teams of items sorted by name.
func RosterTeams(items []squad.Membership) []team.Team {
	seen := make(map[int64]struct{}, len(items))
	out := make([]team.Team, 0)
	for _, m := range items {
		if _, ok := seen[m.Team.ID]; ok {
			continue
		}
		seen[m.Team.ID] = struct{}{}
		out = append(out, m.Team)
	}
	team.SortByName(out)
	return out
}
