package httpapi

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/sportsline-dashboard/internal/display"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/league"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/playerstats"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/squad"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/statvalue"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/team"
	"github.com/riskibarqy/sportsline-dashboard/internal/usecase"
	"github.com/sourcegraph/conc/pool"
)

// photoResolveConcurrency bounds concurrent photo checks per roster page.
const photoResolveConcurrency = 16

// Roster API records keep the column names of the squad join; identifiers
// are decimal strings.
type rosterRecordDTO struct {
	ID           string          `json:"id"`
	SeasonID     string          `json:"season_id"`
	PlayerID     string          `json:"player_id"`
	TeamID       string          `json:"team_id"`
	Position     *string         `json:"position"`
	JerseyNumber *int            `json:"jersey_number"`
	Player       rosterPlayerDTO `json:"sl_players"`
	Team         rosterTeamDTO   `json:"sl_teams"`
}

type rosterPlayerDTO struct {
	ID        string  `json:"id"`
	Name      *string `json:"name"`
	FirstName *string `json:"firstname"`
	LastName  *string `json:"lastname"`
	PhotoURL  *string `json:"photo_url"`
}

type rosterTeamDTO struct {
	ID      string  `json:"id"`
	Name    *string `json:"name"`
	Code    *string `json:"code"`
	LogoURL *string `json:"logo_url"`
}

type leagueDTO struct {
	Slug    string `json:"slug"`
	Name    string `json:"name"`
	Sport   string `json:"sport"`
	Country string `json:"country"`
	Link    string `json:"link"`
}

type teamOptionDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type rosterCardDTO struct {
	PlayerID    string `json:"playerId"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoUrl"`
	TeamID      string `json:"teamId"`
	TeamName    string `json:"teamName"`
	TeamColor   string `json:"teamColor,omitempty"`
	Position    string `json:"position"`
	Jersey      string `json:"jersey"`
	Link        string `json:"link"`
}

type rosterViewDTO struct {
	League       leagueDTO       `json:"league"`
	Teams        []teamOptionDTO `json:"teams"`
	Players      []rosterCardDTO `json:"players"`
	Count        int             `json:"count"`
	Total        int             `json:"total"`
	SelectedTeam string          `json:"selectedTeam"`
	Search       string          `json:"search"`
}

type statPairDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type squadInfoDTO struct {
	TeamID    string `json:"teamId"`
	TeamName  string `json:"teamName"`
	TeamLogo  string `json:"teamLogo,omitempty"`
	TeamColor string `json:"teamColor,omitempty"`
	Position  string `json:"position"`
	Jersey    string `json:"jersey"`
}

type recentGameDTO struct {
	GameID     string        `json:"gameId"`
	Date       string        `json:"date"`
	Status     string        `json:"status"`
	Side       string        `json:"side"`
	Opponent   string        `json:"opponent"`
	Score      string        `json:"score"`
	Shape      string        `json:"shape"`
	Summary    string        `json:"summary,omitempty"`
	Positional []statPairDTO `json:"positional,omitempty"`
}

type playerProfileDTO struct {
	League       leagueDTO       `json:"league"`
	PlayerID     string          `json:"playerId"`
	DisplayName  string          `json:"displayName"`
	PhotoURL     string          `json:"photoUrl"`
	BirthDate    string          `json:"birthDate"`
	Height       string          `json:"height"`
	Weight       string          `json:"weight"`
	Nationality  string          `json:"nationality"`
	Biometrics   []statPairDTO   `json:"biometrics"`
	CurrentSquad *squadInfoDTO   `json:"currentSquad"`
	SeasonLabel  string          `json:"seasonLabel"`
	SeasonStats  []statPairDTO   `json:"seasonStats"`
	HasStats     bool            `json:"hasSeasonStats"`
	RecentGames  []recentGameDTO `json:"recentGames"`
	BackLink     string          `json:"backLink"`
}

type gameDTO struct {
	ID       string `json:"id"`
	League   string `json:"league"`
	Date     string `json:"date"`
	DateLong string `json:"dateLong"`
	Time     string `json:"time"`
	Status   string `json:"status"`
	HomeTeam string `json:"homeTeam"`
	AwayTeam string `json:"awayTeam"`
	Score    string `json:"score"`
	Venue    string `json:"venue"`
}

type latestResultDTO struct {
	League leagueDTO `json:"league"`
	Game   *gameDTO  `json:"game"`
}

func idString(id int64) string {
	return strconv.FormatInt(id, 10)
}

// optionalString renders empty strings as JSON null.
func optionalString(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}

func rosterPlayersLink(slug string) string {
	return "/players/" + slug
}

func playerLink(slug string, playerID int64) string {
	return "/players/" + slug + "/" + idString(playerID)
}

func leagueToDTO(lg league.League) leagueDTO {
	return leagueDTO{
		Slug:    lg.Slug,
		Name:    lg.Name,
		Sport:   string(lg.Sport),
		Country: lg.Country,
		Link:    rosterPlayersLink(lg.Slug),
	}
}

func membershipToRecordDTO(m squad.Membership) rosterRecordDTO {
	return rosterRecordDTO{
		ID:           idString(m.ID),
		SeasonID:     idString(m.SeasonID),
		PlayerID:     idString(m.Player.ID),
		TeamID:       idString(m.Team.ID),
		Position:     optionalString(m.Position),
		JerseyNumber: m.JerseyNumber,
		Player: rosterPlayerDTO{
			ID:        idString(m.Player.ID),
			Name:      optionalString(m.Player.Name),
			FirstName: optionalString(m.Player.FirstName),
			LastName:  optionalString(m.Player.LastName),
			PhotoURL:  optionalString(m.Player.PhotoURL),
		},
		Team: rosterTeamDTO{
			ID:      idString(m.Team.ID),
			Name:    optionalString(m.Team.Name),
			Code:    optionalString(m.Team.Code),
			LogoURL: optionalString(m.Team.LogoURL),
		},
	}
}

func teamColor(t team.Team) string {
	color, _ := display.TeamAccentColor(t.Code, t.Name)
	return color
}

func (h *Handler) rosterCard(ctx context.Context, leagueSlug string, m squad.Membership) rosterCardDTO {
	return rosterCardDTO{
		PlayerID:    idString(m.Player.ID),
		DisplayName: display.PlayerDisplayName(m.Player.Name, m.Player.FirstName, m.Player.LastName),
		PhotoURL:    h.photos.Resolve(ctx, m.Player.PhotoURL),
		TeamID:      idString(m.Team.ID),
		TeamName:    display.OrDash(m.Team.Name),
		TeamColor:   teamColor(m.Team),
		Position:    display.OrDash(m.Position),
		Jersey:      display.Jersey(m.JerseyNumber),
		Link:        playerLink(leagueSlug, m.Player.ID),
	}
}

// rosterCards builds cards in member order with photo checks running
// concurrently.
func (h *Handler) rosterCards(ctx context.Context, leagueSlug string, members []squad.Membership) []rosterCardDTO {
	cards := make([]rosterCardDTO, len(members))
	p := pool.New().WithMaxGoroutines(photoResolveConcurrency)
	for i, m := range members {
		p.Go(func() {
			cards[i] = h.rosterCard(ctx, leagueSlug, m)
		})
	}
	p.Wait()
	return cards
}

func pairsToDTO(pairs statvalue.Pairs) []statPairDTO {
	out := make([]statPairDTO, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, statPairDTO{Label: p.Key, Value: p.Value})
	}
	return out
}

func positionalToDTO(values [playerstats.PositionalSize]string) []statPairDTO {
	out := make([]statPairDTO, 0, playerstats.PositionalSize)
	for i, label := range playerstats.PositionalLabels {
		out = append(out, statPairDTO{Label: label, Value: display.OrDash(values[i])})
	}
	return out
}

func (h *Handler) profileToDTO(ctx context.Context, profile usecase.PlayerProfile) playerProfileDTO {
	p := profile.Player
	out := playerProfileDTO{
		League:      leagueToDTO(profile.League),
		PlayerID:    idString(p.ID),
		DisplayName: display.PlayerDisplayName(p.Name, p.FirstName, p.LastName),
		PhotoURL:    h.photos.Resolve(ctx, p.PhotoURL),
		BirthDate:   h.formatter.DatePtr(p.BirthDate, display.DateLong),
		Height:      display.IntWithUnit(p.HeightCM, "cm"),
		Weight:      display.IntWithUnit(p.WeightKG, "kg"),
		Nationality: display.OrDash(p.Nationality),
		Biometrics:  pairsToDTO(p.Biometrics),
		SeasonLabel: display.Placeholder,
		SeasonStats: pairsToDTO(profile.SeasonStats),
		HasStats:    profile.HasSeasonStats,
		RecentGames: make([]recentGameDTO, 0, len(profile.RecentGames)),
		BackLink:    rosterPlayersLink(profile.League.Slug),
	}

	if m := profile.CurrentSquad; m != nil {
		out.CurrentSquad = &squadInfoDTO{
			TeamID:    idString(m.Team.ID),
			TeamName:  display.OrDash(m.Team.Name),
			TeamLogo:  m.Team.LogoURL,
			TeamColor: teamColor(m.Team),
			Position:  display.OrDash(m.Position),
			Jersey:    display.Jersey(m.JerseyNumber),
		}
	}
	if profile.SeasonYear > 0 {
		out.SeasonLabel = strconv.Itoa(profile.SeasonYear)
		if profile.SeasonTeam != nil && profile.SeasonTeam.Name != "" {
			out.SeasonLabel += " " + profile.SeasonTeam.Name
		}
	}

	for _, g := range profile.RecentGames {
		row := recentGameDTO{
			GameID:   idString(g.GameID),
			Date:     h.formatter.Date(g.Date, display.DateShort),
			Status:   g.Status,
			Side:     string(g.Side),
			Opponent: display.Placeholder,
			Score:    display.Score(g.HomeScore, g.AwayScore),
			Shape:    g.Shape.String(),
		}
		if g.Opponent.Known {
			row.Opponent = display.OrDash(g.Opponent.Team.Name)
		}
		if g.Shape == playerstats.ShapeFixedPositional {
			row.Positional = positionalToDTO(g.Positional)
		} else {
			row.Summary = g.Summary
		}
		out.RecentGames = append(out.RecentGames, row)
	}
	return out
}

func (h *Handler) gameToDTO(g game.Game) gameDTO {
	out := gameDTO{
		ID:       idString(g.ID),
		League:   g.LeagueSlug,
		Date:     h.formatter.Date(g.Date, display.DateShort),
		DateLong: h.formatter.Date(g.Date, display.DateLong),
		Time:     display.Placeholder,
		Status:   g.Status,
		HomeTeam: display.OrDash(g.HomeTeam.Name),
		AwayTeam: display.OrDash(g.AwayTeam.Name),
		Score:    display.Score(g.HomeScore, g.AwayScore),
		Venue:    display.OrDash(g.Venue),
	}
	if !g.Date.IsZero() {
		loc := h.formatter.Location
		if loc == nil {
			loc = time.UTC
		}
		out.Time = g.Date.In(loc).Format("15:04")
	}
	return out
}
