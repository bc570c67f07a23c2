package memory

import (
	"fmt"
	"time"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/game"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/player"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/season"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/squad"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/statvalue"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/team"
)

const (
	SeasonIDKBO2026 int64 = 1
	SeasonIDKBO2025 int64 = 2
	SeasonIDNBA2026 int64 = 3

	TeamIDSamsung int64 = 101
	TeamIDLG      int64 = 102
	TeamIDDoosan  int64 = 103
	TeamIDLakers  int64 = 201
	TeamIDCeltics int64 = 202

	PlayerIDHong  int64 = 1001
	PlayerIDKim   int64 = 1002
	PlayerIDPark  int64 = 1003
	PlayerIDJames int64 = 2001
)

func intPtr(v int) *int {
	return &v
}

func timePtr(t time.Time) *time.Time {
	return &t
}

// SeedDataset returns a small KBO + NBA dataset with games placed around now.
func SeedDataset(now time.Time) Dataset {
	now = now.UTC().Truncate(time.Hour)
	updated := now.Add(-24 * time.Hour)

	teams := []team.Team{
		{ID: TeamIDSamsung, Name: "Samsung", Code: "SS"},
		{ID: TeamIDLG, Name: "LG", Code: "LG"},
		{ID: TeamIDDoosan, Name: "Doosan", Code: "OB"},
		{ID: TeamIDLakers, Name: "Los Angeles Lakers", Code: "LAL"},
		{ID: TeamIDCeltics, Name: "Boston Celtics", Code: "BOS"},
	}

	players := []player.Player{
		{
			ID:          PlayerIDHong,
			Name:        "Hong",
			BirthDate:   timePtr(time.Date(1996, time.August, 14, 0, 0, 0, 0, time.UTC)),
			HeightCM:    intPtr(183),
			WeightKG:    intPtr(88),
			Nationality: "South Korea",
			Biometrics:  statvalue.Pairs{{Key: "throws", Value: "R"}, {Key: "bats", Value: "R"}},
		},
		{ID: PlayerIDKim, FirstName: "Minjae", LastName: "Kim"},
		{ID: PlayerIDPark, Name: "Park", Nationality: "South Korea"},
		{ID: PlayerIDJames, Name: "James", HeightCM: intPtr(206), WeightKG: intPtr(113), Nationality: "USA"},
	}

	memberships := []squad.Membership{
		{ID: 1, SeasonID: SeasonIDKBO2026, Player: squad.PlayerSummary{ID: PlayerIDHong}, Team: team.Team{ID: TeamIDSamsung}, Position: "P", JerseyNumber: intPtr(1), UpdatedAt: updated},
		{ID: 2, SeasonID: SeasonIDKBO2026, Player: squad.PlayerSummary{ID: PlayerIDPark}, Team: team.Team{ID: TeamIDLG}, Position: "C", JerseyNumber: intPtr(27), UpdatedAt: updated},
		{ID: 3, SeasonID: SeasonIDKBO2025, Player: squad.PlayerSummary{ID: PlayerIDKim}, Team: team.Team{ID: TeamIDDoosan}, Position: "SS", UpdatedAt: updated},
		{ID: 4, SeasonID: SeasonIDNBA2026, Player: squad.PlayerSummary{ID: PlayerIDJames}, Team: team.Team{ID: TeamIDLakers}, Position: "F", JerseyNumber: intPtr(23), UpdatedAt: updated},
	}

	games := []game.Game{
		{ID: 5001, LeagueSlug: "kbo", SeasonID: SeasonIDKBO2026, Date: now.Add(-72 * time.Hour), Status: game.StatusFinal,
			HomeTeam: team.Team{ID: TeamIDSamsung}, AwayTeam: team.Team{ID: TeamIDLG}, HomeScore: intPtr(5), AwayScore: intPtr(3), Venue: "Daegu Samsung Lions Park"},
		{ID: 5002, LeagueSlug: "kbo", SeasonID: SeasonIDKBO2026, Date: now.Add(-48 * time.Hour), Status: game.StatusFinal,
			HomeTeam: team.Team{ID: TeamIDDoosan}, AwayTeam: team.Team{ID: TeamIDSamsung}, HomeScore: intPtr(2), AwayScore: intPtr(7)},
		{ID: 5003, LeagueSlug: "kbo", SeasonID: SeasonIDKBO2026, Date: now.Add(48 * time.Hour), Status: game.StatusScheduled,
			HomeTeam: team.Team{ID: TeamIDLG}, AwayTeam: team.Team{ID: TeamIDSamsung}, Venue: "Jamsil Baseball Stadium"},
		{ID: 6001, LeagueSlug: "nba", SeasonID: SeasonIDNBA2026, Date: now.Add(-24 * time.Hour), Status: game.StatusFinal,
			HomeTeam: team.Team{ID: TeamIDCeltics}, AwayTeam: team.Team{ID: TeamIDLakers}, HomeScore: intPtr(110), AwayScore: intPtr(114)},
	}

	return Dataset{
		Seasons: []season.Season{
			{ID: SeasonIDKBO2026, LeagueSlug: "kbo", Year: 2026, IsCurrent: true},
			{ID: SeasonIDKBO2025, LeagueSlug: "kbo", Year: 2025},
			{ID: SeasonIDNBA2026, LeagueSlug: "nba", Year: 2026, IsCurrent: true},
		},
		Teams:       teams,
		Players:     players,
		Memberships: memberships,
		SeasonStats: []SeasonStatRecord{
			{ID: 1, PlayerID: PlayerIDHong, SeasonID: SeasonIDKBO2026, TeamID: TeamIDSamsung, Payload: []byte(`{"ERA": 6.34, "G": 58}`)},
			{ID: 2, PlayerID: PlayerIDJames, SeasonID: SeasonIDNBA2026, TeamID: TeamIDLakers, Payload: []byte(`{"PTS": 25.4, "REB": 7.9, "AST": 8.1}`)},
		},
		Games: games,
		GameStats: []GameStatRecord{
			{ID: 1, PlayerID: PlayerIDHong, TeamID: TeamIDSamsung, GameID: 5001, Payload: []byte(`{"IP": "6.0", "H": 4, "ER": 2, "SO": 7}`)},
			{ID: 2, PlayerID: PlayerIDHong, TeamID: TeamIDSamsung, GameID: 5002, Payload: []byte(`{"IP": "5.1", "H": 6, "ER": 3}`)},
			{ID: 3, PlayerID: PlayerIDJames, TeamID: TeamIDLakers, GameID: 6001, Payload: []byte(`["38","11-20","55.0","3-7","42.9","2-2","100.0","9","10","1","2","1","4","27"]`)},
		},
	}
}

// SeedGameHistory adds count finished games for playerID, one day apart,
// the newest one day before now. Game ids start at firstID.
func SeedGameHistory(ds Dataset, leagueSlug string, playerID, teamID, opponentID, firstID int64, count int, now time.Time) Dataset {
	for i := 0; i < count; i++ {
		id := firstID + int64(i)
		home, away := teamID, opponentID
		if i%2 == 1 {
			home, away = opponentID, teamID
		}
		ds.Games = append(ds.Games, game.Game{
			ID:         id,
			LeagueSlug: leagueSlug,
			Date:       now.Add(-time.Duration(i+1) * 24 * time.Hour),
			Status:     game.StatusFinal,
			HomeTeam:   team.Team{ID: home},
			AwayTeam:   team.Team{ID: away},
		})
		ds.GameStats = append(ds.GameStats, GameStatRecord{
			ID:       id,
			PlayerID: playerID,
			TeamID:   teamID,
			GameID:   id,
			Payload:  []byte(fmt.Sprintf(`{"AB": 4, "H": %d, "HR": 0, "RBI": 1}`, i%3)),
		})
	}
	return ds
}
