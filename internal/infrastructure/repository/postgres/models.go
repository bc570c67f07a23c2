package postgres

import (
	"database/sql"
	"time"
)

type seasonTableModel struct {
	ID         int64  `db:"id"`
	LeagueSlug string `db:"league_slug"`
	Year       int    `db:"year"`
	IsCurrent  bool   `db:"is_current"`
}

type teamColumns struct {
	ID      sql.NullInt64  `db:"id"`
	Name    sql.NullString `db:"name"`
	Code    sql.NullString `db:"code"`
	LogoURL sql.NullString `db:"logo_url"`
}

type squadRowModel struct {
	ID           int64          `db:"id"`
	SeasonID     int64          `db:"season_id"`
	Position     sql.NullString `db:"position"`
	JerseyNumber sql.NullInt64  `db:"jersey_number"`
	UpdatedAt    sql.NullTime   `db:"updated_at"`

	PlayerID        int64          `db:"player_id"`
	PlayerName      sql.NullString `db:"player_name"`
	PlayerFirstName sql.NullString `db:"player_firstname"`
	PlayerLastName  sql.NullString `db:"player_lastname"`
	PlayerPhotoURL  sql.NullString `db:"player_photo_url"`

	Team teamColumns `db:"team"`
}

type playerTableModel struct {
	ID          int64          `db:"id"`
	Name        sql.NullString `db:"name"`
	FirstName   sql.NullString `db:"firstname"`
	LastName    sql.NullString `db:"lastname"`
	BirthDate   sql.NullTime   `db:"birth_date"`
	HeightCM    sql.NullInt64  `db:"height_cm"`
	WeightKG    sql.NullInt64  `db:"weight_kg"`
	Nationality sql.NullString `db:"nationality"`
	PhotoURL    sql.NullString `db:"photo_url"`
	Biometrics  []byte         `db:"biometrics"`
}

type seasonStatRowModel struct {
	ID         int64        `db:"id"`
	PlayerID   int64        `db:"player_id"`
	SeasonID   int64        `db:"season_id"`
	SeasonYear int          `db:"season_year"`
	Stats      []byte       `db:"stats"`
	UpdatedAt  sql.NullTime `db:"updated_at"`
	Team       teamColumns  `db:"team"`
}

type gameRowModel struct {
	ID          int64          `db:"id"`
	LeagueSlug  string         `db:"league_slug"`
	SeasonID    sql.NullInt64  `db:"season_id"`
	GameDate    time.Time      `db:"game_date"`
	Status      sql.NullString `db:"status"`
	HomeScore   sql.NullInt64  `db:"home_score"`
	AwayScore   sql.NullInt64  `db:"away_score"`
	ScoreDetail []byte         `db:"score_detail"`
	Home        teamColumns    `db:"home"`
	Away        teamColumns    `db:"away"`
}

type gameStatRowModel struct {
	StatID   int64         `db:"stat_id"`
	PlayerID int64         `db:"stat_player_id"`
	TeamID   sql.NullInt64 `db:"stat_team_id"`
	Stats    []byte        `db:"stats"`
	gameRowModel
}
