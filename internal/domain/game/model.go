package game

import (
	"strings"
	"time"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/team"
)

// Status values written by the scrapers.
const (
	StatusScheduled  = "STATUS_SCHEDULED"
	StatusInProgress = "STATUS_IN_PROGRESS"
	StatusFirstHalf  = "STATUS_FIRST_HALF"
	StatusSecondHalf = "STATUS_SECOND_HALF"
	StatusFinal      = "STATUS_FINAL"
	StatusFullTime   = "STATUS_FULL_TIME"
	StatusPostponed  = "STATUS_POSTPONED"
)

// FinishedStatuses are listed on the results page.
var FinishedStatuses = []string{StatusFinal, StatusFullTime, StatusPostponed}

// UpcomingStatuses are listed on the schedule page.
var UpcomingStatuses = []string{StatusScheduled, StatusFirstHalf, StatusSecondHalf, StatusInProgress}

// Game is one match between two teams. Scores and venue are optional.
type Game struct {
	ID         int64
	LeagueSlug string
	SeasonID   int64
	Date       time.Time
	Status     string
	HomeTeam   team.Team
	AwayTeam   team.Team
	HomeScore  *int
	AwayScore  *int
	Venue      string
}

func NormalizeStatus(value string) string {
	status := strings.ToUpper(strings.TrimSpace(value))
	if status == "" {
		return StatusScheduled
	}
	if !strings.HasPrefix(status, "STATUS_") {
		status = "STATUS_" + status
	}
	return status
}

func IsFinishedStatus(status string) bool {
	return containsStatus(FinishedStatuses, NormalizeStatus(status))
}

func IsUpcomingStatus(status string) bool {
	return containsStatus(UpcomingStatuses, NormalizeStatus(status))
}

func IsLiveStatus(status string) bool {
	switch NormalizeStatus(status) {
	case StatusInProgress, StatusFirstHalf, StatusSecondHalf:
		return true
	default:
		return false
	}
}

func containsStatus(list []string, status string) bool {
	for _, s := range list {
		if s == status {
			return true
		}
	}
	return false
}

// Side tells on which side a team played.
type Side string

const (
	SideHome    Side = "home"
	SideAway    Side = "away"
	SideUnknown Side = "unknown"
)

// SideOf reports the side teamID played on. Zero teamID is unknown.
func (g Game) SideOf(teamID int64) Side {
	switch {
	case teamID <= 0:
		return SideUnknown
	case g.HomeTeam.ID == teamID:
		return SideHome
	default:
		return SideAway
	}
}
