package game

import (
	"testing"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/team"
	"github.com/stretchr/testify/assert"
)

func TestStatusHelpers(t *testing.T) {
	assert.Equal(t, StatusScheduled, NormalizeStatus(" "))
	assert.Equal(t, StatusFinal, NormalizeStatus("final"))
	assert.True(t, IsFinishedStatus("STATUS_FULL_TIME"))
	assert.True(t, IsFinishedStatus("postponed"))
	assert.False(t, IsFinishedStatus(StatusInProgress))
	assert.True(t, IsUpcomingStatus(StatusFirstHalf))
	assert.True(t, IsLiveStatus("in_progress"))
	assert.False(t, IsLiveStatus(StatusScheduled))
}

func TestGame_SideOf(t *testing.T) {
	g := Game{HomeTeam: team.Team{ID: 10}, AwayTeam: team.Team{ID: 20}}

	assert.Equal(t, SideHome, g.SideOf(10))
	assert.Equal(t, SideAway, g.SideOf(20))
	assert.Equal(t, SideUnknown, g.SideOf(0))
}
