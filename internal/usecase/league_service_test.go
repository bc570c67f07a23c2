package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeagueService(t *testing.T) {
	t.Parallel()

	service := NewLeagueService(nil)

	items, err := service.ListLeagues(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 13)

	lg, err := service.GetLeague(context.Background(), "serie-a")
	require.NoError(t, err)
	assert.Equal(t, "SERIE A", lg.Name)

	_, err = service.GetLeague(context.Background(), "serie a")
	assert.ErrorIs(t, err, ErrUnknownLeague)
}
