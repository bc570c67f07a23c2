package playerstats

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/league"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/statvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSeasonShape_Generic(t *testing.T) {
	shape, err := DecodeSeasonShape([]byte(`{"ERA": 6.34, "G": 58}`))
	require.NoError(t, err)

	assert.Equal(t, ShapeGeneric, shape.Kind)
	assert.Equal(t, statvalue.Pairs{{Key: "ERA", Value: "6.34"}, {Key: "G", Value: "58"}}, shape.Pairs)
	assert.False(t, shape.IsEmpty())
}

func TestDecodeGameShape_BasketballArray(t *testing.T) {
	shape, err := DecodeGameShape(league.SportBasketball, []byte(`["34","8-15","53.3","2-5","40.0","4-4","100.0","6","7","1","2","3","2","22"]`))
	require.NoError(t, err)

	assert.Equal(t, ShapeFixedPositional, shape.Kind)
	assert.Equal(t, "34", shape.Positional[0])
	assert.Equal(t, "22", shape.Positional[13])
	assert.Equal(t, "PTS", PositionalLabels[13])
}

func TestDecodeGameShape_BasketballShortAndWrapped(t *testing.T) {
	shape, err := DecodeGameShape(league.SportBasketball, []byte(`{"stats": ["30", "5-9"]}`))
	require.NoError(t, err)
	assert.Equal(t, "30", shape.Positional[0])
	assert.Equal(t, "5-9", shape.Positional[1])
	for i := 2; i < PositionalSize; i++ {
		assert.Equal(t, "-", shape.Positional[i], "slot %d", i)
	}

	empty, err := DecodeGameShape(league.SportBasketball, nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestDecodeGameShape_MalformedIsTolerated(t *testing.T) {
	shape, err := DecodeGameShape(league.SportBasketball, []byte(`{"points": 22}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, statvalue.ErrMalformed))
	assert.Equal(t, ShapeFixedPositional, shape.Kind)
	assert.True(t, shape.IsEmpty())

	generic, err := DecodeGameShape(league.SportBaseball, []byte(`"oops"`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, statvalue.ErrMalformed))
	assert.Equal(t, ShapeGeneric, generic.Kind)
	assert.True(t, generic.IsEmpty())
}

func TestDecodeGameShape_GenericSport(t *testing.T) {
	shape, err := DecodeGameShape(league.SportSoccer, []byte(`{"goals": 1, "assists": 0, "shots": 3, "fouls": 2}`))
	require.NoError(t, err)
	assert.Equal(t, ShapeGeneric, shape.Kind)
	assert.Len(t, shape.Pairs, 4)
	assert.Equal(t, "goals", shape.Pairs[0].Key)
}

func TestResolveShape_FoldsErrorIntoFlag(t *testing.T) {
	bad := ResolveGameShape(league.SportBasketball, []byte(`42`))
	assert.True(t, bad.Malformed)
	assert.Equal(t, ShapeFixedPositional, bad.Kind)

	good := ResolveSeasonShape([]byte(`{"ERA": 6.34}`))
	assert.False(t, good.Malformed)
	assert.Equal(t, "6.34", good.Pairs[0].Value)
}
