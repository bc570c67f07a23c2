package statvalue

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeObject_KeepsStoredOrderAndLiterals(t *testing.T) {
	pairs, err := DecodeObject([]byte(`{"ERA": 6.34, "G": 58, "W": null, "Team": "Samsung", "AVG": 0.300, "split": {"home": 1}}`))
	require.NoError(t, err)

	assert.Equal(t, Pairs{
		{Key: "ERA", Value: "6.34"},
		{Key: "G", Value: "58"},
		{Key: "W", Value: "-"},
		{Key: "Team", Value: "Samsung"},
		{Key: "AVG", Value: "0.300"},
		{Key: "split", Value: `{"home":1}`},
	}, pairs)

	v, ok := pairs.Get("G")
	assert.True(t, ok)
	assert.Equal(t, "58", v)
	assert.Len(t, pairs.First(3), 3)
	assert.Len(t, pairs.First(30), 6)
	assert.Empty(t, pairs.First(-1))
}

func TestDecodeObject_EmptyAndMalformed(t *testing.T) {
	pairs, err := DecodeObject(nil)
	require.NoError(t, err)
	assert.Empty(t, pairs)

	pairs, err = DecodeObject([]byte("null"))
	require.NoError(t, err)
	assert.Empty(t, pairs)

	_, err = DecodeObject([]byte(`[1,2]`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.Contains(t, err.Error(), "array")

	pairs, err = DecodeObject([]byte(`{"G": 58, "ERA": `))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))
	assert.Equal(t, Pairs{{Key: "G", Value: "58"}}, pairs)
}

func TestDecodeObject_RepeatedKeyKeepsFirstPositionLastValue(t *testing.T) {
	pairs, err := DecodeObject([]byte(`{"H": 1, "AB": 4, "H": 3}`))
	require.NoError(t, err)
	assert.Equal(t, Pairs{{Key: "H", Value: "3"}, {Key: "AB", Value: "4"}}, pairs)
}

func TestDecodeArray(t *testing.T) {
	values, err := DecodeArray([]byte(`["34", "8-15", 53.3, null, ""]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"34", "8-15", "53.3", "-", "-"}, values)

	_, err = DecodeArray([]byte(`{"a":1}`))
	assert.True(t, errors.Is(err, ErrMalformed))
}
