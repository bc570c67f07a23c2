package squad

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSortByPlayerName_Ordinal(t *testing.T) {
	items := []Membership{
		{ID: 3, Player: PlayerSummary{Name: "kim"}},
		{ID: 1, Player: PlayerSummary{Name: "Lee"}},
		{ID: 2, Player: PlayerSummary{Name: "Hong"}},
		{ID: 4, Player: PlayerSummary{Name: "Hong"}},
	}

	SortByPlayerName(items)

	got := make([]int64, 0, len(items))
	for _, m := range items {
		got = append(got, m.ID)
	}
	assert.Equal(t, []int64{2, 4, 1, 3}, got)
}

func TestSortByRecency(t *testing.T) {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	items := []Membership{
		{ID: 1, UpdatedAt: base},
		{ID: 2, UpdatedAt: base.Add(time.Hour)},
		{ID: 3, UpdatedAt: base},
	}

	SortByRecency(items)

	assert.Equal(t, int64(2), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)
	assert.Equal(t, int64(1), items[2].ID)
}
