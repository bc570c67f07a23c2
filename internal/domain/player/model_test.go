package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlayer_DisplayName(t *testing.T) {
	assert.Equal(t, "Hong", Player{Name: " Hong "}.DisplayName())
	assert.Equal(t, "Kim Minjae", Player{FirstName: "Minjae", LastName: "Kim"}.DisplayName())
	assert.Equal(t, "Kim", Player{LastName: "Kim"}.DisplayName())
	assert.Equal(t, "", Player{}.DisplayName())
}

func TestPlayer_Validate(t *testing.T) {
	assert.NoError(t, Player{ID: 1, Name: "Hong"}.Validate())
	assert.Error(t, Player{Name: "Hong"}.Validate())
	assert.Error(t, Player{ID: 1}.Validate())
}
