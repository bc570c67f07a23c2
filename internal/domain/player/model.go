package player

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/statvalue"
)

// Player is an athlete profile. Everything except ID is optional in the
// store.
type Player struct {
	ID          int64
	Name        string
	FirstName   string
	LastName    string
	BirthDate   *time.Time
	HeightCM    *int
	WeightKG    *int
	Nationality string
	PhotoURL    string
	Biometrics  statvalue.Pairs
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be greater than zero")
	}
	if p.DisplayName() == "" {
		return fmt.Errorf("player name is required")
	}
	return nil
}

// DisplayName prefers the full name and falls back to last + first name.
func (p Player) DisplayName() string {
	if name := strings.TrimSpace(p.Name); name != "" {
		return name
	}
	return strings.TrimSpace(strings.TrimSpace(p.LastName) + " " + strings.TrimSpace(p.FirstName))
}
