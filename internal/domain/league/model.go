package league

import (
	"fmt"
	"strings"
)

// Sport is the discipline a league plays. It decides how stored stat
// payloads are interpreted.
type Sport string

const (
	SportBaseball   Sport = "baseball"
	SportBasketball Sport = "basketball"
	SportSoccer     Sport = "soccer"
	SportFootball   Sport = "football"
	SportHockey     Sport = "hockey"
	SportCricket    Sport = "cricket"
)

var AllSports = map[Sport]struct{}{
	SportBaseball:   {},
	SportBasketball: {},
	SportSoccer:     {},
	SportFootball:   {},
	SportHockey:     {},
	SportCricket:    {},
}

// League is a supported competition. Slug is the unique key used in URLs and
// in the data store.
type League struct {
	Slug    string
	Name    string
	Sport   Sport
	Country string
}

func (l League) Validate() error {
	if strings.TrimSpace(l.Slug) == "" {
		return fmt.Errorf("league slug is required")
	}
	if strings.TrimSpace(l.Name) == "" {
		return fmt.Errorf("league name is required")
	}
	if _, ok := AllSports[l.Sport]; !ok {
		return fmt.Errorf("invalid league sport: %s", l.Sport)
	}
	return nil
}

// NormalizeSlug lowercases and trims a slug taken from user input.
func NormalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
