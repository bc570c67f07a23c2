package display

import (
	"strconv"
	"strings"

	"github.com/riskibarqy/sportsline-dashboard/internal/domain/statvalue"
	"github.com/valyala/bytebufferpool"
)

// UnnamedPlayer is shown when a player row carries no usable name.
const UnnamedPlayer = "선수 이름"

// SummaryPairs is how many stat pairs a game summary shows.
const SummaryPairs = 3

func OrDash(value string) string {
	if strings.TrimSpace(value) == "" {
		return Placeholder
	}
	return value
}

// IntWithUnit renders "183cm" style values; nil renders Placeholder.
func IntWithUnit(value *int, unit string) string {
	if value == nil {
		return Placeholder
	}
	return strconv.Itoa(*value) + unit
}

func Jersey(number *int) string {
	if number == nil {
		return Placeholder
	}
	return "#" + strconv.Itoa(*number)
}

// PlayerDisplayName falls back from the full name to last + first name and
// finally to UnnamedPlayer.
func PlayerDisplayName(name, firstName, lastName string) string {
	if n := strings.TrimSpace(name); n != "" {
		return n
	}
	if n := strings.TrimSpace(strings.TrimSpace(lastName) + " " + strings.TrimSpace(firstName)); n != "" {
		return n
	}
	return UnnamedPlayer
}

// JoinStatSummary renders the first n pairs as "k:v, k:v". No pairs render
// Placeholder.
func JoinStatSummary(pairs statvalue.Pairs, n int) string {
	pairs = pairs.First(n)
	if len(pairs) == 0 {
		return Placeholder
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	for i, p := range pairs {
		if i > 0 {
			_, _ = buf.WriteString(", ")
		}
		_, _ = buf.WriteString(p.Key)
		_ = buf.WriteByte(':')
		_, _ = buf.WriteString(p.Value)
	}
	return buf.String()
}

// Score renders "home - away"; an unplayed side renders Placeholder.
func Score(home, away *int) string {
	return scoreSide(home) + " - " + scoreSide(away)
}

func scoreSide(v *int) string {
	if v == nil {
		return Placeholder
	}
	return strconv.Itoa(*v)
}
