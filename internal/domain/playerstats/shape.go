package playerstats

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/league"
	"github.com/riskibarqy/sportsline-dashboard/internal/domain/statvalue"
)

// ShapeKind tags which half of StatShape is populated.
type ShapeKind int

const (
	ShapeGeneric ShapeKind = iota
	ShapeFixedPositional
)

func (k ShapeKind) String() string {
	if k == ShapeFixedPositional {
		return "fixed_positional"
	}
	return "generic"
}

// PositionalSize is the number of slots in a basketball game log row.
const PositionalSize = 14

// PositionalLabels names each slot of a positional row.
var PositionalLabels = [PositionalSize]string{
	"MIN", "FG", "FG%", "3PT", "3P%", "FT", "FT%", "REB", "AST", "BLK", "STL", "PF", "TO", "PTS",
}

// StatShape is a stored stat payload resolved for display. Exactly one of
// Pairs and Positional is meaningful, selected by Kind.
type StatShape struct {
	Kind       ShapeKind
	Pairs      statvalue.Pairs
	Positional [PositionalSize]string
	// Malformed is set when the stored payload could only be read partially.
	Malformed bool
}

func Generic(pairs statvalue.Pairs) StatShape {
	return StatShape{Kind: ShapeGeneric, Pairs: pairs}
}

// Positional fills missing slots with statvalue.Missing. Extra values are dropped.
func Positional(values []string) StatShape {
	shape := StatShape{Kind: ShapeFixedPositional}
	for i := range shape.Positional {
		shape.Positional[i] = statvalue.Missing
		if i < len(values) && values[i] != "" {
			shape.Positional[i] = values[i]
		}
	}
	return shape
}

func (s StatShape) IsEmpty() bool {
	if s.Kind == ShapeFixedPositional {
		for _, v := range s.Positional {
			if v != statvalue.Missing {
				return false
			}
		}
		return true
	}
	return len(s.Pairs) == 0
}

// UsesPositionalGameLog reports whether game rows of sport are stored as a
// fixed positional list.
func UsesPositionalGameLog(sport league.Sport) bool {
	return sport == league.SportBasketball
}

// ResolveGameShape is DecodeGameShape for readers that tolerate malformed
// payloads: the error is folded into StatShape.Malformed.
func ResolveGameShape(sport league.Sport, raw []byte) StatShape {
	shape, err := DecodeGameShape(sport, raw)
	shape.Malformed = err != nil
	return shape
}

// ResolveSeasonShape is the tolerant form of DecodeSeasonShape.
func ResolveSeasonShape(raw []byte) StatShape {
	shape, err := DecodeSeasonShape(raw)
	shape.Malformed = err != nil
	return shape
}

// DecodeSeasonShape decodes an aggregate payload. Aggregates are always
// generic mappings.
func DecodeSeasonShape(raw []byte) (StatShape, error) {
	pairs, err := statvalue.DecodeObject(raw)
	return Generic(pairs), err
}

// DecodeGameShape decodes one game payload according to sport. On a
// malformed payload the recovered part is returned together with an error
// marked statvalue.ErrMalformed.
func DecodeGameShape(sport league.Sport, raw []byte) (StatShape, error) {
	if !UsesPositionalGameLog(sport) {
		pairs, err := statvalue.DecodeObject(raw)
		return Generic(pairs), err
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Positional(nil), nil
	}

	switch trimmed[0] {
	case '[':
		values, err := statvalue.DecodeArray(trimmed)
		return Positional(values), err
	case '{':
		var wrapper struct {
			Stats json.RawMessage `json:"stats"`
		}
		if err := json.Unmarshal(trimmed, &wrapper); err != nil {
			return Positional(nil), errors.Mark(errors.Wrap(err, "read positional wrapper"), statvalue.ErrMalformed)
		}
		if len(wrapper.Stats) == 0 {
			return Positional(nil), errors.Mark(errors.New("positional payload has no stats array"), statvalue.ErrMalformed)
		}
		values, err := statvalue.DecodeArray(wrapper.Stats)
		return Positional(values), err
	default:
		return Positional(nil), errors.Mark(errors.Newf("positional payload starts with %q", trimmed[0]), statvalue.ErrMalformed)
	}
}
