// Package statvalue decodes open stat mappings stored as JSON documents into
// ordered display pairs.
package statvalue

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

// Missing is rendered for absent or null values.
const Missing = "-"

// ErrMalformed marks stored payloads whose shape does not match what the
// reader expected. Callers render what could be recovered.
var ErrMalformed = errors.New("malformed stored stat")

// Pair is one (label, value) entry of a stat mapping.
type Pair struct {
	Key   string
	Value string
}

type Pairs []Pair

func (p Pairs) Get(key string) (string, bool) {
	for _, pair := range p {
		if pair.Key == key {
			return pair.Value, true
		}
	}
	return "", false
}

// First returns at most n leading pairs.
func (p Pairs) First(n int) Pairs {
	if n < 0 {
		n = 0
	}
	if n > len(p) {
		n = len(p)
	}
	return p[:n]
}

// DecodeObject reads a JSON object keeping its key order. Scalars are
// rendered from their literal text. Nested objects and arrays are kept as
// compact JSON. A repeated key keeps its first position and takes the last
// value. An empty or null document yields no pairs.
func DecodeObject(raw []byte) (Pairs, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "read stat object"), ErrMalformed)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, errors.Mark(errors.Newf("stat payload is %s, want object", describeToken(tok)), ErrMalformed)
	}

	out := make(Pairs, 0, 8)
	seen := make(map[string]int, 8)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return out, errors.Mark(errors.Wrap(err, "read stat key"), ErrMalformed)
		}
		key, _ := keyTok.(string)

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return out, errors.Mark(errors.Wrapf(err, "read stat %q", key), ErrMalformed)
		}
		if i, ok := seen[key]; ok {
			out[i].Value = FormatRaw(value)
			continue
		}
		seen[key] = len(out)
		out = append(out, Pair{Key: key, Value: FormatRaw(value)})
	}
	if _, err := dec.Token(); err != nil && !errors.Is(err, io.EOF) {
		return out, errors.Mark(errors.Wrap(err, "close stat object"), ErrMalformed)
	}
	return out, nil
}

// DecodeArray reads a JSON array into rendered scalar strings.
func DecodeArray(raw []byte) ([]string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, errors.Mark(errors.Wrap(err, "read stat array"), ErrMalformed)
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, FormatRaw(item))
	}
	return out, nil
}

// FormatRaw renders one JSON value for display.
func FormatRaw(value json.RawMessage) string {
	trimmed := bytes.TrimSpace(value)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Missing
	}
	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return Missing
		}
		if strings.TrimSpace(s) == "" {
			return Missing
		}
		return s
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return string(trimmed)
		}
		return buf.String()
	}
	return string(trimmed)
}

func describeToken(tok json.Token) string {
	switch v := tok.(type) {
	case json.Delim:
		if v == '[' {
			return "array"
		}
		return string(v)
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "bool"
	case nil:
		return "null"
	default:
		return "unknown"
	}
}
