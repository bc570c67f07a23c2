package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
)

func isNotFound(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// Transaction-pooling proxies can drop the unnamed prepared statement between
// parse and bind. Such failures succeed on a second attempt.
func isBindParameterMismatch(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "bind message supplies") && strings.Contains(msg, "prepared statement")
}

func isUnnamedPreparedStatementMissing(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "unnamed prepared statement does not exist") ||
		(strings.Contains(msg, "prepared statement") && strings.Contains(msg, "26000"))
}

// withStatementRetry runs fn and repeats it once after a prepared statement
// failure.
func withStatementRetry(ctx context.Context, fn func() error) error {
	err := fn()
	if err == nil || ctx.Err() != nil {
		return err
	}
	if isBindParameterMismatch(err) || isUnnamedPreparedStatementMissing(err) {
		return fn()
	}
	return err
}

func nullStringValue(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return strings.TrimSpace(v.String)
}

func nullInt64ToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	out := int(v.Int64)
	return &out
}

func nullInt64Value(v sql.NullInt64) int64 {
	if !v.Valid {
		return 0
	}
	return v.Int64
}

func nullTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	out := v.Time
	return &out
}

// decodeVenue reads score_detail.venue, which is either a plain name or an
// object carrying fullName/name.
func decodeVenue(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}

	var detail struct {
		Venue any `json:"venue"`
	}
	if err := sonic.Unmarshal(raw, &detail); err != nil {
		return ""
	}

	switch v := detail.Venue.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		for _, key := range []string{"fullName", "name"} {
			if name, ok := v[key].(string); ok && strings.TrimSpace(name) != "" {
				return strings.TrimSpace(name)
			}
		}
	}
	return ""
}
