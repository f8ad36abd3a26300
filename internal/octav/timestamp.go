package octav

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The API is inconsistent about timestamps: the same field arrives as an ISO
// string, a unix-seconds value, or a unix-milliseconds value depending on the
// chain integration. Timestamp normalizes all of them at the decode boundary
// so nothing downstream ever sees the raw union.
type Timestamp struct {
	time.Time
}

// Numeric values at or above this threshold are taken as milliseconds.
const msThreshold = 1e12

// ParseTimestamp normalizes a raw timestamp value to an absolute instant.
// Unknown formats are an error; silently coercing to the epoch would smuggle
// 1970 dates into tax reports.
func ParseTimestamp(raw string) (Timestamp, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Timestamp{}, fmt.Errorf("empty timestamp")
	}

	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if n < msThreshold {
			return Timestamp{time.Unix(n, 0).UTC()}, nil
		}
		return Timestamp{time.UnixMilli(n).UTC()}, nil
	}

	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return Timestamp{t.UTC()}, nil
		}
	}

	return Timestamp{}, fmt.Errorf("unknown timestamp format: %q", raw)
}

// UnmarshalJSON accepts both JSON strings and JSON numbers.
func (ts *Timestamp) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" {
		return fmt.Errorf("null timestamp")
	}
	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}

func (ts Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + ts.UTC().Format(time.RFC3339Nano) + `"`), nil
}
