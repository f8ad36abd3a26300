package octav

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp_EquivalentRepresentations(t *testing.T) {
	want := time.Unix(1700000000, 0).UTC()

	for _, raw := range []string{
		"1700000000",                 // unix seconds
		"1700000000000",              // unix milliseconds
		"2023-11-14T22:13:20.000Z",   // ISO with millis
		"2023-11-14T22:13:20Z",       // ISO
	} {
		ts, err := ParseTimestamp(raw)
		require.NoError(t, err, raw)
		assert.True(t, ts.Equal(want), "%s normalized to %v, want %v", raw, ts.Time, want)
	}
}

func TestParseTimestamp_DateOnly(t *testing.T) {
	ts, err := ParseTimestamp("2023-11-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 11, 14, 0, 0, 0, 0, time.UTC), ts.Time)
}

func TestParseTimestamp_Unknown(t *testing.T) {
	for _, raw := range []string{"", "not a date", "14/11/2023"} {
		_, err := ParseTimestamp(raw)
		assert.Error(t, err, "%q must not silently coerce", raw)
	}
}

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	var payload struct {
		TS Timestamp `json:"timestamp"`
	}

	// String and numeric JSON values normalize to the same instant.
	require.NoError(t, json.Unmarshal([]byte(`{"timestamp":"2023-11-14T22:13:20.000Z"}`), &payload))
	fromString := payload.TS.Time

	require.NoError(t, json.Unmarshal([]byte(`{"timestamp":1700000000000}`), &payload))
	assert.True(t, payload.TS.Equal(fromString))

	assert.Error(t, json.Unmarshal([]byte(`{"timestamp":"garbage"}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"timestamp":null}`), &payload))
}
