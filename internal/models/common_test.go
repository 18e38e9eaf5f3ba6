package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var payload struct {
		Birth Date `json:"birth"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"birth":"1990-04-21"}`), &payload))
	assert.Equal(t, NewDate(1990, time.April, 21), payload.Birth)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"birth":"1990-04-21"}`, string(out))
}

func TestDateAcceptsTimestamps(t *testing.T) {
	d, err := ParseDate("1990-04-21T00:00:00.000Z")
	require.NoError(t, err)
	assert.Equal(t, "1990-04-21", d.String())

	_, err = ParseDate("21/04/1990")
	assert.Error(t, err)
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2001, time.March, 3, 15, 4, 5, 0, time.FixedZone("BRT", -3*3600))))
	assert.Equal(t, "2001-03-03", d.String())

	require.NoError(t, d.Scan([]byte("2010-12-01")))
	assert.Equal(t, "2010-12-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	value, err := NewDate(2020, time.January, 2).Value()
	require.NoError(t, err)
	assert.Equal(t, "2020-01-02", value)
}

func TestStatusDefaults(t *testing.T) {
	assert.Equal(t, StatusActive, Status("").OrDefault())
	assert.Equal(t, StatusInactive, StatusInactive.OrDefault())
	assert.True(t, StatusInactive.Valid())
	assert.False(t, Status("Suspenso").Valid())
}

func TestFlexibleIntAcceptsNumbersAndStrings(t *testing.T) {
	cases := map[string]FlexibleInt{
		`{"ano":2024}`:     2024,
		`{"ano":"2024"}`:   2024,
		`{"ano":" 2025 "}`: 2025,
		`{"ano":""}`:       0,
		`{"ano":null}`:     0,
	}
	for body, want := range cases {
		var payload struct {
			Year FlexibleInt `json:"ano"`
		}
		require.NoError(t, json.Unmarshal([]byte(body), &payload), body)
		assert.Equal(t, want, payload.Year, body)
	}

	var payload struct {
		Year FlexibleInt `json:"ano"`
	}
	assert.Error(t, json.Unmarshal([]byte(`{"ano":"dois mil"}`), &payload))
	assert.Error(t, json.Unmarshal([]byte(`{"ano":20.5}`), &payload))

	out, err := json.Marshal(struct {
		Year FlexibleInt `json:"ano"`
	}{Year: 2024})
	require.NoError(t, err)
	assert.JSONEq(t, `{"ano":2024}`, string(out))
}
