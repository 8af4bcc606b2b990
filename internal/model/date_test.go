package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2021-10-09")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2021, Month: time.October, Day: 9}, d)
	assert.Equal(t, "2021-10-09", d.String())

	_, err = ParseDate("09.10.2021")
	assert.Error(t, err)
}

func TestDateOf(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	ts := time.Date(2021, 10, 9, 23, 30, 0, 0, loc)

	assert.Equal(t, Date{Year: 2021, Month: time.October, Day: 9}, DateOf(ts))
	assert.Equal(t, time.Date(2021, 10, 9, 0, 0, 0, 0, time.UTC), DateOf(ts).Time())
}

func TestDate_JSON(t *testing.T) {
	var h Hours
	err := json.Unmarshal([]byte(`{"date":"2021-10-09","hours":1}`), &h)
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2021, Month: time.October, Day: 9}, h.Date)

	b, err := json.Marshal(h.Date)
	require.NoError(t, err)
	assert.JSONEq(t, `"2021-10-09"`, string(b))

	t.Run("rejects non string", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`20211009`), &d))
	})

	t.Run("rejects bad layout", func(t *testing.T) {
		var d Date
		assert.Error(t, json.Unmarshal([]byte(`"2021/10/09"`), &d))
	})
}

func TestDate_IsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, Date{Year: 2021, Month: 1, Day: 1}.IsZero())
}

func TestDate_IsValid(t *testing.T) {
	assert.True(t, Date{Year: 2024, Month: time.February, Day: 29}.IsValid())
	assert.False(t, Date{Year: 2023, Month: time.February, Day: 29}.IsValid())
	assert.False(t, Date{Year: 2021, Month: 13, Day: 1}.IsValid())
	assert.False(t, Date{}.IsValid())
}
