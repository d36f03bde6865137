package request

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"01:50:00", time.Hour + 50*time.Minute},
		{"110:00", 110 * time.Minute},
		{"6600", 6600 * time.Second},
		{"1 02:00:00", 26 * time.Hour},
		{"2 days, 00:00:01", 48*time.Hour + time.Second},
		{"00:00:01.5", 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		got, err := ParseDuration(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestParseDuration_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1:2:3:4", "01-50-00", "-5"} {
		_, err := ParseDuration(in)
		require.Error(t, err, in)
		assert.Equal(t, msgDurationFormat, err.(fieldError).FieldMessage(), in)
	}
}

func TestParseDuration_TooLong(t *testing.T) {
	for _, in := range []string{
		"2147483648",
		"10000000000000",
		"99999999999999999999",
		"700000:00:00",
		"24856 00:00:00",
		"24855 03:14:08",
	} {
		_, err := ParseDuration(in)
		require.Error(t, err, in)
		assert.Equal(t, msgDurationTooLong, err.(fieldError).FieldMessage(), in)
	}

	longest, err := ParseDuration("24855 03:14:07")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(MaxDurationSeconds)*time.Second, longest)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"01:50:00"`), &d))
	assert.Equal(t, Duration(110*time.Minute), d)

	require.NoError(t, json.Unmarshal([]byte(`90`), &d))
	assert.Equal(t, Duration(90*time.Second), d)

	assert.Error(t, json.Unmarshal([]byte(`true`), &d))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"1972-09-10"`), &d))
	assert.Equal(t, time.Date(1972, 9, 10, 0, 0, 0, 0, time.UTC), d.Time)

	for _, in := range []string{`"10/09/1972"`, `"1972-13-01"`, `19720910`} {
		err := json.Unmarshal([]byte(in), &d)
		require.Error(t, err, in)
		assert.Equal(t, msgDateFormat, err.Error(), in)
	}
}

func TestAmount_UnmarshalJSON(t *testing.T) {
	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`"13000000.00"`), &a))
	assert.Equal(t, "13000000.00", a.StringFixed(2))

	require.NoError(t, json.Unmarshal([]byte(`1500.5`), &a))
	assert.Equal(t, "1500.50", a.StringFixed(2))

	tests := []struct {
		in   string
		want string
	}{
		{`"abc"`, "A valid number is required."},
		{`true`, "A valid number is required."},
		{`"1.234"`, "Ensure that there are no more than 2 decimal places."},
		{`"1234567890123"`, "Ensure that there are no more than 12 digits in total."},
		{`"123456789012.5"`, "Ensure that there are no more than 12 digits in total."},
		{`"12345678901"`, "Ensure that there are no more than 10 digits before the decimal point."},
	}
	for _, tt := range tests {
		err := json.Unmarshal([]byte(tt.in), &a)
		require.Error(t, err, tt.in)
		assert.Equal(t, tt.want, err.Error(), tt.in)
	}
}
