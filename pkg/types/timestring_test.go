package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:30", want: "09:30"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid end of day", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "9:30", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "abcde", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	tests := []struct {
		name    string
		start   TimeString
		add     int
		want    TimeString
		wantErr bool
	}{
		{name: "within hour", start: "09:00", add: 30, want: "09:30"},
		{name: "across hour", start: "09:45", add: 30, want: "10:15"},
		{name: "to end of day", start: "23:00", add: 59, want: "23:59"},
		{name: "past midnight", start: "23:30", add: 45, wantErr: true},
		{name: "malformed source", start: "9:3", add: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.start.AddMinutes(tt.add)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("17:00"))
	assert.False(t, TimeString("17:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))
	assert.True(t, TimeString("17:00").IsAfter("09:00"))
	assert.False(t, TimeString("bad").IsBefore("09:00"))
}

func TestTimeString_Label12Hour(t *testing.T) {
	tests := []struct {
		input TimeString
		want  string
	}{
		{input: "00:00", want: "12:00 AM"},
		{input: "07:00", want: "7:00 AM"},
		{input: "11:45", want: "11:45 AM"},
		{input: "12:00", want: "12:00 PM"},
		{input: "13:30", want: "1:30 PM"},
		{input: "23:59", want: "11:59 PM"},
	}

	for _, tt := range tests {
		t.Run(string(tt.input), func(t *testing.T) {
			got, err := tt.input.Label12Hour()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("08:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 510, m)

	_, err = TimeString("25:00").Minutes()
	assert.Error(t, err)
}
