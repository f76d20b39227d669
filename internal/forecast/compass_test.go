package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCardinal(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		want    string
	}{
		{name: "north", degrees: 0, want: "N ↓"},
		{name: "east", degrees: 90, want: "E ←"},
		{name: "south", degrees: 180, want: "S ↑"},
		{name: "west", degrees: 270, want: "W →"},
		{name: "full circle wraps to north", degrees: 360, want: "N ↓"},
		{name: "north-north-east", degrees: 22.5, want: "NNE ↙"},
		{name: "rounds to nearest point", degrees: 95, want: "E ←"},
		{name: "just below north wraps", degrees: 355, want: "N ↓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cardinal(tt.degrees))
		})
	}
}

func TestHourLabel(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{hour: 15, want: "3 pm"},
		{hour: 9, want: "9 am"},
		{hour: 0, want: "12 am"},
		{hour: 12, want: "12 pm"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			ts := time.Date(2023, 6, 15, tt.hour, 0, 0, 0, time.Local).Unix()
			assert.Equal(t, tt.want, HourLabel(ts))
		})
	}
}
