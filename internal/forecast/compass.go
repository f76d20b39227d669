package forecast

import (
	"math"
	"strings"
	"time"
)

// cardinals are the sixteen compass points with the arrow pointing where the
// wind blows to, matching the provider's degree convention.
var cardinals = [16]string{
	"N ↓", "NNE ↙", "NE ↙", "ENE ↙", "E ←", "ESE ↖", "SE ↖", "SSE ↖",
	"S ↑", "SSW ↗", "SW ↗", "WSW ↗", "W →", "WNW ↘", "NW ↘", "NNW ↘",
}

// Cardinal converts wind direction degrees to a compass label with an arrow.
// 360 wraps around to N.
func Cardinal(degrees float64) string {
	idx := int(math.Round(degrees/22.5)) % 16
	if idx < 0 {
		idx += 16
	}
	return cardinals[idx]
}

// HourLabel formats a unix timestamp as a short hour label like "3 pm".
func HourLabel(ts int64) string {
	hour := strings.ToLower(time.Unix(ts, 0).Format("3 PM"))
	return hour
}
