package symbol

// Option is a selector entry.
type Option struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Intervals are the chart interval codes in selector order.
var Intervals = []Option{
	{"1", "1m"},
	{"3", "3m"},
	{"5", "5m"},
	{"15", "15m"},
	{"30", "30m"},
	{"60", "1h"},
	{"240", "4h"},
	{"D", "1D"},
	{"W", "1W"},
}

var taIntervals = map[string]string{
	"1":   "1m",
	"3":   "3m",
	"5":   "5m",
	"15":  "15m",
	"30":  "30m",
	"60":  "1h",
	"240": "4h",
	"D":   "1D",
	"W":   "1W",
}

// TAInterval converts a chart interval code to the vocabulary of the
// technical-analysis widget. Unknown codes fall back to "1h".
func TAInterval(code string) string {
	if v, ok := taIntervals[code]; ok {
		return v
	}
	return "1h"
}

// ValidInterval reports whether code is one of Intervals.
func ValidInterval(code string) bool {
	_, ok := taIntervals[code]
	return ok
}
