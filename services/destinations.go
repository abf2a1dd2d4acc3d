package services

import "strings"

// ─── Reference data ──────────────────────────────────────────────────────────

type destinationInfo struct {
	Key       string
	ContentID string
}

// knownDestinations is scanned in this order wherever a message or query is
// matched against destinations.
var knownDestinations = []destinationInfo{
	{"paris", "187147"},
	{"london", "186338"},
	{"new york", "60763"},
	{"tokyo", "298184"},
	{"rome", "187791"},
	{"barcelona", "187497"},
	{"dubai", "295424"},
	{"sydney", "255060"},
	{"amsterdam", "188590"},
	{"bangkok", "293916"},
	{"los angeles", "32655"},
	{"las vegas", "45963"},
	{"chicago", "35805"},
	{"miami", "34439"},
	{"berlin", "187323"},
	{"madrid", "187514"},
	{"singapore", "294265"},
	{"san francisco", "60713"},
	{"hong kong", "294217"},
}

const fallbackContentID = "60763"

var costOfLiving = map[string]float64{
	"paris":         1.3,
	"london":        1.4,
	"new york":      1.5,
	"tokyo":         1.4,
	"dubai":         1.3,
	"sydney":        1.2,
	"hong kong":     1.3,
	"singapore":     1.2,
	"las vegas":     1.1,
	"bangkok":       0.6,
	"barcelona":     1.0,
	"rome":          1.1,
	"berlin":        1.0,
	"madrid":        1.0,
	"amsterdam":     1.2,
	"chicago":       1.1,
	"los angeles":   1.3,
	"san francisco": 1.4,
	"miami":         1.2,
}

var flightMultipliers = map[string]float64{
	"paris":    1.2,
	"london":   1.2,
	"new york": 1.0,
	"tokyo":    1.5,
	"dubai":    1.3,
	"sydney":   1.8,
	"bangkok":  1.4,
}

type Attraction struct {
	Name string `json:"name"`
	Cost int    `json:"cost"`
}

var curatedAttractions = map[string][]Attraction{
	"paris": {
		{"Eiffel Tower", 25},
		{"Louvre Museum", 17},
		{"Seine River Cruise", 15},
	},
	"london": {
		{"Tower of London", 30},
		{"London Eye", 35},
		{"Westminster Abbey", 25},
	},
	"new york": {
		{"Empire State Building", 42},
		{"Metropolitan Museum of Art", 25},
		{"Statue of Liberty Ferry", 24},
	},
	"tokyo": {
		{"Tokyo Skytree", 23},
		{"Robot Restaurant Show", 80},
		{"Senso-ji Temple", 0},
	},
	"rome": {
		{"Colosseum", 16},
		{"Vatican Museums", 17},
		{"Roman Forum", 16},
	},
}

// CostMultiplier returns the cost-of-living factor for a destination, 1.0 when unknown.
func CostMultiplier(destination string) float64 {
	if m, ok := costOfLiving[strings.ToLower(destination)]; ok {
		return m
	}
	return 1.0
}

func flightMultiplier(destination string) float64 {
	if m, ok := flightMultipliers[strings.ToLower(destination)]; ok {
		return m
	}
	return 1.0
}

// ContentID resolves a destination to its Travel Advisor location id:
// exact match first, then a partial match in table order, then New York.
func ContentID(destination string) string {
	dest := strings.ToLower(strings.TrimSpace(destination))
	for _, d := range knownDestinations {
		if d.Key == dest {
			return d.ContentID
		}
	}
	for _, d := range knownDestinations {
		if strings.Contains(dest, d.Key) || strings.Contains(d.Key, dest) {
			return d.ContentID
		}
	}
	return fallbackContentID
}

// FindDestination returns the first known destination mentioned in text.
func FindDestination(text string) (string, bool) {
	lower := strings.ToLower(text)
	for _, d := range knownDestinations {
		if strings.Contains(lower, d.Key) {
			return d.Key, true
		}
	}
	return "", false
}
