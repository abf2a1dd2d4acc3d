package services

import (
	"fmt"
	"slices"
	"strings"

	"travelmate/sessions"
)

type keywordGroup struct {
	value    string
	keywords []string
}

// Groups are checked in order and the first match wins.
var budgetGroups = []keywordGroup{
	{LevelLuxury, []string{"luxury", "high-end", "five-star", "5-star"}},
	{LevelBudget, []string{"budget", "cheap", "affordable", "inexpensive"}},
	{LevelMidRange, []string{"mid-range", "moderate", "medium"}},
}

var travelTypeGroups = []keywordGroup{
	{"family", []string{"family", "kids", "children"}},
	{"solo", []string{"solo", "alone", "by myself"}},
	{"couple", []string{"couple", "romantic", "honeymoon"}},
	{"group", []string{"friends", "group"}},
}

var interestKeywords = []string{
	"beach", "mountain", "hiking", "culture", "history", "food", "adventure", "relaxation",
	"shopping", "nightlife", "nature", "wildlife", "diving", "skiing", "art", "museum",
}

var durationUnits = []string{"day", "days", "week", "weeks", "month", "months"}

const maxDurationCount = 30

// ExtractPreferences folds the signals found in message into prefs.
// Matching is substring based, so "art" also fires on "party".
func ExtractPreferences(prefs *sessions.Preferences, message string) {
	msg := strings.ToLower(message)

	if v, ok := matchGroup(budgetGroups, msg); ok {
		prefs.BudgetLevel = v
	}
	if v, ok := matchGroup(travelTypeGroups, msg); ok {
		prefs.TravelType = v
	}

	for _, interest := range interestKeywords {
		if strings.Contains(msg, interest) && !slices.Contains(prefs.TravelInterests, interest) {
			prefs.TravelInterests = append(prefs.TravelInterests, interest)
		}
	}

	if d, ok := extractDuration(msg); ok {
		prefs.TravelDuration = d
	}

	for _, d := range knownDestinations {
		if strings.Contains(msg, d.Key) && !slices.Contains(prefs.PreferredDestinations, d.Key) {
			prefs.PreferredDestinations = append(prefs.PreferredDestinations, d.Key)
		}
	}
}

func matchGroup(groups []keywordGroup, msg string) (string, bool) {
	for _, g := range groups {
		for _, kw := range g.keywords {
			if strings.Contains(msg, kw) {
				return g.value, true
			}
		}
	}
	return "", false
}

// extractDuration looks for "{n} {unit}" with n in 1..30. Later units in
// durationUnits override earlier ones.
func extractDuration(msg string) (string, bool) {
	var found string
	for _, unit := range durationUnits {
		if !strings.Contains(msg, unit) {
			continue
		}
		for n := 1; n <= maxDurationCount; n++ {
			candidate := fmt.Sprintf("%d %s", n, unit)
			if strings.Contains(msg, candidate) {
				found = candidate
				break
			}
		}
	}
	return found, found != ""
}
