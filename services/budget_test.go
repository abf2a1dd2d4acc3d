package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelmate/sessions"
)

func TestCalculateBudget(t *testing.T) {
	engine := NewBudgetEngine(NewRand(1))

	tests := []struct {
		name        string
		destination string
		level       string
		acc, food   Range
		act, trans  Range
		daily       Range
	}{
		{"paris mid-range", "paris", LevelMidRange, Range{130, 325}, Range{52, 104}, Range{39, 78}, Range{19, 52}, Range{240, 559}},
		{"paris defaults to mid-range", "Paris", "", Range{130, 325}, Range{52, 104}, Range{39, 78}, Range{19, 52}, Range{240, 559}},
		{"bangkok budget", "bangkok", LevelBudget, Range{30, 60}, Range{12, 24}, Range{6, 18}, Range{3, 9}, Range{51, 111}},
		{"new york mid-range", "new york", LevelMidRange, Range{150, 375}, Range{60, 120}, Range{45, 90}, Range{22, 60}, Range{277, 645}},
		{"unknown city uses base table", "atlantis", LevelLuxury, Range{250, 1000}, Range{80, 200}, Range{60, 200}, Range{40, 150}, Range{430, 1550}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := engine.CalculateBudget(tt.destination, sessions.Preferences{BudgetLevel: tt.level})
			require.NoError(t, err)
			assert.Equal(t, tt.acc, b.Accommodation)
			assert.Equal(t, tt.food, b.Food)
			assert.Equal(t, tt.act, b.Activities)
			assert.Equal(t, tt.trans, b.Transport)
			assert.Equal(t, tt.daily, b.DailyTotal)
			assert.Len(t, b.Attractions, 3)
		})
	}
}

func TestCalculateBudgetUnknownLevel(t *testing.T) {
	_, err := NewBudgetEngine(NewRand(1)).CalculateBudget("paris", sessions.Preferences{BudgetLevel: "platinum"})
	assert.ErrorIs(t, err, ErrUnknownBudgetLevel)
}

func TestAttractions(t *testing.T) {
	engine := NewBudgetEngine(NewRand(7))

	b, err := engine.CalculateBudget("tokyo", sessions.Preferences{})
	require.NoError(t, err)
	assert.Equal(t, []Attraction{{"Tokyo Skytree", 23}, {"Robot Restaurant Show", 80}, {"Senso-ji Temple", 0}}, b.Attractions)

	for i := 0; i < 50; i++ {
		b, err := engine.CalculateBudget("lisbon", sessions.Preferences{})
		require.NoError(t, err)
		require.Len(t, b.Attractions, 3)
		assert.Equal(t, "Lisbon City Tour", b.Attractions[0].Name)
		assert.Equal(t, "Lisbon Museum", b.Attractions[1].Name)
		assert.Equal(t, "Lisbon Historic Site", b.Attractions[2].Name)
		assert.True(t, b.Attractions[0].Cost >= 15 && b.Attractions[0].Cost <= 40)
		assert.True(t, b.Attractions[1].Cost >= 10 && b.Attractions[1].Cost <= 25)
		assert.True(t, b.Attractions[2].Cost >= 5 && b.Attractions[2].Cost <= 30)
	}
}

func TestEstimateFlightCost(t *testing.T) {
	engine := NewBudgetEngine(NewRand(1))

	tests := []struct {
		destination string
		level       string
		travelers   int
		want        Range
	}{
		{"bangkok", LevelBudget, 2, Range{840, 1680}},
		{"sydney", LevelLuxury, 1, Range{2160, 5400}},
		{"lisbon", LevelMidRange, 3, Range{1800, 3600}},
	}
	for _, tt := range tests {
		got, err := engine.EstimateFlightCost(tt.destination, tt.level, tt.travelers)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.destination)
	}

	_, err := engine.EstimateFlightCost("paris", "first-class", 1)
	assert.ErrorIs(t, err, ErrUnknownBudgetLevel)
}

func TestFormatBudgetNarrative(t *testing.T) {
	engine := NewBudgetEngine(NewRand(1))
	b, err := engine.CalculateBudget("paris", sessions.Preferences{BudgetLevel: LevelMidRange})
	require.NoError(t, err)

	want := "## Budget Estimate for Paris\n\n" +
		"**Accommodation:**\n" +
		"* Budget: $130-$325 per night\n" +
		"* Mid-range: $260-$487.5 per night\n" +
		"* Luxury: $487.5+ per night\n\n" +
		"**Food:**\n" +
		"* Budget meals: $52-$78.0 per day\n" +
		"* Mid-range dining: $78.0-$104 per day\n" +
		"* Fine dining: $104+ per meal\n\n" +
		"**Transportation:**\n" +
		"* Public transit: $19 per day\n" +
		"* Car rental: $57-$104 per day\n" +
		"* Taxis/rideshares: Average $38 per ride\n\n" +
		"**Activities:**\n" +
		"* Eiffel Tower: $25\n" +
		"* Louvre Museum: $17\n" +
		"* Seine River Cruise: $15\n" +
		"\n**Estimated daily budget:** $240-$559 depending on travel style\n\n" +
		`{suggest_buttons}["I choose Paris", "Weather in Paris", "Things to do in Paris"]{/suggest_buttons}`

	assert.Equal(t, want, engine.FormatBudgetNarrative("paris", b))
}

func TestFormatBudgetNarrativeWithoutAttractions(t *testing.T) {
	engine := NewBudgetEngine(NewRand(1))
	b := BudgetBreakdown{
		Accommodation: Range{100, 250},
		Food:          Range{40, 80},
		Activities:    Range{30, 60},
		Transport:     Range{15, 40},
		DailyTotal:    Range{185, 430},
	}

	text := engine.FormatBudgetNarrative("new york", b)
	assert.Contains(t, text, "## Budget Estimate for New York\n")
	assert.Contains(t, text, "* Luxury: $375.0+ per night\n")
	assert.Contains(t, text, "* Free attractions: Parks, walking tours, public spaces\n")
	assert.Contains(t, text, "* Paid attractions: $30-$60 per activity\n")
	assert.Contains(t, text, "* Tours: $60-$120 per tour\n")
	assert.True(t, strings.HasSuffix(text, `"Things to do in New York"]{/suggest_buttons}`))
}

func TestNarrativeRoundTripsThroughMarkup(t *testing.T) {
	engine := NewBudgetEngine(NewRand(1))
	b, err := engine.CalculateBudget("rome", sessions.Preferences{})
	require.NoError(t, err)

	parsed := ParseMarkup(engine.FormatBudgetNarrative("rome", b))
	assert.Equal(t, []string{"I choose Rome", "Weather in Rome", "Things to do in Rome"}, parsed.SuggestionButtons)
	assert.NotContains(t, parsed.Text, "suggest_buttons")
	assert.NotContains(t, parsed.Text, "I choose Rome")
}

func TestWholeFloat(t *testing.T) {
	assert.Equal(t, "375.0", wholeFloat(375))
	assert.Equal(t, "97.5", wholeFloat(97.5))
	assert.Equal(t, "0.0", wholeFloat(0))
}

func TestPlanTrip(t *testing.T) {
	engine := NewBudgetEngine(NewRand(1))

	trip, err := engine.PlanTrip(TripRequest{Destination: "bangkok", BudgetLevel: LevelBudget, Duration: 3, Travelers: 2})
	require.NoError(t, err)

	assert.Equal(t, Range{102, 222}, trip.DailyCost)
	assert.Equal(t, CategoryCost{Min: 60, Max: 120, Total: 180}, trip.Accommodation)
	assert.Equal(t, CategoryCost{Min: 24, Max: 48, Total: 72}, trip.Food)
	assert.Equal(t, CategoryCost{Min: 12, Max: 36, Total: 36}, trip.Activities)
	assert.Equal(t, CategoryCost{Min: 6, Max: 18, Total: 18}, trip.Transportation)
	assert.Equal(t, Range{840, 1680}, trip.Flights)
	assert.Equal(t, Range{1146, 2346}, trip.TotalCost)
	assert.Equal(t, "budget", trip.BudgetLevel)
	assert.Len(t, trip.Attractions, 3)
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "New York", Title("new york"))
	assert.Equal(t, "Hong Kong", Title("HONG KONG"))
}
