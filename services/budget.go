package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"travelmate/sessions"
)

const (
	LevelBudget   = "budget"
	LevelMidRange = "mid-range"
	LevelLuxury   = "luxury"
)

var ErrUnknownBudgetLevel = errors.New("unknown budget level")

// Range is an inclusive USD amount range.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

type tier struct {
	Accommodation Range
	Food          Range
	Activities    Range
	Transport     Range
}

// Per person per day, USD.
var baseCosts = map[string]tier{
	LevelBudget: {
		Accommodation: Range{50, 100},
		Food:          Range{20, 40},
		Activities:    Range{10, 30},
		Transport:     Range{5, 15},
	},
	LevelMidRange: {
		Accommodation: Range{100, 250},
		Food:          Range{40, 80},
		Activities:    Range{30, 60},
		Transport:     Range{15, 40},
	},
	LevelLuxury: {
		Accommodation: Range{250, 1000},
		Food:          Range{80, 200},
		Activities:    Range{60, 200},
		Transport:     Range{40, 150},
	},
}

// Round trip per person.
var baseFlightCosts = map[string]Range{
	LevelBudget:   {300, 600},
	LevelMidRange: {600, 1200},
	LevelLuxury:   {1200, 3000},
}

// ValidBudgetLevel reports whether level names a known tier.
func ValidBudgetLevel(level string) bool {
	_, ok := baseCosts[level]
	return ok
}

// BudgetBreakdown is the per-person daily cost of a destination at one budget level.
type BudgetBreakdown struct {
	Accommodation Range        `json:"accommodation"`
	Food          Range        `json:"food"`
	Activities    Range        `json:"activities"`
	Transport     Range        `json:"transport"`
	DailyTotal    Range        `json:"daily_total"`
	Attractions   []Attraction `json:"specific_attractions"`
}

// BudgetEngine prices destinations from static tables and cost multipliers.
type BudgetEngine struct {
	rnd Rand
}

func NewBudgetEngine(rnd Rand) *BudgetEngine {
	return &BudgetEngine{rnd: rnd}
}

// Title capitalizes each word of a destination name ("new york" -> "New York").
// A Caser holds state, so one is built per call.
func Title(destination string) string {
	return cases.Title(language.English).String(destination)
}

// CalculateBudget scales the tier table by the destination's cost of living.
// Each bound is truncated on its own, then the daily total is summed.
func (e *BudgetEngine) CalculateBudget(destination string, prefs sessions.Preferences) (BudgetBreakdown, error) {
	level := prefs.BudgetLevel
	if level == "" {
		level = LevelMidRange
	}
	base, ok := baseCosts[level]
	if !ok {
		return BudgetBreakdown{}, fmt.Errorf("%w: %q", ErrUnknownBudgetLevel, level)
	}

	mult := CostMultiplier(destination)
	b := BudgetBreakdown{
		Accommodation: scale(base.Accommodation, mult),
		Food:          scale(base.Food, mult),
		Activities:    scale(base.Activities, mult),
		Transport:     scale(base.Transport, mult),
	}
	b.DailyTotal = Range{
		Min: b.Accommodation.Min + b.Food.Min + b.Activities.Min + b.Transport.Min,
		Max: b.Accommodation.Max + b.Food.Max + b.Activities.Max + b.Transport.Max,
	}
	b.Attractions = e.attractions(destination)
	return b, nil
}

func scale(r Range, mult float64) Range {
	return Range{Min: int(float64(r.Min) * mult), Max: int(float64(r.Max) * mult)}
}

func (e *BudgetEngine) attractions(destination string) []Attraction {
	if curated, ok := curatedAttractions[strings.ToLower(destination)]; ok {
		return append([]Attraction(nil), curated...)
	}
	name := Title(destination)
	return []Attraction{
		{Name: name + " City Tour", Cost: between(e.rnd, 15, 40)},
		{Name: name + " Museum", Cost: between(e.rnd, 10, 25)},
		{Name: name + " Historic Site", Cost: between(e.rnd, 5, 30)},
	}
}

// EstimateFlightCost returns the round-trip range for the whole party.
func (e *BudgetEngine) EstimateFlightCost(destination, level string, travelers int) (Range, error) {
	base, ok := baseFlightCosts[level]
	if !ok {
		return Range{}, fmt.Errorf("%w: %q", ErrUnknownBudgetLevel, level)
	}
	mult := flightMultiplier(destination)
	return Range{
		Min: int(float64(base.Min*travelers) * mult),
		Max: int(float64(base.Max*travelers) * mult),
	}, nil
}

// FormatBudgetNarrative renders a breakdown in the same Markdown layout the
// model uses, so the chat client can treat both alike.
func (e *BudgetEngine) FormatBudgetNarrative(destination string, b BudgetBreakdown) string {
	name := Title(destination)
	acc, food, tr, act := b.Accommodation, b.Food, b.Transport, b.Activities

	var sb strings.Builder
	fmt.Fprintf(&sb, "## Budget Estimate for %s\n\n", name)

	sb.WriteString("**Accommodation:**\n")
	fmt.Fprintf(&sb, "* Budget: $%d-$%d per night\n", acc.Min, acc.Max)
	fmt.Fprintf(&sb, "* Mid-range: $%d-$%s per night\n", acc.Min*2, wholeFloat(float64(acc.Max)*1.5))
	fmt.Fprintf(&sb, "* Luxury: $%s+ per night\n\n", wholeFloat(float64(acc.Max)*1.5))

	sb.WriteString("**Food:**\n")
	fmt.Fprintf(&sb, "* Budget meals: $%d-$%s per day\n", food.Min, wholeFloat(float64(food.Min)*1.5))
	fmt.Fprintf(&sb, "* Mid-range dining: $%s-$%d per day\n", wholeFloat(float64(food.Min)*1.5), food.Max)
	fmt.Fprintf(&sb, "* Fine dining: $%d+ per meal\n\n", food.Max)

	sb.WriteString("**Transportation:**\n")
	fmt.Fprintf(&sb, "* Public transit: $%d per day\n", tr.Min)
	fmt.Fprintf(&sb, "* Car rental: $%d-$%d per day\n", tr.Min*3, tr.Max*2)
	fmt.Fprintf(&sb, "* Taxis/rideshares: Average $%d per ride\n\n", tr.Min*2)

	sb.WriteString("**Activities:**\n")
	if len(b.Attractions) > 0 {
		for i, a := range b.Attractions {
			if i == 3 {
				break
			}
			fmt.Fprintf(&sb, "* %s: $%d\n", a.Name, a.Cost)
		}
	} else {
		sb.WriteString("* Free attractions: Parks, walking tours, public spaces\n")
		fmt.Fprintf(&sb, "* Paid attractions: $%d-$%d per activity\n", act.Min, act.Max)
		fmt.Fprintf(&sb, "* Tours: $%d-$%d per tour\n", act.Min*2, act.Max*2)
	}

	fmt.Fprintf(&sb, "\n**Estimated daily budget:** $%d-$%d depending on travel style\n\n", b.DailyTotal.Min, b.DailyTotal.Max)
	fmt.Fprintf(&sb, `{suggest_buttons}["I choose %[1]s", "Weather in %[1]s", "Things to do in %[1]s"]{/suggest_buttons}`, name)
	return sb.String()
}

// wholeFloat keeps a trailing ".0" on whole values: 375 -> "375.0", 97.5 -> "97.5".
func wholeFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// ─── Trip planning ───────────────────────────────────────────────────────────

type TripRequest struct {
	Destination string
	BudgetLevel string
	Duration    int
	Travelers   int
}

type CategoryCost struct {
	Min   int `json:"min"`
	Max   int `json:"max"`
	Total int `json:"total"`
}

type TripBudget struct {
	Destination    string       `json:"destination"`
	Duration       int          `json:"duration"`
	Travelers      int          `json:"travelers"`
	BudgetLevel    string       `json:"budgetLevel"`
	DailyCost      Range        `json:"dailyCost"`
	Accommodation  CategoryCost `json:"accommodation"`
	Food           CategoryCost `json:"food"`
	Activities     CategoryCost `json:"activities"`
	Transportation CategoryCost `json:"transportation"`
	Flights        Range        `json:"flights"`
	TotalCost      Range        `json:"totalCost"`
	Attractions    []Attraction `json:"attractions"`
}

// PlanTrip scales a per-person breakdown to a party and a trip length.
func (e *BudgetEngine) PlanTrip(req TripRequest) (*TripBudget, error) {
	b, err := e.CalculateBudget(req.Destination, sessions.Preferences{BudgetLevel: req.BudgetLevel})
	if err != nil {
		return nil, err
	}
	flights, err := e.EstimateFlightCost(req.Destination, req.BudgetLevel, req.Travelers)
	if err != nil {
		return nil, err
	}

	n, days := req.Travelers, req.Duration
	category := func(r Range) CategoryCost {
		return CategoryCost{Min: r.Min * n, Max: r.Max * n, Total: r.Min * n * days}
	}

	return &TripBudget{
		Destination:    req.Destination,
		Duration:       days,
		Travelers:      n,
		BudgetLevel:    req.BudgetLevel,
		DailyCost:      Range{Min: b.DailyTotal.Min * n, Max: b.DailyTotal.Max * n},
		Accommodation:  category(b.Accommodation),
		Food:           category(b.Food),
		Activities:     category(b.Activities),
		Transportation: category(b.Transport),
		Flights:        flights,
		TotalCost: Range{
			Min: b.DailyTotal.Min*n*days + flights.Min,
			Max: b.DailyTotal.Max*n*days + flights.Max,
		},
		Attractions: b.Attractions,
	}, nil
}
