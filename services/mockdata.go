package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ─── Types ────────────────────────────────────────────────────────────────────

type Forecast struct {
	Day         string `json:"day"`
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
}

type Weather struct {
	Temperature int        `json:"temperature"`
	Condition   string     `json:"condition"`
	Humidity    int        `json:"humidity"`
	Wind        int        `json:"wind"`
	Forecast    []Forecast `json:"forecast"`
}

type Flight struct {
	Airline          string `json:"airline"`
	Price            int    `json:"price"`
	DepartureTime    string `json:"departureTime"`
	ArrivalTime      string `json:"arrivalTime"`
	Duration         string `json:"duration"`
	DepartureAirport string `json:"departureAirport"`
	ArrivalAirport   string `json:"arrivalAirport"`
}

type Hotel struct {
	Name      string   `json:"name"`
	Rating    int      `json:"rating"`
	Price     string   `json:"price"`
	Location  string   `json:"location"`
	Amenities []string `json:"amenities"`
}

type DestinationData struct {
	Weather        Weather  `json:"weather"`
	Flights        []Flight `json:"flights"`
	Accommodations []Hotel  `json:"accommodations"`
}

// ─── Generator ───────────────────────────────────────────────────────────────

var (
	weatherConditions = []string{"Sunny", "Cloudy", "Partly Cloudy", "Rainy", "Clear"}
	airlines          = []string{"Air Travel", "SkyWings", "Global Air", "FastJet", "StarFlight"}
	hubAirports       = []string{"JFK", "LAX", "LHR", "CDG", "DXB", "SIN", "SYD", "HND"}
	quarterHours      = []string{"00", "15", "30", "45"}

	hotelPrefixes = []string{"Grand", "Royal", "Luxury", "Premium", "Comfort", "Imperial"}
	hotelTypes    = []string{"Hotel", "Resort", "Suites", "Inn", "Lodge", "Apartments"}
	hotelAreas    = []string{"Downtown", "Central", "Historic District", "Beachfront", "City Center"}
	hotelAmenity  = []string{"Free WiFi", "Pool", "Spa", "Restaurant", "Bar", "Gym", "Parking", "Room Service"}
)

const (
	forecastDays = 5
	mockCount    = 3
)

// MockDataGenerator produces plausible stand-in data when the model or the
// hotel API cannot.
type MockDataGenerator struct {
	rnd Rand
	now func() time.Time
}

func NewMockDataGenerator(rnd Rand, now func() time.Time) *MockDataGenerator {
	if now == nil {
		now = time.Now
	}
	return &MockDataGenerator{rnd: rnd, now: now}
}

func (g *MockDataGenerator) GenerateWeather() Weather {
	w := Weather{
		Temperature: between(g.rnd, 15, 30),
		Condition:   pick(g.rnd, weatherConditions),
		Humidity:    between(g.rnd, 40, 90),
		Wind:        between(g.rnd, 5, 20),
		Forecast:    make([]Forecast, 0, forecastDays),
	}
	today := g.now()
	for i := 0; i < forecastDays; i++ {
		w.Forecast = append(w.Forecast, Forecast{
			Day:         today.AddDate(0, 0, i+1).Format("Mon"),
			Temperature: between(g.rnd, 15, 30),
			Condition:   pick(g.rnd, weatherConditions),
		})
	}
	return w
}

// GenerateFlights returns three flights. Arrival hours are not wrapped at
// midnight, so "26:30" means 02:30 the next day.
func (g *MockDataGenerator) GenerateFlights(destination string) []Flight {
	arrivalCode := strings.ToUpper(firstRunes(destination, 3))
	flights := make([]Flight, 0, mockCount)
	for i := 0; i < mockCount; i++ {
		hour := between(g.rnd, 6, 22)
		minute := pick(g.rnd, quarterHours)
		hours := between(g.rnd, 1, 14)

		flights = append(flights, Flight{
			Airline:          pick(g.rnd, airlines),
			Price:            between(g.rnd, 200, 1500),
			DepartureTime:    fmt.Sprintf("%02d:%s", hour, minute),
			ArrivalTime:      fmt.Sprintf("%02d:%s", hour+hours, minute),
			Duration:         fmt.Sprintf("%dh %sm", hours, pick(g.rnd, quarterHours)),
			DepartureAirport: pick(g.rnd, hubAirports),
			ArrivalAirport:   arrivalCode,
		})
	}
	return flights
}

func (g *MockDataGenerator) GenerateAccommodations(destination string) []Hotel {
	hotels := make([]Hotel, 0, mockCount)
	for i := 0; i < mockCount; i++ {
		hotels = append(hotels, Hotel{
			Name:      fmt.Sprintf("%s %s %s", pick(g.rnd, hotelPrefixes), destination, pick(g.rnd, hotelTypes)),
			Rating:    between(g.rnd, 3, 5),
			Price:     fmt.Sprintf("$%d", between(g.rnd, 80, 500)),
			Location:  fmt.Sprintf("%s %s", pick(g.rnd, hotelAreas), destination),
			Amenities: g.sample(hotelAmenity, between(g.rnd, 3, 6)),
		})
	}
	return hotels
}

func (g *MockDataGenerator) GenerateDestinationData(destination string) DestinationData {
	return DestinationData{
		Weather:        g.GenerateWeather(),
		Flights:        g.GenerateFlights(destination),
		Accommodations: g.GenerateAccommodations(destination),
	}
}

// sample draws k distinct items with a partial Fisher-Yates shuffle.
func (g *MockDataGenerator) sample(items []string, k int) []string {
	pool := append([]string(nil), items...)
	for i := 0; i < k; i++ {
		j := i + g.rnd.Intn(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}

func firstRunes(s string, n int) string {
	r := []rune(s)
	if len(r) > n {
		r = r[:n]
	}
	return string(r)
}

func mustRaw(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}
