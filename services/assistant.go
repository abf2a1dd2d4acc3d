package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"travelmate/sessions"
)

// TextGenerator is the language model behind the assistant.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Chat(ctx context.Context, history []sessions.Turn, message string) (string, error)
}

// HotelProvider looks up real hotel listings. It never fails; an empty list
// means "nothing usable".
type HotelProvider interface {
	FetchHotels(ctx context.Context, destination string) []Hotel
}

type ChatResult struct {
	Response          string               `json:"response"`
	ProcessedResponse ProcessedResponse    `json:"processed_response"`
	UserPreferences   sessions.Preferences `json:"userPreferences"`
}

type BudgetSummary struct {
	DailyMin         int          `json:"daily_min"`
	DailyMax         int          `json:"daily_max"`
	AccommodationMin int          `json:"accommodation_min"`
	AccommodationMax int          `json:"accommodation_max"`
	FoodMin          int          `json:"food_min"`
	FoodMax          int          `json:"food_max"`
	Attractions      []Attraction `json:"attractions"`
}

type DestinationDetails struct {
	Weather        json.RawMessage `json:"weather"`
	Flights        json.RawMessage `json:"flights"`
	Accommodations []Hotel         `json:"accommodations"`
	Budget         BudgetSummary   `json:"budget"`
}

// Assistant ties sessions, the language model, hotel lookups and the budget
// engine together.
type Assistant struct {
	llm    TextGenerator
	hotels HotelProvider
	store  sessions.Store
	budget *BudgetEngine
	mock   *MockDataGenerator
	log    *zap.Logger
}

func NewAssistant(llm TextGenerator, hotels HotelProvider, store sessions.Store, budget *BudgetEngine, mock *MockDataGenerator, log *zap.Logger) *Assistant {
	return &Assistant{
		llm:    llm,
		hotels: hotels,
		store:  store,
		budget: budget,
		mock:   mock,
		log:    log,
	}
}

func sessionKey(key string) string {
	if key == "" {
		return sessions.DefaultKey
	}
	return key
}

// UpdatePreferences folds message into the session's preferences.
func (a *Assistant) UpdatePreferences(key, message string) (sessions.Preferences, error) {
	var out sessions.Preferences
	err := a.store.With(sessionKey(key), func(s *sessions.Session) error {
		ExtractPreferences(s.Preferences, message)
		out = s.Preferences.Clone()
		return nil
	})
	return out, err
}

// Chat handles one user message. The session stays locked for the whole
// exchange, so concurrent messages on one session are applied in turn.
func (a *Assistant) Chat(ctx context.Context, key, message string) (*ChatResult, error) {
	var result *ChatResult
	err := a.store.With(sessionKey(key), func(s *sessions.Session) error {
		ExtractPreferences(s.Preferences, message)
		prefs := s.Preferences.Clone()

		text, err := a.reply(ctx, s.History, message, prefs)
		if err != nil {
			return err
		}

		s.Append(
			sessions.Turn{Role: sessions.RoleUser, Text: message},
			sessions.Turn{Role: sessions.RoleModel, Text: text},
		)
		result = &ChatResult{
			Response:          text,
			ProcessedResponse: ParseMarkup(text),
			UserPreferences:   prefs,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// reply answers budget questions about a known destination locally and sends
// everything else to the model.
func (a *Assistant) reply(ctx context.Context, history []sessions.Turn, message string, prefs sessions.Preferences) (string, error) {
	if strings.Contains(strings.ToLower(message), "budget") {
		if dest, ok := FindDestination(message); ok {
			b, err := a.budget.CalculateBudget(dest, prefs)
			if err != nil {
				return "", err
			}
			a.log.Debug("budget answered locally", zap.String("destination", dest))
			return a.budget.FormatBudgetNarrative(dest, b), nil
		}
	}

	text, err := a.llm.Chat(ctx, history, message)
	if err != nil {
		return "", fmt.Errorf("chat reply: %w", err)
	}
	return text, nil
}

type generatedData struct {
	Weather json.RawMessage `json:"weather"`
	Flights json.RawMessage `json:"flights"`
}

// DestinationDetails gathers weather, flights, hotels and a budget summary.
// Model or hotel failures fall back to generated data.
func (a *Assistant) DestinationDetails(ctx context.Context, destination, key string) (*DestinationDetails, error) {
	hotels := a.hotels.FetchHotels(ctx, destination)

	details := &DestinationDetails{}
	data, err := a.generateData(ctx, destination)
	if err != nil {
		a.log.Warn("using generated destination data",
			zap.String("destination", destination),
			zap.Error(err))
		mock := a.mock.GenerateDestinationData(destination)
		details.Weather = mustRaw(mock.Weather)
		details.Flights = mustRaw(mock.Flights)
		details.Accommodations = mock.Accommodations
	} else {
		details.Weather = data.Weather
		details.Flights = data.Flights
	}

	if len(hotels) > 0 {
		details.Accommodations = hotels
	} else if details.Accommodations == nil {
		details.Accommodations = a.mock.GenerateAccommodations(destination)
	}

	prefs := sessions.Preferences{}
	if snap, ok := a.store.Peek(sessionKey(key)); ok {
		prefs = snap.Preferences
	}
	b, err := a.budget.CalculateBudget(destination, prefs)
	if err != nil {
		return nil, err
	}
	details.Budget = BudgetSummary{
		DailyMin:         b.DailyTotal.Min,
		DailyMax:         b.DailyTotal.Max,
		AccommodationMin: b.Accommodation.Min,
		AccommodationMax: b.Accommodation.Max,
		FoodMin:          b.Food.Min,
		FoodMax:          b.Food.Max,
		Attractions:      b.Attractions,
	}
	return details, nil
}

// destinationDataGenerator is implemented by generators that can answer the
// destination data prompt without a model round trip.
type destinationDataGenerator interface {
	DestinationData(ctx context.Context, destination string) (string, error)
}

func (a *Assistant) generateData(ctx context.Context, destination string) (*generatedData, error) {
	var text string
	var err error
	if g, ok := a.llm.(destinationDataGenerator); ok {
		text, err = g.DestinationData(ctx, destination)
	} else {
		text, err = a.llm.Generate(ctx, destinationDataPrompt(destination))
	}
	if err != nil {
		return nil, err
	}
	var data generatedData
	if err := ExtractJSON(text, &data); err != nil {
		return nil, err
	}
	if isNull(data.Weather) || isNull(data.Flights) {
		return nil, errors.New("model reply is missing weather or flights")
	}
	return &data, nil
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || string(raw) == "null"
}

// PlanTrip prices a trip. Session preferences are not read or changed.
func (a *Assistant) PlanTrip(_ context.Context, req TripRequest) (*TripBudget, error) {
	return a.budget.PlanTrip(req)
}
