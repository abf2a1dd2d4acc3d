package services

import (
	"context"
	"fmt"

	"travelmate/sessions"
)

// MockLLM answers without a network call, for local runs without an API key.
// Data prompts get a fenced JSON payload built from the mock generator.
type MockLLM struct {
	mock *MockDataGenerator
}

func NewMockLLM(mock *MockDataGenerator) *MockLLM {
	return &MockLLM{mock: mock}
}

// Generate has no destination to go on, so flights land at a placeholder airport.
func (m *MockLLM) Generate(ctx context.Context, _ string) (string, error) {
	return m.DestinationData(ctx, "Mock")
}

// DestinationData answers the destination data prompt for destination.
func (m *MockLLM) DestinationData(_ context.Context, destination string) (string, error) {
	payload := struct {
		Weather Weather  `json:"weather"`
		Flights []Flight `json:"flights"`
	}{
		Weather: m.mock.GenerateWeather(),
		Flights: m.mock.GenerateFlights(destination),
	}
	return "```json\n" + string(mustRaw(payload)) + "\n```", nil
}

func (m *MockLLM) Chat(_ context.Context, history []sessions.Turn, message string) (string, error) {
	return fmt.Sprintf("Hi, I'm TravelMate! You said %q (%d earlier messages in this chat). "+
		"Tell me where you'd like to go.\n\n"+
		`{suggest_buttons}["I choose Paris", "Budget for Tokyo", "Beach holidays"]{/suggest_buttons}`,
		message, len(history)), nil
}
