package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"travelmate/database"
	"travelmate/services"
	"travelmate/sessions"
)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	return newTestServerWithReports(t, database.NewMemory())
}

func newTestServerWithReports(t *testing.T, reports database.ReportStore) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := zap.NewNop()
	rnd := services.NewRand(1)
	mock := services.NewMockDataGenerator(rnd, time.Now)
	hotels := services.NewTravelAdvisorClient(services.TravelAdvisorConfig{}, log)
	assistant := services.NewAssistant(services.NewMockLLM(mock), hotels, sessions.NewMemoryStore(),
		services.NewBudgetEngine(rnd), mock, log)

	return NewRouter(New(assistant, reports, log), log)
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["database"])
}

func TestChatValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing message", `{"sessionId": "s"}`, "No message provided"},
		{"empty message", `{"message": ""}`, "No message provided"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, srv, http.MethodPost, "/api/chat", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tt.want, decode(t, w)["error"])
		})
	}

	w := do(t, srv, http.MethodPost, "/api/chat", `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decode(t, w)["error"], "Invalid request")
}

func TestChat(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/chat", `{"message": "Budget for a family trip to Rome?", "sessionId": "abc"}`)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	assert.Contains(t, body["response"], "## Budget Estimate for Rome")

	processed := body["processed_response"].(map[string]any)
	assert.Equal(t, []any{"I choose Rome", "Weather in Rome", "Things to do in Rome"}, processed["suggestionButtons"])
	assert.Equal(t, []any{}, processed["destinationCards"])

	prefs := body["userPreferences"].(map[string]any)
	assert.Equal(t, "budget", prefs["budget_level"])
	assert.Equal(t, "family", prefs["travel_type"])
	assert.Nil(t, prefs["travel_duration"])
	assert.Equal(t, []any{"rome"}, prefs["preferred_destinations"])

	w = do(t, srv, http.MethodPost, "/api/chat", `{"message": "hello again", "sessionId": "abc"}`)
	require.Equal(t, http.StatusOK, w.Code)
	prefs = decode(t, w)["userPreferences"].(map[string]any)
	assert.Equal(t, "family", prefs["travel_type"], "preferences persist within a session")
}

func TestDestinationDetails(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/destination-details", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "No destination provided", decode(t, w)["error"])

	w = do(t, srv, http.MethodPost, "/api/destination-details", `{"destination": "London"}`)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	for _, key := range []string{"weather", "flights", "accommodations", "budget"} {
		assert.Contains(t, body, key)
	}
	budget := body["budget"].(map[string]any)
	assert.EqualValues(t, 259, budget["daily_min"])
	assert.EqualValues(t, 602, budget["daily_max"])
	assert.Len(t, body["accommodations"], 3)

	flights := body["flights"].([]any)
	require.Len(t, flights, 3)
	assert.Equal(t, "LON", flights[0].(map[string]any)["arrivalAirport"])
}

func TestBudgetCalculator(t *testing.T) {
	srv := newTestServer(t)

	w := do(t, srv, http.MethodPost, "/api/budget-calculator",
		`{"destination": "bangkok", "budgetLevel": "budget", "duration": 3, "travelers": 2}`)
	require.Equal(t, http.StatusOK, w.Code)

	var trip services.TripBudget
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trip))
	assert.Equal(t, 60, trip.Accommodation.Min)
	assert.Equal(t, 180, trip.Accommodation.Total)
	assert.Equal(t, services.Range{Min: 840, Max: 1680}, trip.Flights)
	assert.Equal(t, services.Range{Min: 1146, Max: 2346}, trip.TotalCost)

	raw := decode(t, w)
	for _, key := range []string{"destination", "duration", "travelers", "budgetLevel", "dailyCost",
		"accommodation", "food", "activities", "transportation", "flights", "totalCost", "attractions"} {
		assert.Contains(t, raw, key)
	}
}

func TestBudgetCalculatorDefaults(t *testing.T) {
	w := do(t, newTestServer(t), http.MethodPost, "/api/budget-calculator", `{"destination": "paris"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var trip services.TripBudget
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &trip))
	assert.Equal(t, 7, trip.Duration)
	assert.Equal(t, 1, trip.Travelers)
	assert.Equal(t, "mid-range", trip.BudgetLevel)
	assert.Equal(t, services.Range{Min: 240, Max: 559}, trip.DailyCost)
	assert.Equal(t, services.Range{Min: 240*7 + 720, Max: 559*7 + 1440}, trip.TotalCost)
}

func TestBudgetCalculatorValidation(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		body string
	}{
		{"missing destination", `{"budgetLevel": "budget"}`},
		{"unknown level", `{"destination": "paris", "budgetLevel": "platinum"}`},
		{"zero travelers", `{"destination": "paris", "travelers": 0}`},
		{"wrong type", `{"destination": "paris", "duration": "long"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, srv, http.MethodPost, "/api/budget-calculator", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.NotEmpty(t, decode(t, w)["error"])
		})
	}
}

func TestBudgetReportRoundTrip(t *testing.T) {
	reports := database.NewMemory()
	srv := newTestServerWithReports(t, reports)

	w := do(t, srv, http.MethodPost, "/api/budget-report",
		`{"destination": "rome", "budgetLevel": "luxury", "duration": 4, "travelers": 2, "travelerName": "Sam"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ReportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.ReportID)
	assert.Equal(t, "/api/budget-report/"+resp.ReportID, resp.PDFURL)

	w = do(t, srv, http.MethodGet, resp.PDFURL, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))

	stored, err := reports.GetReport(context.Background(), resp.ReportID)
	require.NoError(t, err)
	assert.Equal(t, "Sam", stored.TravelerName)
	var summary services.TripBudget
	require.NoError(t, json.Unmarshal([]byte(stored.SummaryJSON), &summary))
	assert.Equal(t, "rome", summary.Destination)
	assert.Equal(t, 4, summary.Duration)

	w = do(t, srv, http.MethodGet, "/api/budget-report/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORS(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	w := httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")

	req = httptest.NewRequest(http.MethodPost, "/api/chat", bytes.NewBufferString(`{"message": "hi"}`))
	req.Header.Set("Origin", "https://travel.example")
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	srv.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSHeadersWithoutOrigin(t *testing.T) {
	srv := newTestServer(t)

	for _, tt := range []struct {
		method, path, body string
		status             int
	}{
		{http.MethodGet, "/api/health", "", http.StatusOK},
		{http.MethodPost, "/api/chat", `{}`, http.StatusBadRequest},
		{http.MethodGet, "/api/budget-report/missing", "", http.StatusNotFound},
	} {
		w := do(t, srv, tt.method, tt.path, tt.body)
		assert.Equal(t, tt.status, w.Code, tt.path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), tt.path)
		assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST", tt.path)
		assert.Equal(t, "Content-Type", w.Header().Get("Access-Control-Allow-Headers"), tt.path)
	}
}
