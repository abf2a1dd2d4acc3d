package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	DefaultTravelAdvisorURL = "https://travel-advisor.p.rapidapi.com"
	travelAdvisorHost       = "travel-advisor.p.rapidapi.com"
	hotelQuestionID         = "8393250"
	maxHotels               = 3
	maxAmenities            = 5
)

// ─── Travel Advisor Client ───────────────────────────────────────────────────

type TravelAdvisorConfig struct {
	APIKey   string
	BaseURL  string
	CacheTTL time.Duration
	Timeout  time.Duration
}

// TravelAdvisorClient fetches hotel listings through RapidAPI. Successful
// lookups are cached per location id.
type TravelAdvisorClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
	log        *zap.Logger
}

func NewTravelAdvisorClient(cfg TravelAdvisorConfig, log *zap.Logger) *TravelAdvisorClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultTravelAdvisorURL
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Hour
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.APIKey == "" {
		log.Warn("RAPIDAPI_KEY not set, hotel listings will use generated data")
	}

	return &TravelAdvisorClient{
		apiKey:     cfg.APIKey,
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cache:      cache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		log:        log,
	}
}

type hotelQuery struct {
	ContentType string `json:"contentType"`
	ContentID   string `json:"contentId"`
	QuestionID  string `json:"questionId"`
	Pagee       int    `json:"pagee"`
	UpdateToken string `json:"updateToken"`
}

type hotelAnswers struct {
	Data struct {
		Content []struct {
			Business *hotelBusiness `json:"business"`
		} `json:"content"`
	} `json:"data"`
}

type hotelBusiness struct {
	Name   string `json:"name"`
	Rating any    `json:"rating"`
	Price  *struct {
		DisplayPrice string `json:"displayPrice"`
	} `json:"price"`
	AddressObj *struct {
		Street1 string `json:"street1"`
	} `json:"addressObj"`
	Amenities []struct {
		AmenityCategoryName string `json:"amenityCategoryName"`
	} `json:"amenities"`
}

// FetchHotels returns up to three hotels for destination. Failures are logged
// and reported as an empty list.
func (c *TravelAdvisorClient) FetchHotels(ctx context.Context, destination string) []Hotel {
	contentID := ContentID(destination)
	key := contentID + "|" + destination
	if cached, found := c.cache.Get(key); found {
		return cached.([]Hotel)
	}

	hotels, err := c.fetch(ctx, contentID, destination)
	if err != nil {
		c.log.Warn("hotel lookup failed",
			zap.String("destination", destination),
			zap.String("content_id", contentID),
			zap.Error(err))
		return []Hotel{}
	}
	if len(hotels) > 0 {
		c.cache.Set(key, hotels, cache.DefaultExpiration)
	}
	return hotels
}

func (c *TravelAdvisorClient) fetch(ctx context.Context, contentID, destination string) ([]Hotel, error) {
	if c.apiKey == "" {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(hotelQuery{
		ContentType: "hotel",
		ContentID:   contentID,
		QuestionID:  hotelQuestionID,
	})
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/answers/v2/list?currency=USD&units=km&lang=en_US"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-rapidapi-key", c.apiKey)
	req.Header.Set("x-rapidapi-host", travelAdvisorHost)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("travel advisor error (%d): %s", resp.StatusCode, string(body))
	}

	var answers hotelAnswers
	if err := json.Unmarshal(body, &answers); err != nil {
		return nil, fmt.Errorf("failed to parse hotel answers: %w", err)
	}

	// Only the first answers are considered; those without a hotel record are skipped.
	content := answers.Data.Content
	if len(content) > maxHotels {
		content = content[:maxHotels]
	}
	hotels := make([]Hotel, 0, maxHotels)
	for _, item := range content {
		if item.Business == nil {
			continue
		}
		hotels = append(hotels, toHotel(item.Business, destination))
	}
	return hotels, nil
}

func toHotel(b *hotelBusiness, destination string) Hotel {
	h := Hotel{
		Name:      "Hotel in " + destination,
		Rating:    4,
		Price:     "$150",
		Location:  "Central " + destination,
		Amenities: []string{"WiFi", "Parking", "Restaurant"},
	}
	if b.Name != "" {
		h.Name = b.Name
	}
	if r, ok := parseRating(b.Rating); ok {
		h.Rating = r
	}
	if b.Price != nil && b.Price.DisplayPrice != "" {
		h.Price = b.Price.DisplayPrice
	}
	if b.AddressObj != nil && b.AddressObj.Street1 != "" {
		h.Location = b.AddressObj.Street1
	}
	var amenities []string
	for _, a := range b.Amenities[:min(maxAmenities, len(b.Amenities))] {
		if a.AmenityCategoryName != "" {
			amenities = append(amenities, a.AmenityCategoryName)
		}
	}
	if len(amenities) > 0 {
		h.Amenities = amenities
	}
	return h
}

// parseRating accepts numbers or numeric strings and rounds half to even.
func parseRating(v any) (int, bool) {
	var f float64
	switch r := v.(type) {
	case float64:
		f = r
	case string:
		parsed, err := strconv.ParseFloat(r, 64)
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	return int(math.RoundToEven(f)), true
}
