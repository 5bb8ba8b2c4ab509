package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"wirehaul/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// Address is the human-readable result of a reverse-geocode lookup.
type Address struct {
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Village string `json:"village,omitempty"`
}

// Service resolves coordinates into a human-readable address.
type Service interface {
	Reverse(ctx context.Context, lat, lng float64) (*Address, error)
}

// nominatimResponse mirrors the fields we consume from the Nominatim
// reverse endpoint.
type nominatimResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City    string `json:"city"`
		Town    string `json:"town"`
		State   string `json:"state"`
		Country string `json:"country"`
		Village string `json:"village"`
	} `json:"address"`
}

// NominatimService reverse-geocodes through a public Nominatim endpoint.
// The service is rate-limit sensitive, so results are cached in Redis.
type NominatimService struct {
	BaseURL string
	Client  *http.Client
	Cache   *redis.Client
	Logger  *zap.Logger
}

// NewNominatimService builds a geocoder with a bounded-timeout HTTP client.
func NewNominatimService(baseURL string, cache *redis.Client, logger *zap.Logger) *NominatimService {
	return &NominatimService{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: 5 * time.Second},
		Cache:   cache,
		Logger:  logger,
	}
}

// Reverse resolves (lat, lng) to an address, serving cached results when
// available.
func (s *NominatimService) Reverse(ctx context.Context, lat, lng float64) (*Address, error) {
	cacheKey := fmt.Sprintf("%s%.5f,%.5f", utils.GeoCachePrefix, lat, lng)

	if s.Cache != nil {
		if cached, err := s.Cache.Get(ctx, cacheKey).Result(); err == nil {
			var addr Address
			if err := json.Unmarshal([]byte(cached), &addr); err == nil {
				return &addr, nil
			}
		}
	}

	endpoint := fmt.Sprintf("%s/reverse?format=json&lat=%s&lon=%s",
		s.BaseURL,
		url.QueryEscape(fmt.Sprintf("%f", lat)),
		url.QueryEscape(fmt.Sprintf("%f", lng)),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	req.Header.Set("User-Agent", "wirehaul/1.0")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("reverse geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("reverse geocode returned status %d", resp.StatusCode)
	}

	var body nominatimResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode geocode response: %w", err)
	}

	addr := &Address{
		City:    body.Address.City,
		State:   body.Address.State,
		Country: body.Address.Country,
		Village: body.Address.Village,
	}
	if addr.City == "" {
		addr.City = body.Address.Town
	}
	if addr.City == "" {
		addr.City = body.DisplayName
	}

	if s.Cache != nil {
		if data, err := json.Marshal(addr); err == nil {
			if err := s.Cache.Set(ctx, cacheKey, data, utils.GeoCacheTTL).Err(); err != nil && s.Logger != nil {
				s.Logger.Warn("failed to cache geocode result", zap.Error(err))
			}
		}
	}
	return addr, nil
}
