// Package geocode resolves free-text place names through the Nominatim search API.
package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode/utf8"

	"adresses/config"
	deliverycontext "adresses/internal/delivery/context"
	"adresses/internal/domain/entity"
	"adresses/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// nominatimPlace is one element of the /search?format=json response.
type nominatimPlace struct {
	PlaceID     int64  `json:"place_id"`
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// nominatimSearcher implements PlaceSearcher against a Nominatim instance.
type nominatimSearcher struct {
	endpoint   string
	language   string
	limit      int
	minLength  int
	userAgent  string
	limiter    *rate.Limiter
	httpClient *http.Client
	logger     *slog.Logger
}

// NewNominatimSearcher creates a place searcher from the placeSearch config section.
func NewNominatimSearcher(cfg *config.Config, logger *slog.Logger) service.PlaceSearcher {
	ps := cfg.PlaceSearch

	return &nominatimSearcher{
		endpoint:  strings.TrimRight(ps.Endpoint, "/"),
		language:  ps.Language,
		limit:     ps.Limit,
		minLength: ps.MinQueryLength,
		userAgent: ps.UserAgent,
		// The public instance allows one request per second per application.
		limiter: rate.NewLimiter(rate.Limit(ps.RequestsPerSecond), 1),
		httpClient: &http.Client{
			Timeout: ps.Timeout,
		},
		logger: logger,
	}
}

// Search returns up to limit places for query. Queries shorter than the minimum length
// yield no result without calling the remote service.
func (s *nominatimSearcher) Search(ctx context.Context, query string) ([]*entity.Place, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < s.minLength {
		return []*entity.Place{}, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "place search rate limit wait")
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(s.limit))
	params.Set("q", query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"/search?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", s.language)
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "nominatim request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Errorf("nominatim returned non-success status: %d", resp.StatusCode)
	}

	var results []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errors.Wrap(err, "failed to decode nominatim response")
	}

	places := make([]*entity.Place, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Skipping nominatim result with invalid coordinates",
				slog.Int64("place_id", r.PlaceID),
				slog.String("lat", r.Lat),
				slog.String("lon", r.Lon),
			)

			continue
		}

		places = append(places, &entity.Place{
			ID:        strconv.FormatInt(r.PlaceID, 10),
			Label:     r.DisplayName,
			Latitude:  lat,
			Longitude: lon,
		})
	}

	return places, nil
}
