package hotels

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// HTTPClient 对接外部酒店聚合 API，实现 Client 接口
type HTTPClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewHTTPClient(baseURL, apiKey string) (*HTTPClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("hotel provider base url is required")
	}
	return &HTTPClient{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// 聚合 API 返回的单条记录
type providerHotel struct {
	Name          string  `json:"name"`
	Address       string  `json:"address"`
	Lat           float64 `json:"lat"`
	Lng           float64 `json:"lng"`
	PricePerNight string  `json:"price_per_night"`
	Currency      string  `json:"currency"`
	Rating        float64 `json:"rating"`
	URL           string  `json:"url"`
}

func (c *HTTPClient) Search(ctx context.Context, q SearchQuery) ([]Hotel, error) {
	params := url.Values{}
	params.Set("city", q.City)
	params.Set("check_in", q.CheckIn.Format("2006-01-02"))
	params.Set("check_out", q.CheckOut.Format("2006-01-02"))
	params.Set("guests", fmt.Sprintf("%d", q.Guests))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/hotels/search?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build hotel search request: %w", err)
	}
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hotel search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("hotel search failed: status %d", resp.StatusCode)
	}

	var payload struct {
		Hotels []providerHotel `json:"hotels"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode hotel search response: %w", err)
	}

	hotels := make([]Hotel, 0, len(payload.Hotels))
	for _, h := range payload.Hotels {
		hotels = append(hotels, Hotel{
			Name:          h.Name,
			Address:       h.Address,
			Lat:           h.Lat,
			Lng:           h.Lng,
			PricePerNight: h.PricePerNight,
			Currency:      h.Currency,
			Rating:        h.Rating,
			SourceURL:     h.URL,
		})
	}
	return hotels, nil
}
