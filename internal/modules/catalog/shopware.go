// Package catalog provides product suggestions from the Shopware 6 shop
// backend. Strictly read-only: only the OAuth token endpoint and product
// search are ever called.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tompettersson/reparatur-formular/internal/config"
	"github.com/tompettersson/reparatur-formular/internal/modules/pricing"
)

const maxSuggestions = 5

type ProductSuggestion struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Price        string `json:"price"`
	URL          string `json:"url"`
	ImageURL     string `json:"imageUrl,omitempty"`
	Manufacturer string `json:"manufacturer,omitempty"`
}

type Client struct {
	cfg    config.ShopwareConfig
	client *http.Client
	logger *slog.Logger

	mu          sync.Mutex
	cachedToken string
	tokenExpiry time.Time
}

func NewClient(cfg config.ShopwareConfig, logger *slog.Logger) *Client {
	return &Client{
		cfg:    cfg,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

// Suggest searches the shop for products matching the query, filtered by
// manufacturer, capped at five results. Purely advisory: every failure path
// returns an empty slice, never an error.
func (c *Client) Suggest(ctx context.Context, manufacturer, query string) []ProductSuggestion {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return []ProductSuggestion{}
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		c.logger.Warn("shopware auth failed", slog.Any("err", err))
		return []ProductSuggestion{}
	}

	results, err := c.search(ctx, token, query)
	if err != nil {
		c.logger.Warn("shopware search failed", slog.Any("err", err))
		return []ProductSuggestion{}
	}

	out := make([]ProductSuggestion, 0, maxSuggestions)
	for _, s := range results {
		if manufacturer != "" && s.Manufacturer != "" && !manufacturerMatches(manufacturer, s.Manufacturer) {
			continue
		}
		out = append(out, s)
		if len(out) >= maxSuggestions {
			break
		}
	}
	return out
}

// accessToken returns a cached OAuth2 client-credentials token, refreshing
// it when less than 60 seconds of validity remain.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cachedToken != "" && time.Now().Before(c.tokenExpiry.Add(-60*time.Second)) {
		return c.cachedToken, nil
	}

	if c.cfg.AccessKeyID == "" || c.cfg.SecretAccessKey == "" {
		return "", fmt.Errorf("shopware credentials not configured")
	}

	body, _ := json.Marshal(map[string]string{
		"grant_type":    "client_credentials",
		"client_id":     c.cfg.AccessKeyID,
		"client_secret": c.cfg.SecretAccessKey,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+"/oauth/token", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("shopware auth failed: %d", res.StatusCode)
	}

	var tok struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(res.Body).Decode(&tok); err != nil {
		return "", err
	}

	c.cachedToken = tok.AccessToken
	c.tokenExpiry = time.Now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	return c.cachedToken, nil
}

type searchRequest struct {
	Limit  int            `json:"limit"`
	Filter []searchFilter `json:"filter"`
}

type searchFilter struct {
	Type  string `json:"type"`
	Field string `json:"field"`
	Value string `json:"value"`
}

type searchResponse struct {
	Data []struct {
		ID         string `json:"id"`
		Attributes struct {
			Name  string `json:"name"`
			Price []struct {
				Gross float64 `json:"gross"`
				Net   float64 `json:"net"`
			} `json:"price"`
		} `json:"attributes"`
		Relationships struct {
			Manufacturer relRef `json:"manufacturer"`
			Cover        relRef `json:"cover"`
		} `json:"relationships"`
	} `json:"data"`
	Included []struct {
		ID         string `json:"id"`
		Type       string `json:"type"`
		Attributes struct {
			Name string `json:"name"`
			URL  string `json:"url"`
		} `json:"attributes"`
		Relationships struct {
			Media relRef `json:"media"`
		} `json:"relationships"`
	} `json:"included"`
}

type relRef struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

func (c *Client) search(ctx context.Context, token, query string) ([]ProductSuggestion, error) {
	body, _ := json.Marshal(searchRequest{
		Limit: 10,
		Filter: []searchFilter{
			{Type: "contains", Field: "name", Value: query},
		},
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.APIURL+"/search/product", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("shopware search status: %d", res.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, err
	}

	out := make([]ProductSuggestion, 0, len(sr.Data))
	for _, item := range sr.Data {
		s := ProductSuggestion{
			ID:   item.ID,
			Name: item.Attributes.Name,
			URL:  "https://www.kletterschuhe.de/detail/" + item.ID,
		}
		if s.Name == "" {
			s.Name = "Unbekanntes Produkt"
		}

		price := decimal.Zero
		if len(item.Attributes.Price) > 0 {
			p := item.Attributes.Price[0]
			if p.Gross != 0 {
				price = decimal.NewFromFloat(p.Gross)
			} else {
				price = decimal.NewFromFloat(p.Net)
			}
		}
		s.Price = pricing.FormatEUR(price.Round(2))

		if id := item.Relationships.Manufacturer.Data.ID; id != "" {
			for _, inc := range sr.Included {
				if inc.Type == "product_manufacturer" && inc.ID == id {
					s.Manufacturer = inc.Attributes.Name
					break
				}
			}
		}
		if coverID := item.Relationships.Cover.Data.ID; coverID != "" {
			for _, inc := range sr.Included {
				if inc.Type == "product_media" && inc.ID == coverID {
					mediaID := inc.Relationships.Media.Data.ID
					for _, m := range sr.Included {
						if m.Type == "media" && m.ID == mediaID {
							s.ImageURL = m.Attributes.URL
							break
						}
					}
					break
				}
			}
		}

		out = append(out, s)
	}
	return out, nil
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]`)

// manufacturerMatches compares brand names loosely: "Five Ten" matches
// "FiveTen" and "five-ten".
func manufacturerMatches(want, got string) bool {
	w := nonAlnum.ReplaceAllString(strings.ToLower(want), "")
	g := nonAlnum.ReplaceAllString(strings.ToLower(got), "")
	if w == "" || g == "" {
		return true
	}
	return strings.Contains(g, w) || strings.Contains(w, g)
}
