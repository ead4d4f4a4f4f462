package catalog_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tompettersson/reparatur-formular/internal/config"
	"github.com/tompettersson/reparatur-formular/internal/modules/catalog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func shopServer(t *testing.T, tokenCalls *int32, products int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(tokenCalls, 1)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-123",
			"expires_in":   600,
		})
	})
	mux.HandleFunc("/search/product", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		data := make([]map[string]any, 0, products)
		for i := 0; i < products; i++ {
			data = append(data, map[string]any{
				"id": "p" + string(rune('0'+i)),
				"attributes": map[string]any{
					"name":  "Solution Comp",
					"price": []map[string]any{{"gross": 159.95}},
				},
				"relationships": map[string]any{
					"manufacturer": map[string]any{"data": map[string]any{"id": "m1"}},
				},
			})
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": data,
			"included": []map[string]any{{
				"id":         "m1",
				"type":       "product_manufacturer",
				"attributes": map[string]any{"name": "La Sportiva"},
			}},
		})
	})
	return httptest.NewServer(mux)
}

func newClient(url string) *catalog.Client {
	return catalog.NewClient(config.ShopwareConfig{
		APIURL:          url,
		AccessKeyID:     "key",
		SecretAccessKey: "secret",
	}, testLogger())
}

func TestSuggestReturnsAtMostFive(t *testing.T) {
	var tokenCalls int32
	srv := shopServer(t, &tokenCalls, 8)
	defer srv.Close()

	got := newClient(srv.URL).Suggest(context.Background(), "La Sportiva", "Solution")
	require.Len(t, got, 5)
	assert.Equal(t, "Solution Comp", got[0].Name)
	assert.Equal(t, "159,95 €", got[0].Price)
	assert.Equal(t, "La Sportiva", got[0].Manufacturer)
}

func TestSuggestFiltersByManufacturer(t *testing.T) {
	var tokenCalls int32
	srv := shopServer(t, &tokenCalls, 3)
	defer srv.Close()

	got := newClient(srv.URL).Suggest(context.Background(), "Scarpa", "Solution")
	assert.Empty(t, got)
}

func TestSuggestCachesToken(t *testing.T) {
	var tokenCalls int32
	srv := shopServer(t, &tokenCalls, 1)
	defer srv.Close()

	c := newClient(srv.URL)
	c.Suggest(context.Background(), "", "Solution")
	c.Suggest(context.Background(), "", "Solution")
	assert.Equal(t, int32(1), atomic.LoadInt32(&tokenCalls))
}

func TestSuggestShortQueryReturnsEmpty(t *testing.T) {
	c := newClient("http://127.0.0.1:1") // never reached
	assert.Empty(t, c.Suggest(context.Background(), "La Sportiva", "S"))
}

func TestSuggestBackendDownReturnsEmpty(t *testing.T) {
	c := newClient("http://127.0.0.1:1")
	assert.Empty(t, c.Suggest(context.Background(), "La Sportiva", "Solution"))
}
