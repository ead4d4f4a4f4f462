package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tompettersson/reparatur-formular/internal/http/handlers"
	"github.com/tompettersson/reparatur-formular/internal/modules/pricing"
)

func TestFormOptions(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/form-options", handlers.NewOptionsHandler(pricing.RulesetCurrent).Get)

	req := httptest.NewRequest(http.MethodGet, "/api/form-options", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Soles []struct {
			Value string `json:"value"`
			Label string `json:"label"`
			Price string `json:"price"`
		} `json:"soles"`
		Manufacturers []string `json:"manufacturers"`
		Sizes         []string `json:"sizes"`
		Surcharges    struct {
			EdgeRubber   string `json:"edgeRubber"`
			Closure      string `json:"closure"`
			Disinfection string `json:"disinfection"`
		} `json:"surcharges"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))

	require.Len(t, res.Soles, 8)
	assert.Equal(t, "vibram_xs_grip", res.Soles[0].Value)
	assert.Equal(t, "32,00 €", res.Soles[0].Price)
	assert.Equal(t, "41,00 €", res.Soles[6].Price) // original resole

	assert.Contains(t, res.Manufacturers, "La Sportiva")
	assert.Equal(t, "24", res.Sizes[0])
	assert.Equal(t, "50", res.Sizes[len(res.Sizes)-1])

	assert.Equal(t, "19,00 €", res.Surcharges.EdgeRubber)
	assert.Equal(t, "20,00 €", res.Surcharges.Closure)
	assert.Equal(t, "3,00 €", res.Surcharges.Disinfection)
}
