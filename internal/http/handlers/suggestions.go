package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tompettersson/reparatur-formular/internal/modules/catalog"
)

// SuggestionsHandler proxies model-name lookups to the shop backend. The
// endpoint is advisory and therefore never fails: backend trouble just means
// an empty list.
type SuggestionsHandler struct {
	Catalog *catalog.Client
}

func NewSuggestionsHandler(client *catalog.Client) *SuggestionsHandler {
	return &SuggestionsHandler{Catalog: client}
}

func (h *SuggestionsHandler) Get(c *gin.Context) {
	suggestions := h.Catalog.Suggest(
		c.Request.Context(),
		c.Query("manufacturer"),
		c.Query("q"),
	)
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
