package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tompettersson/reparatur-formular/internal/modules/pricing"
)

// OptionsHandler serves the static form vocabulary: sole price table,
// surcharges, brands, sizes and quantity steps. The wizard renders itself
// from this so price changes never require a frontend deploy.
type OptionsHandler struct {
	Ruleset pricing.Ruleset
}

func NewOptionsHandler(rs pricing.Ruleset) *OptionsHandler {
	return &OptionsHandler{Ruleset: rs}
}

type soleOption struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	Thickness string `json:"thickness"`
	Price     string `json:"price"`
}

type quantityOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type shippingOption struct {
	Zone   string `json:"zone"`
	Label  string `json:"label"`
	Return string `json:"return"`
}

func (h *OptionsHandler) Get(c *gin.Context) {
	soles := make([]soleOption, 0, len(pricing.SolePrices))
	for _, st := range []pricing.SoleType{
		pricing.SoleVibramXSGrip,
		pricing.SoleVibramXSGrip2,
		pricing.SoleVibramXSEdge,
		pricing.SoleStealthC4,
		pricing.SoleStealthHF,
		pricing.SoleBoreal,
		pricing.SoleOrigLaSportiva,
		pricing.SoleOrigScarpa,
	} {
		info := pricing.SolePrices[st]
		soles = append(soles, soleOption{
			Value:     string(st),
			Label:     info.Label,
			Thickness: info.Thickness,
			Price:     pricing.FormatEUR(info.Price),
		})
	}

	quantities := make([]quantityOption, 0, len(pricing.QuantityOptions))
	for _, q := range pricing.QuantityOptions {
		quantities = append(quantities, quantityOption{Value: q.Value, Label: q.Label})
	}

	shipping := make([]shippingOption, 0, len(pricing.ShippingCosts))
	for _, zone := range []string{"germany", "eu", "non_eu"} {
		sc := pricing.ShippingCosts[zone]
		shipping = append(shipping, shippingOption{
			Zone:   zone,
			Label:  pricing.FormatEUR(sc.Label),
			Return: pricing.FormatEUR(sc.Return),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"soles":         soles,
		"manufacturers": pricing.Manufacturers,
		"sizes":         pricing.ShoeSizes(),
		"quantities":    quantities,
		"shipping":      shipping,
		"surcharges": gin.H{
			"edgeRubber":   pricing.FormatEUR(h.Ruleset.EdgeRubber),
			"closure":      pricing.FormatEUR(h.Ruleset.Closure),
			"disinfection": pricing.FormatEUR(h.Ruleset.Disinfection),
		},
	})
}
