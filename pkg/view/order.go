// Package view maps domain models to the JSON shapes the API returns.
package view

import (
	"github.com/tompettersson/reparatur-formular/internal/modules/orders"
	"github.com/tompettersson/reparatur-formular/internal/modules/pricing"
)

const timeFormat = "2006-01-02 15:04"

// OrderSummary is what the public API returns after intake: enough for the
// confirmation page, nothing the customer didn't enter themselves.
type OrderSummary struct {
	ID          string      `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	Status      string      `json:"status"`
	StatusLabel string      `json:"statusLabel"`
	Total       string      `json:"total"`
	Items       []OrderItem `json:"items,omitempty"`
	CreatedAt   string      `json:"createdAt"`
}

type OrderItem struct {
	ID           string `json:"id"`
	Quantity     string `json:"quantity"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Color        string `json:"color,omitempty"`
	Size         string `json:"size"`
	Sole         string `json:"sole,omitempty"`
	SoleLabel    string `json:"soleLabel,omitempty"`
	EdgeRubber   string `json:"edgeRubber"`
	Closure      bool   `json:"closure"`
	Disinfection bool   `json:"disinfection"`
	Delegated    bool   `json:"delegatedToStaff"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	Price        string `json:"price"`
}

func Summary(o orders.Order, items []orders.OrderItem) OrderSummary {
	out := OrderSummary{
		ID:          o.ID,
		OrderNumber: o.Number(),
		Status:      string(o.Status),
		StatusLabel: o.Status.Label(),
		Total:       pricing.FormatEUR(o.TotalPrice),
		CreatedAt:   o.CreatedAt.Format(timeFormat),
	}
	for _, it := range items {
		out.Items = append(out.Items, Item(it))
	}
	return out
}

func Item(it orders.OrderItem) OrderItem {
	soleLabel := ""
	if info, ok := pricing.SolePrices[pricing.SoleType(it.Sole)]; ok {
		soleLabel = info.Label
	}
	return OrderItem{
		ID:           it.ID,
		Quantity:     it.Quantity.String(),
		Manufacturer: it.Manufacturer,
		Model:        it.Model,
		Color:        it.Color,
		Size:         it.Size,
		Sole:         it.Sole,
		SoleLabel:    soleLabel,
		EdgeRubber:   it.EdgeRubber,
		Closure:      it.Closure,
		Disinfection: it.Disinfection,
		Delegated:    it.DelegateToStaff,
		PhotoURL:     deref(it.PhotoURL),
		Price:        pricing.FormatEUR(it.CalculatedPrice),
	}
}
