package pricing

import "github.com/shopspring/decimal"

// ShippingCost is informational only and never part of the stored estimate.
type ShippingCost struct {
	Label  decimal.Decimal
	Return decimal.Decimal
}

var ShippingCosts = map[string]ShippingCost{
	"germany": {Label: eur(7), Return: eur(7)},
	"eu":      {Label: eur(15), Return: eur(11)},
	"non_eu":  {Label: eur(15), Return: eur(15)},
}

// Manufacturers lists the selectable shoe brands for the intake form.
var Manufacturers = []string{
	"La Sportiva",
	"Scarpa",
	"Five Ten",
	"Boreal",
	"Ocun",
	"Red Chili",
	"Tenaya",
	"Evolv",
	"Mad Rock",
	"Butora",
	"Unparallel",
	"So iLL",
	"Andere",
}

// ShoeSizes covers 24 to 50 in half steps.
func ShoeSizes() []string {
	sizes := make([]string, 0, 53)
	for i := 0; i < 53; i++ {
		s := decimal.NewFromInt(24).Add(decimal.NewFromFloat(0.5).Mul(decimal.NewFromInt(int64(i))))
		if s.IsInteger() {
			sizes = append(sizes, s.StringFixed(0))
		} else {
			sizes = append(sizes, s.StringFixed(1))
		}
	}
	return sizes
}

// QuantityOption labels the half-pair quantities offered in the wizard.
type QuantityOption struct {
	Value string
	Label string
}

var QuantityOptions = []QuantityOption{
	{Value: "0.5", Label: "0,5 (Einzelschuh)"},
	{Value: "1", Label: "1 (Paar)"},
	{Value: "1.5", Label: "1,5"},
	{Value: "2", Label: "2 (Paare)"},
	{Value: "2.5", Label: "2,5"},
	{Value: "3", Label: "3 (Paare)"},
	{Value: "3.5", Label: "3,5"},
	{Value: "4", Label: "4 (Paare)"},
	{Value: "4.5", Label: "4,5"},
	{Value: "5", Label: "5 (Paare)"},
}
