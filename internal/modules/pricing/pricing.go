package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// SoleType identifies a resurfacing compound from the fixed catalog.
type SoleType string

const (
	SoleVibramXSGrip   SoleType = "vibram_xs_grip"
	SoleVibramXSGrip2  SoleType = "vibram_xs_grip_2"
	SoleVibramXSEdge   SoleType = "vibram_xs_edge"
	SoleStealthC4      SoleType = "stealth_c4"
	SoleStealthHF      SoleType = "stealth_hf"
	SoleBoreal         SoleType = "boreal"
	SoleOrigLaSportiva SoleType = "original_la_sportiva"
	SoleOrigScarpa     SoleType = "original_scarpa"
)

type SoleInfo struct {
	Price     decimal.Decimal
	Thickness string
	Label     string
}

// SolePrices is the fixed sole price table. Unknown or blank sole types
// contribute zero (the customer delegated the choice to staff).
var SolePrices = map[SoleType]SoleInfo{
	SoleVibramXSGrip:   {Price: eur(32), Thickness: "4mm", Label: "Vibram XS Grip"},
	SoleVibramXSGrip2:  {Price: eur(32), Thickness: "4mm", Label: "Vibram XS Grip 2"},
	SoleVibramXSEdge:   {Price: eur(32), Thickness: "4mm", Label: "Vibram XS Edge"},
	SoleStealthC4:      {Price: eur(32), Thickness: "4mm", Label: "Stealth C4"},
	SoleStealthHF:      {Price: eur(32), Thickness: "4mm", Label: "Stealth HF"},
	SoleBoreal:         {Price: eur(32), Thickness: "4mm", Label: "Boreal"},
	SoleOrigLaSportiva: {Price: eur(41), Thickness: "variabel", Label: "Original La Sportiva"},
	SoleOrigScarpa:     {Price: eur(41), Thickness: "variabel", Label: "Original Scarpa"},
}

// EdgeRubberOption is the customer's decision on replacing the edge rubber.
type EdgeRubberOption string

const (
	EdgeRubberYes        EdgeRubberOption = "YES"
	EdgeRubberNo         EdgeRubberOption = "NO"
	EdgeRubberDiscretion EdgeRubberOption = "DISCRETION" // staff decides; priced at zero until resolved
)

func ValidEdgeRubber(v EdgeRubberOption) bool {
	switch v {
	case EdgeRubberYes, EdgeRubberNo, EdgeRubberDiscretion:
		return true
	}
	return false
}

// Ruleset is one versioned surcharge policy. Exactly one ruleset is active
// for new orders; the legacy one stays around for repricing historical orders.
type Ruleset struct {
	Name string

	EdgeRubber decimal.Decimal
	// Closure is a per-pair price. It is added once to the per-unit sum and
	// therefore still multiplied by quantity, so a single shoe (0.5) is
	// charged half the closure surcharge.
	Closure decimal.Decimal

	// Disinfection applies only in the current ruleset.
	Disinfection decimal.Decimal
	// AdditionalWork is a flat surcharge when the item carries free-text
	// additional work. Legacy ruleset only, mutually exclusive with
	// Disinfection.
	AdditionalWork decimal.Decimal
}

var (
	// RulesetCurrent prices disinfection explicitly and supports the
	// "trust the professionals" flag on intake.
	RulesetCurrent = Ruleset{
		Name:         "current",
		EdgeRubber:   eur(19),
		Closure:      eur(20),
		Disinfection: eur(3),
	}

	// RulesetLegacy applied a flat surcharge whenever free-text additional
	// work was present instead of pricing disinfection.
	RulesetLegacy = Ruleset{
		Name:           "legacy",
		EdgeRubber:     eur(19),
		Closure:        eur(20),
		AdditionalWork: eur(5),
	}
)

// ByName resolves a configured ruleset name, defaulting to the current one.
func ByName(name string) Ruleset {
	if strings.EqualFold(name, RulesetLegacy.Name) {
		return RulesetLegacy
	}
	return RulesetCurrent
}

// ItemInput carries the option selections of one repair position.
type ItemInput struct {
	Quantity   decimal.Decimal // halves: 0.5 = single shoe, 1 = pair
	Sole       SoleType        // blank when delegated to staff
	EdgeRubber EdgeRubberOption
	Closure    bool

	Disinfection      bool // current ruleset
	HasAdditionalWork bool // legacy ruleset
	DelegateToStaff   bool // validation only, never affects the price
}

// ItemPrice computes the estimate for one position. Pure: no state, no
// clock, no locale. Unknown or blank sole types contribute zero. The
// per-unit sum is multiplied by quantity and rounded to cents at the line
// level, so order totals are sums of already-rounded line amounts.
func ItemPrice(rs Ruleset, in ItemInput) decimal.Decimal {
	price := decimal.Zero

	if in.Sole != "" {
		if info, ok := SolePrices[in.Sole]; ok {
			price = price.Add(info.Price)
		}
	}

	if in.EdgeRubber == EdgeRubberYes {
		price = price.Add(rs.EdgeRubber)
	}

	if in.Closure {
		price = price.Add(rs.Closure)
	}

	if in.Disinfection {
		price = price.Add(rs.Disinfection)
	}
	if in.HasAdditionalWork {
		price = price.Add(rs.AdditionalWork)
	}

	return price.Mul(in.Quantity).Round(2)
}

// Total sums line-item prices. No order-level discounts, taxes or shipping.
func Total(rs Ruleset, items []ItemInput) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(ItemPrice(rs, it))
	}
	return total
}

// MaxQuantity bounds one position to ten pairs.
var MaxQuantity = decimal.NewFromInt(10)

// ValidQuantity reports whether q is a positive multiple of 0.5 up to
// MaxQuantity. Callers validate before pricing; ItemPrice itself does not.
func ValidQuantity(q decimal.Decimal) bool {
	if q.LessThanOrEqual(decimal.Zero) || q.GreaterThan(MaxQuantity) {
		return false
	}
	return q.Mul(decimal.NewFromInt(2)).IsInteger()
}

// FormatEUR renders an amount the German way: "71,00 €". Display only;
// the engine itself never formats.
func FormatEUR(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1) + " €"
}

func eur(units int64) decimal.Decimal { return decimal.NewFromInt(units) }
