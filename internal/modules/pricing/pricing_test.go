package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tompettersson/reparatur-formular/internal/modules/pricing"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func baseItem() pricing.ItemInput {
	return pricing.ItemInput{
		Quantity:   d("1"),
		Sole:       pricing.SoleVibramXSGrip,
		EdgeRubber: pricing.EdgeRubberYes,
		Closure:    true,
	}
}

func TestItemPriceFullPair(t *testing.T) {
	// 32 sole + 19 edge rubber + 20 closure, one pair
	got := pricing.ItemPrice(pricing.RulesetCurrent, baseItem())
	assert.True(t, got.Equal(d("71.00")), "got %s", got)
}

func TestItemPriceSingleShoeHalvesEverything(t *testing.T) {
	it := baseItem()
	it.Quantity = d("0.5")
	got := pricing.ItemPrice(pricing.RulesetCurrent, it)
	assert.True(t, got.Equal(d("35.50")), "got %s", got)
}

func TestItemPriceDeterministic(t *testing.T) {
	it := baseItem()
	it.Disinfection = true
	first := pricing.ItemPrice(pricing.RulesetCurrent, it)
	for i := 0; i < 10; i++ {
		assert.True(t, first.Equal(pricing.ItemPrice(pricing.RulesetCurrent, it)))
	}
}

func TestItemPriceLinearInQuantity(t *testing.T) {
	unit := baseItem()
	unit.Quantity = d("1")
	unitPrice := pricing.ItemPrice(pricing.RulesetCurrent, unit)

	for _, q := range []string{"0.5", "1", "1.5", "2", "2.5", "3", "5", "10"} {
		it := baseItem()
		it.Quantity = d(q)
		got := pricing.ItemPrice(pricing.RulesetCurrent, it)
		want := unitPrice.Mul(d(q)).Round(2)
		assert.True(t, got.Equal(want), "q=%s got %s want %s", q, got, want)
	}
}

func TestEdgeRubberNoAndDiscretionPriceTheSame(t *testing.T) {
	no := baseItem()
	no.EdgeRubber = pricing.EdgeRubberNo
	disc := baseItem()
	disc.EdgeRubber = pricing.EdgeRubberDiscretion

	assert.True(t, pricing.ItemPrice(pricing.RulesetCurrent, no).
		Equal(pricing.ItemPrice(pricing.RulesetCurrent, disc)))
}

func TestUnknownOrBlankSoleContributesZero(t *testing.T) {
	it := pricing.ItemInput{
		Quantity:        d("1"),
		Sole:            "",
		EdgeRubber:      pricing.EdgeRubberYes,
		Closure:         false,
		Disinfection:    true,
		DelegateToStaff: true,
	}
	// only edge rubber 19 + disinfection 3
	got := pricing.ItemPrice(pricing.RulesetCurrent, it)
	assert.True(t, got.Equal(d("22.00")), "got %s", got)

	it.Sole = "no_such_compound"
	again := pricing.ItemPrice(pricing.RulesetCurrent, it)
	assert.True(t, got.Equal(again))
}

func TestOriginalResoleVariantsHaveOwnTableEntry(t *testing.T) {
	it := pricing.ItemInput{
		Quantity:   d("1"),
		Sole:       pricing.SoleOrigLaSportiva,
		EdgeRubber: pricing.EdgeRubberNo,
	}
	got := pricing.ItemPrice(pricing.RulesetCurrent, it)
	assert.True(t, got.Equal(d("41.00")), "got %s", got)
}

func TestDelegateFlagNeverAffectsPrice(t *testing.T) {
	it := baseItem()
	withFlag := it
	withFlag.DelegateToStaff = true
	assert.True(t, pricing.ItemPrice(pricing.RulesetCurrent, it).
		Equal(pricing.ItemPrice(pricing.RulesetCurrent, withFlag)))
}

func TestLegacyRulesetAdditionalWorkSurcharge(t *testing.T) {
	it := pricing.ItemInput{
		Quantity:          d("1"),
		Sole:              pricing.SoleStealthC4,
		EdgeRubber:        pricing.EdgeRubberNo,
		HasAdditionalWork: true,
	}
	got := pricing.ItemPrice(pricing.RulesetLegacy, it)
	assert.True(t, got.Equal(d("37.00")), "got %s", got)

	// the legacy ruleset never prices disinfection
	it.HasAdditionalWork = false
	it.Disinfection = true
	got = pricing.ItemPrice(pricing.RulesetLegacy, it)
	assert.True(t, got.Equal(d("32.00")), "got %s", got)
}

func TestTotalSumsRoundedLineAmounts(t *testing.T) {
	full := baseItem()
	half := baseItem()
	half.Quantity = d("0.5")

	total := pricing.Total(pricing.RulesetCurrent, []pricing.ItemInput{full, half})
	assert.True(t, total.Equal(d("106.50")), "got %s", total)
}

func TestValidQuantity(t *testing.T) {
	for _, q := range []string{"0.5", "1", "1.5", "5", "9.5", "10"} {
		assert.True(t, pricing.ValidQuantity(d(q)), "q=%s", q)
	}
	for _, q := range []string{"0", "-1", "0.25", "0.75", "10.5", "3.3"} {
		assert.False(t, pricing.ValidQuantity(d(q)), "q=%s", q)
	}
}

func TestByName(t *testing.T) {
	require.Equal(t, "legacy", pricing.ByName("legacy").Name)
	require.Equal(t, "current", pricing.ByName("current").Name)
	require.Equal(t, "current", pricing.ByName("").Name)
}
