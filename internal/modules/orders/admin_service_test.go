package orders

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedOrder() Order {
	notes := "Station 3"
	return Order{
		ID:           "o-1",
		Salutation:   "Herr",
		FirstName:    "Max",
		LastName:     "Mustermann",
		Street:       "Bergweg 1",
		Zip:          "80331",
		City:         "München",
		Phone:        "089 123456",
		Email:        "max@example.com",
		DeliverySame: true,
		StationNotes: &notes,
	}
}

func editedCustomer() CustomerInput {
	o := storedOrder()
	notes := "Station 3"
	return CustomerInput{
		Salutation:   o.Salutation,
		FirstName:    o.FirstName,
		LastName:     o.LastName,
		Street:       o.Street,
		Zip:          o.Zip,
		City:         o.City,
		Phone:        o.Phone,
		Email:        o.Email,
		DeliverySame: true,
		StationNotes: &notes,
	}
}

func TestCustomerDiffNoChanges(t *testing.T) {
	diff := customerDiff(storedOrder(), editedCustomer(), "staff@example.com", time.Now())
	assert.Empty(t, diff)
}

func TestCustomerDiffRecordsOnlyChangedFields(t *testing.T) {
	edit := editedCustomer()
	edit.Street = "Talweg 2"
	edit.Phone = "089 654321"

	now := time.Now()
	diff := customerDiff(storedOrder(), edit, "staff@example.com", now)
	require.Len(t, diff, 2)

	byField := map[string]OrderFieldChange{}
	for _, c := range diff {
		byField[c.Field] = c
	}
	require.Contains(t, byField, "street")
	assert.Equal(t, "Bergweg 1", *byField["street"].OldValue)
	assert.Equal(t, "Talweg 2", *byField["street"].NewValue)
	assert.Equal(t, "staff@example.com", byField["street"].ChangedBy)
	require.Contains(t, byField, "phone")
}

func baseItem() OrderItem {
	return OrderItem{
		ID:              "i-1",
		OrderID:         "o-1",
		Quantity:        decimal.NewFromInt(1),
		Manufacturer:    "La Sportiva",
		Model:           "Solution",
		Size:            "42",
		Sole:            "vibram_xs_grip",
		EdgeRubber:      "YES",
		CalculatedPrice: decimal.RequireFromString("51.00"),
	}
}

func baseEdit() EditItem {
	it := baseItem()
	return EditItem{
		ID: it.ID,
		ItemInput: ItemInput{
			Quantity:     it.Quantity,
			Manufacturer: it.Manufacturer,
			Model:        it.Model,
			Size:         it.Size,
			Sole:         it.Sole,
			EdgeRubber:   it.EdgeRubber,
		},
	}
}

func TestItemEqual(t *testing.T) {
	assert.True(t, itemEqual(baseItem(), baseEdit(), decimal.RequireFromString("51.00")))

	edit := baseEdit()
	edit.Sole = "stealth_c4"
	assert.False(t, itemEqual(baseItem(), edit, decimal.RequireFromString("51.00")))

	// same fields but a price shift (ruleset change) still counts as changed
	assert.False(t, itemEqual(baseItem(), baseEdit(), decimal.RequireFromString("54.00")))
}

func TestItemsSnapshotIsStableJSON(t *testing.T) {
	snap := itemsSnapshot([]OrderItem{baseItem()})
	assert.JSONEq(t, `[{
		"manufacturer": "La Sportiva",
		"model": "Solution",
		"quantity": "1",
		"calculatedPrice": "51.00"
	}]`, snap)
}
