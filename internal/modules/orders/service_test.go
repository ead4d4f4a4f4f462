package orders_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tompettersson/reparatur-formular/internal/modules/orders"
)

func validCustomer() orders.CustomerInput {
	return orders.CustomerInput{
		Salutation:   "Herr",
		FirstName:    "Max",
		LastName:     "Mustermann",
		Street:       "Kletterweg 1",
		Zip:          "80331",
		City:         "München",
		Phone:        "089123456",
		Email:        "max@example.com",
		DeliverySame: true,
		GDPRAccepted: true,
		AGBAccepted:  true,
	}
}

func validItem() orders.ItemInput {
	return orders.ItemInput{
		Quantity:     decimal.NewFromInt(1),
		Manufacturer: "La Sportiva",
		Model:        "Solution",
		Size:         "42",
		Sole:         "vibram_xs_grip",
		EdgeRubber:   "YES",
	}
}

func TestCreateInputValid(t *testing.T) {
	in := orders.CreateInput{Customer: validCustomer(), Items: []orders.ItemInput{validItem()}}
	assert.Nil(t, in.Validate())
}

func TestCreateInputRequiresConsents(t *testing.T) {
	c := validCustomer()
	c.GDPRAccepted = false
	c.AGBAccepted = false
	in := orders.CreateInput{Customer: c, Items: []orders.ItemInput{validItem()}}

	verr := in.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "gdprAccepted")
	assert.Contains(t, verr.Fields, "agbAccepted")
}

func TestCreateInputRequiresItems(t *testing.T) {
	in := orders.CreateInput{Customer: validCustomer()}
	verr := in.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "items")
}

func TestCreateInputQuantityMustBeHalfStep(t *testing.T) {
	it := validItem()
	it.Quantity = decimal.NewFromFloat(0.75)
	in := orders.CreateInput{Customer: validCustomer(), Items: []orders.ItemInput{it}}

	verr := in.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "items[0].quantity")
}

func TestCreateInputSoleRequiredUnlessDelegated(t *testing.T) {
	it := validItem()
	it.Sole = ""
	it.EdgeRubber = ""
	in := orders.CreateInput{Customer: validCustomer(), Items: []orders.ItemInput{it}}

	verr := in.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "items[0].sole")
	assert.Contains(t, verr.Fields, "items[0].edgeRubber")

	// "trust the professionals": both selections may stay blank
	it.DelegateToStaff = true
	in = orders.CreateInput{Customer: validCustomer(), Items: []orders.ItemInput{it}}
	assert.Nil(t, in.Validate())
}

func TestCreateInputDeliveryAddressRequiredWhenNotSame(t *testing.T) {
	c := validCustomer()
	c.DeliverySame = false
	in := orders.CreateInput{Customer: c, Items: []orders.ItemInput{validItem()}}

	verr := in.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "deliveryFirstName")

	name := "Erika"
	last := "Musterfrau"
	street := "Bergstraße 2"
	zip := "80333"
	city := "München"
	c.DeliveryFirstName = &name
	c.DeliveryLastName = &last
	c.DeliveryStreet = &street
	c.DeliveryZip = &zip
	c.DeliveryCity = &city
	in = orders.CreateInput{Customer: c, Items: []orders.ItemInput{validItem()}}
	assert.Nil(t, in.Validate())
}

func TestCreateInputRejectsBogusEdgeRubber(t *testing.T) {
	it := validItem()
	it.EdgeRubber = "MAYBE"
	in := orders.CreateInput{Customer: validCustomer(), Items: []orders.ItemInput{it}}

	verr := in.Validate()
	require.NotNil(t, verr)
	assert.Contains(t, verr.Fields, "items[0].edgeRubber")
}
