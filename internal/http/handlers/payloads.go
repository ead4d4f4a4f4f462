package handlers

import (
	"github.com/shopspring/decimal"

	"github.com/tompettersson/reparatur-formular/internal/modules/orders"
)

// CustomerPayload is the customer block of the intake form. Shared with the
// admin edit endpoint, which binds the same shape.
type CustomerPayload struct {
	Salutation string `json:"salutation" binding:"required"`
	FirstName  string `json:"firstName" binding:"required"`
	LastName   string `json:"lastName" binding:"required"`
	Street     string `json:"street" binding:"required"`
	Zip        string `json:"zip" binding:"required"`
	City       string `json:"city" binding:"required"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email" binding:"required,email"`

	DeliverySame       bool    `json:"deliverySame"`
	DeliverySalutation *string `json:"deliverySalutation"`
	DeliveryFirstName  *string `json:"deliveryFirstName"`
	DeliveryLastName   *string `json:"deliveryLastName"`
	DeliveryStreet     *string `json:"deliveryStreet"`
	DeliveryZip        *string `json:"deliveryZip"`
	DeliveryCity       *string `json:"deliveryCity"`

	StationNotes *string `json:"stationNotes"`

	GDPRAccepted bool `json:"gdprAccepted"`
	AGBAccepted  bool `json:"agbAccepted"`
	Newsletter   bool `json:"newsletter"`
}

func (p CustomerPayload) Input() orders.CustomerInput {
	return orders.CustomerInput{
		Salutation:         p.Salutation,
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Street:             p.Street,
		Zip:                p.Zip,
		City:               p.City,
		Phone:              p.Phone,
		Email:              p.Email,
		DeliverySame:       p.DeliverySame,
		DeliverySalutation: p.DeliverySalutation,
		DeliveryFirstName:  p.DeliveryFirstName,
		DeliveryLastName:   p.DeliveryLastName,
		DeliveryStreet:     p.DeliveryStreet,
		DeliveryZip:        p.DeliveryZip,
		DeliveryCity:       p.DeliveryCity,
		StationNotes:       p.StationNotes,
		GDPRAccepted:       p.GDPRAccepted,
		AGBAccepted:        p.AGBAccepted,
		Newsletter:         p.Newsletter,
	}
}

// ItemPayload is one repair position. Sole and edge rubber may be blank when
// the customer delegates the decision; the service validates that.
type ItemPayload struct {
	Quantity     decimal.Decimal `json:"quantity" binding:"required"`
	Manufacturer string          `json:"manufacturer" binding:"required"`
	Model        string          `json:"model" binding:"required"`
	Color        string          `json:"color"`
	Size         string          `json:"size" binding:"required"`

	Sole            string  `json:"sole"`
	EdgeRubber      string  `json:"edgeRubber"`
	Closure         bool    `json:"closure"`
	Disinfection    bool    `json:"disinfection"`
	DelegateToStaff bool    `json:"delegateToStaff"`
	AdditionalWork  *string `json:"additionalWork"`
	InternalNotes   *string `json:"internalNotes"`
	PhotoURL        *string `json:"photoUrl"`
}

func (p ItemPayload) Input() orders.ItemInput {
	return orders.ItemInput{
		Quantity:        p.Quantity,
		Manufacturer:    p.Manufacturer,
		Model:           p.Model,
		Color:           p.Color,
		Size:            p.Size,
		Sole:            p.Sole,
		EdgeRubber:      p.EdgeRubber,
		Closure:         p.Closure,
		Disinfection:    p.Disinfection,
		DelegateToStaff: p.DelegateToStaff,
		AdditionalWork:  p.AdditionalWork,
		InternalNotes:   p.InternalNotes,
		PhotoURL:        p.PhotoURL,
	}
}
