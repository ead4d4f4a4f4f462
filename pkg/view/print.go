package view

import (
	"github.com/tompettersson/reparatur-formular/internal/modules/orders"
	"github.com/tompettersson/reparatur-formular/internal/modules/pricing"
)

// PrintTicket is the data behind the workshop ticket that travels with the
// shoes. Layout is the frontend's job.
type PrintTicket struct {
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"statusLabel"`
	CreatedAt   string `json:"createdAt"`

	Customer        string           `json:"customer"`
	Phone           string           `json:"phone"`
	Email           string           `json:"email"`
	Address         string           `json:"address"`
	DeliveryAddress *DeliveryAddress `json:"deliveryAddress,omitempty"`
	StationNotes    string           `json:"stationNotes,omitempty"`

	Items []PrintItem `json:"items"`
	Total string      `json:"total"`
}

// PrintItem includes the internal fields the customer never sees.
type PrintItem struct {
	OrderItem
	AdditionalWork string `json:"additionalWork,omitempty"`
	InternalNotes  string `json:"internalNotes,omitempty"`
}

func Print(d orders.Detail) PrintTicket {
	o := d.Order
	out := PrintTicket{
		OrderNumber:  o.Number(),
		Status:       o.Status.Label(),
		CreatedAt:    o.CreatedAt.Format(timeFormat),
		Customer:     o.Salutation + " " + o.FirstName + " " + o.LastName,
		Phone:        o.Phone,
		Email:        o.Email,
		Address:      o.Street + ", " + o.Zip + " " + o.City,
		StationNotes: deref(o.StationNotes),
		Total:        pricing.FormatEUR(o.TotalPrice),
	}
	if !o.DeliverySame {
		out.DeliveryAddress = &DeliveryAddress{
			Salutation: deref(o.DeliverySalutation),
			FirstName:  deref(o.DeliveryFirstName),
			LastName:   deref(o.DeliveryLastName),
			Street:     deref(o.DeliveryStreet),
			Zip:        deref(o.DeliveryZip),
			City:       deref(o.DeliveryCity),
		}
	}
	for _, it := range d.Items {
		out.Items = append(out.Items, PrintItem{
			OrderItem:      Item(it),
			AdditionalWork: deref(it.AdditionalWork),
			InternalNotes:  deref(it.InternalNotes),
		})
	}
	return out
}
