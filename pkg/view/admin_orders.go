package view

import (
	"github.com/tompettersson/reparatur-formular/internal/modules/orders"
	"github.com/tompettersson/reparatur-formular/internal/modules/pricing"
)

type AdminOrderListItem struct {
	ID          string `json:"id"`
	OrderNumber string `json:"orderNumber"`
	Status      string `json:"status"`
	StatusLabel string `json:"statusLabel"`
	Customer    string `json:"customer"`
	Email       string `json:"email"`
	ItemCount   int    `json:"itemCount"`
	Total       string `json:"total"`
	CreatedAt   string `json:"createdAt"`
}

type AdminOrdersPage struct {
	Items      []AdminOrderListItem `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"totalPages"`
}

func AdminList(res orders.AdminListResult, page, pageSize int) AdminOrdersPage {
	out := AdminOrdersPage{
		Items: make([]AdminOrderListItem, 0, len(res.Items)),
		Total: res.Total,
		Page:  page,
	}
	out.TotalPages = int((res.Total + int64(pageSize) - 1) / int64(pageSize))
	for _, li := range res.Items {
		o := li.Order
		out.Items = append(out.Items, AdminOrderListItem{
			ID:          o.ID,
			OrderNumber: o.Number(),
			Status:      string(o.Status),
			StatusLabel: o.Status.Label(),
			Customer:    o.FirstName + " " + o.LastName,
			Email:       o.Email,
			ItemCount:   li.ItemCount,
			Total:       pricing.FormatEUR(o.TotalPrice),
			CreatedAt:   o.CreatedAt.Format(timeFormat),
		})
	}
	return out
}

// AdminOrderDetail is the full admin view of one order, including address
// data, internal notes and both audit trails.
type AdminOrderDetail struct {
	OrderSummary
	Salutation string `json:"salutation"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Street     string `json:"street"`
	Zip        string `json:"zip"`
	City       string `json:"city"`
	Phone      string `json:"phone"`
	Email      string `json:"email"`

	DeliverySame    bool             `json:"deliverySame"`
	DeliveryAddress *DeliveryAddress `json:"deliveryAddress,omitempty"`

	StationNotes string `json:"stationNotes,omitempty"`
	Newsletter   bool   `json:"newsletter"`

	Editable     bool     `json:"editable"`
	NextStatuses []string `json:"nextStatuses"`

	StatusHistory []StatusChange `json:"statusHistory"`
	FieldHistory  []FieldChange  `json:"fieldHistory"`
}

type DeliveryAddress struct {
	Salutation string `json:"salutation,omitempty"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Street     string `json:"street"`
	Zip        string `json:"zip"`
	City       string `json:"city"`
}

type StatusChange struct {
	From            string `json:"from"`
	To              string `json:"to"`
	ToLabel         string `json:"toLabel"`
	Comment         string `json:"comment,omitempty"`
	TrackingCarrier string `json:"trackingCarrier,omitempty"`
	TrackingNumber  string `json:"trackingNumber,omitempty"`
	ChangedBy       string `json:"changedBy"`
	ChangedAt       string `json:"changedAt"`
}

type FieldChange struct {
	Field     string `json:"field"`
	OldValue  string `json:"oldValue,omitempty"`
	NewValue  string `json:"newValue,omitempty"`
	ChangedBy string `json:"changedBy"`
	ChangedAt string `json:"changedAt"`
}

func AdminDetail(d orders.Detail) AdminOrderDetail {
	o := d.Order

	next := o.Status.NextStatuses()
	nextStr := make([]string, len(next))
	for i, s := range next {
		nextStr[i] = string(s)
	}

	out := AdminOrderDetail{
		OrderSummary: Summary(o, d.Items),
		Salutation:   o.Salutation,
		FirstName:    o.FirstName,
		LastName:     o.LastName,
		Street:       o.Street,
		Zip:          o.Zip,
		City:         o.City,
		Phone:        o.Phone,
		Email:        o.Email,
		DeliverySame: o.DeliverySame,
		StationNotes: deref(o.StationNotes),
		Newsletter:   o.Newsletter,
		Editable:     o.Status.Editable(),
		NextStatuses: nextStr,
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

	for _, sc := range d.StatusChanges {
		out.StatusHistory = append(out.StatusHistory, StatusChange{
			From:            string(sc.FromStatus),
			To:              string(sc.ToStatus),
			ToLabel:         sc.ToStatus.Label(),
			Comment:         deref(sc.Comment),
			TrackingCarrier: deref(sc.TrackingCarrier),
			TrackingNumber:  deref(sc.TrackingNumber),
			ChangedBy:       sc.ChangedBy,
			ChangedAt:       sc.ChangedAt.Format(timeFormat),
		})
	}
	for _, fc := range d.FieldChanges {
		out.FieldHistory = append(out.FieldHistory, FieldChange{
			Field:     fc.Field,
			OldValue:  deref(fc.OldValue),
			NewValue:  deref(fc.NewValue),
			ChangedBy: fc.ChangedBy,
			ChangedAt: fc.ChangedAt.Format(timeFormat),
		})
	}
	return out
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
