package orders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tompettersson/reparatur-formular/internal/modules/pricing"
)

// AdminService executes staff-side order mutations: status transitions and
// order edits, both with their audit trails.
type AdminService struct {
	db       *gorm.DB
	ruleset  pricing.Ruleset
	notifier Notifier
	logger   *slog.Logger
}

func NewAdminService(db *gorm.DB, ruleset pricing.Ruleset, notifier Notifier, logger *slog.Logger) *AdminService {
	return &AdminService{db: db, ruleset: ruleset, notifier: notifier, logger: logger}
}

type TransitionInput struct {
	OrderID string
	Actor   string // staff email
	Target  Status
	Comment string

	// Only stored when Target is SHIPPED; silently discarded otherwise.
	TrackingCarrier string
	TrackingNumber  string
}

// Transition moves an order to a new status. The status update and the
// history record are written in one transaction; a row lock plus an
// optimistic status guard serialize racing requests, so the loser re-reads
// a changed current status and is rejected by the transition table.
func (s *AdminService) Transition(ctx context.Context, in TransitionInput) (Order, error) {
	if in.Actor == "" {
		return Order{}, ErrNoActor
	}

	var o Order
	var change OrderStatusChange

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, "id = ?", in.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}

		from := o.Status
		if !from.CanTransition(in.Target) {
			return ErrInvalidTransition
		}

		now := time.Now()
		res := tx.WithContext(ctx).
			Model(&Order{}).
			Where("id = ? AND status = ?", o.ID, from). // optimistic guard
			Updates(map[string]any{
				"status":     in.Target,
				"updated_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return ErrInvalidTransition
		}

		change = OrderStatusChange{
			ID:         uuid.NewString(),
			OrderID:    o.ID,
			FromStatus: from,
			ToStatus:   in.Target,
			Comment:    optional(in.Comment),
			ChangedBy:  in.Actor,
			ChangedAt:  now,
		}
		if in.Target == StatusShipped {
			change.TrackingCarrier = optional(in.TrackingCarrier)
			change.TrackingNumber = optional(in.TrackingNumber)
		}
		if err := tx.WithContext(ctx).Create(&change).Error; err != nil {
			return err
		}

		o.Status = in.Target
		o.UpdatedAt = now
		return nil
	})
	if err != nil {
		return Order{}, err
	}

	if s.notifier != nil && in.Target.NotifiesCustomer() {
		go func(o Order, ch OrderStatusChange) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.notifier.StatusChanged(ctx, o, ch); err != nil {
				s.logger.Error("status update mail failed",
					slog.String("order_id", o.ID),
					slog.String("to_status", string(ch.ToStatus)),
					slog.Any("err", err))
			}
		}(o, change)
	}

	return o, nil
}

type EditItem struct {
	ID string
	ItemInput
}

type UpdateInput struct {
	OrderID  string
	Actor    string
	Customer CustomerInput
	Items    []EditItem
}

// Update edits customer data and line items of a non-terminal order. Every
// actually-changed field produces one OrderFieldChange record; item prices
// and the order total are recomputed with the active ruleset. All writes
// happen in one transaction.
func (s *AdminService) Update(ctx context.Context, in UpdateInput) (Order, error) {
	if in.Actor == "" {
		return Order{}, ErrNoActor
	}

	items := make([]ItemInput, len(in.Items))
	for i, it := range in.Items {
		items[i] = it.ItemInput
	}
	if verr := (CreateInput{Customer: in.Customer, Items: items}).Validate(); verr != nil {
		return Order{}, verr
	}

	var updated Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o Order
		if err := tx.WithContext(ctx).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&o, "id = ?", in.OrderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrOrderNotFound
			}
			return err
		}
		if !o.Status.Editable() {
			return ErrNotEditable
		}

		var current []OrderItem
		if err := tx.WithContext(ctx).
			Order("created_at ASC").
			Find(&current, "order_id = ?", o.ID).Error; err != nil {
			return err
		}
		byID := make(map[string]OrderItem, len(current))
		for _, it := range current {
			byID[it.ID] = it
		}

		now := time.Now()
		history := customerDiff(o, in.Customer, in.Actor, now)

		total := decimal.Zero
		changedItems := false
		for _, it := range in.Items {
			old, ok := byID[it.ID]
			if !ok || old.OrderID != o.ID {
				return fmt.Errorf("item %s does not belong to order %s", it.ID, o.ID)
			}
			price := pricing.ItemPrice(s.ruleset, it.priceInput())
			total = total.Add(price)

			if !itemEqual(old, it, price) {
				changedItems = true
			}

			if err := tx.WithContext(ctx).
				Model(&OrderItem{}).
				Where("id = ?", it.ID).
				Updates(map[string]any{
					"quantity":            it.Quantity,
					"manufacturer":        it.Manufacturer,
					"model":               it.Model,
					"color":               it.Color,
					"size":                it.Size,
					"sole":                it.Sole,
					"edge_rubber":         it.EdgeRubber,
					"closure":             it.Closure,
					"disinfection":        it.Disinfection,
					"trust_professionals": it.DelegateToStaff,
					"additional_work":     it.AdditionalWork,
					"internal_notes":      it.InternalNotes,
					"photo_url":           it.PhotoURL,
					"calculated_price":    price,
				}).Error; err != nil {
				return err
			}
		}

		if changedItems {
			oldSnap := itemsSnapshot(current)
			newSnap := editSnapshot(s.ruleset, in.Items)
			history = append(history, OrderFieldChange{
				ID:        uuid.NewString(),
				OrderID:   o.ID,
				Field:     "items",
				OldValue:  &oldSnap,
				NewValue:  &newSnap,
				ChangedBy: in.Actor,
				ChangedAt: now,
			})
		}

		updates := customerUpdates(in.Customer)
		updates["total_price"] = total
		updates["updated_at"] = now
		if err := tx.WithContext(ctx).
			Model(&Order{}).
			Where("id = ?", o.ID).
			Updates(updates).Error; err != nil {
			return err
		}

		if len(history) > 0 {
			if err := tx.WithContext(ctx).Create(&history).Error; err != nil {
				return err
			}
		}

		if err := tx.WithContext(ctx).First(&updated, "id = ?", o.ID).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return Order{}, err
	}
	return updated, nil
}

// customerDiff compares the stored customer fields against the edit payload
// and returns one history record per field that actually differs.
func customerDiff(o Order, c CustomerInput, actor string, now time.Time) []OrderFieldChange {
	type cmp struct {
		field    string
		old, new string
	}
	pairs := []cmp{
		{"salutation", o.Salutation, c.Salutation},
		{"firstName", o.FirstName, c.FirstName},
		{"lastName", o.LastName, c.LastName},
		{"street", o.Street, c.Street},
		{"zip", o.Zip, c.Zip},
		{"city", o.City, c.City},
		{"phone", o.Phone, c.Phone},
		{"email", o.Email, c.Email},
		{"deliverySame", strconv.FormatBool(o.DeliverySame), strconv.FormatBool(c.DeliverySame)},
		{"deliverySalutation", strVal(o.DeliverySalutation), strVal(c.DeliverySalutation)},
		{"deliveryFirstName", strVal(o.DeliveryFirstName), strVal(c.DeliveryFirstName)},
		{"deliveryLastName", strVal(o.DeliveryLastName), strVal(c.DeliveryLastName)},
		{"deliveryStreet", strVal(o.DeliveryStreet), strVal(c.DeliveryStreet)},
		{"deliveryZip", strVal(o.DeliveryZip), strVal(c.DeliveryZip)},
		{"deliveryCity", strVal(o.DeliveryCity), strVal(c.DeliveryCity)},
		{"stationNotes", strVal(o.StationNotes), strVal(c.StationNotes)},
	}

	var out []OrderFieldChange
	for _, p := range pairs {
		if p.old == p.new {
			continue
		}
		oldV, newV := p.old, p.new
		out = append(out, OrderFieldChange{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			Field:     p.field,
			OldValue:  &oldV,
			NewValue:  &newV,
			ChangedBy: actor,
			ChangedAt: now,
		})
	}
	return out
}

func customerUpdates(c CustomerInput) map[string]any {
	return map[string]any{
		"salutation":          c.Salutation,
		"first_name":          c.FirstName,
		"last_name":           c.LastName,
		"street":              c.Street,
		"zip":                 c.Zip,
		"city":                c.City,
		"phone":               c.Phone,
		"email":               c.Email,
		"delivery_same":       c.DeliverySame,
		"delivery_salutation": c.DeliverySalutation,
		"delivery_first_name": c.DeliveryFirstName,
		"delivery_last_name":  c.DeliveryLastName,
		"delivery_street":     c.DeliveryStreet,
		"delivery_zip":        c.DeliveryZip,
		"delivery_city":       c.DeliveryCity,
		"station_notes":       c.StationNotes,
	}
}

func itemEqual(old OrderItem, edit EditItem, newPrice decimal.Decimal) bool {
	return old.Quantity.Equal(edit.Quantity) &&
		old.Manufacturer == edit.Manufacturer &&
		old.Model == edit.Model &&
		old.Color == edit.Color &&
		old.Size == edit.Size &&
		old.Sole == edit.Sole &&
		old.EdgeRubber == edit.EdgeRubber &&
		old.Closure == edit.Closure &&
		old.Disinfection == edit.Disinfection &&
		old.DelegateToStaff == edit.DelegateToStaff &&
		strVal(old.AdditionalWork) == strVal(edit.AdditionalWork) &&
		strVal(old.InternalNotes) == strVal(edit.InternalNotes) &&
		strVal(old.PhotoURL) == strVal(edit.PhotoURL) &&
		old.CalculatedPrice.Equal(newPrice)
}

type itemSnapshot struct {
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	Quantity     string `json:"quantity"`
	Price        string `json:"calculatedPrice"`
}

func itemsSnapshot(items []OrderItem) string {
	snaps := make([]itemSnapshot, len(items))
	for i, it := range items {
		snaps[i] = itemSnapshot{
			Manufacturer: it.Manufacturer,
			Model:        it.Model,
			Quantity:     it.Quantity.String(),
			Price:        it.CalculatedPrice.StringFixed(2),
		}
	}
	b, _ := json.Marshal(snaps)
	return string(b)
}

func editSnapshot(rs pricing.Ruleset, items []EditItem) string {
	snaps := make([]itemSnapshot, len(items))
	for i, it := range items {
		snaps[i] = itemSnapshot{
			Manufacturer: it.Manufacturer,
			Model:        it.Model,
			Quantity:     it.Quantity.String(),
			Price:        pricing.ItemPrice(rs, it.priceInput()).StringFixed(2),
		}
	}
	b, _ := json.Marshal(snaps)
	return string(b)
}

func optional(s string) *string {
	t := strings.TrimSpace(s)
	if t == "" {
		return nil
	}
	return &t
}
