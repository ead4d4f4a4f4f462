package orders

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/tompettersson/reparatur-formular/internal/modules/pricing"
)

// Notifier sends customer-facing mails. Dispatch failures are logged by the
// caller and never fail the triggering action.
type Notifier interface {
	OrderConfirmation(ctx context.Context, o Order, items []OrderItem) error
	StatusChanged(ctx context.Context, o Order, change OrderStatusChange) error
}

// ValidationError carries field-level messages for the intake form.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("order validation failed (%d fields)", len(e.Fields))
}

// Service handles customer-side order intake.
type Service struct {
	db       *gorm.DB
	ruleset  pricing.Ruleset
	notifier Notifier
	logger   *slog.Logger
}

func NewService(db *gorm.DB, ruleset pricing.Ruleset, notifier Notifier, logger *slog.Logger) *Service {
	return &Service{db: db, ruleset: ruleset, notifier: notifier, logger: logger}
}

type CustomerInput struct {
	Salutation string
	FirstName  string
	LastName   string
	Street     string
	Zip        string
	City       string
	Phone      string
	Email      string

	DeliverySame       bool
	DeliverySalutation *string
	DeliveryFirstName  *string
	DeliveryLastName   *string
	DeliveryStreet     *string
	DeliveryZip        *string
	DeliveryCity       *string

	StationNotes *string

	GDPRAccepted bool
	AGBAccepted  bool
	Newsletter   bool
}

type ItemInput struct {
	Quantity     decimal.Decimal
	Manufacturer string
	Model        string
	Color        string
	Size         string

	Sole            string
	EdgeRubber      string
	Closure         bool
	Disinfection    bool
	DelegateToStaff bool
	AdditionalWork  *string
	InternalNotes   *string
	PhotoURL        *string
}

type CreateInput struct {
	Customer CustomerInput
	Items    []ItemInput
}

// Validate enforces the domain invariants the form wizard promises: valid
// half-pair quantities, and sole/edge-rubber selections present unless the
// customer delegated the decision to staff.
func (in CreateInput) Validate() *ValidationError {
	fields := map[string]string{}

	if !in.Customer.GDPRAccepted {
		fields["gdprAccepted"] = "Bitte akzeptieren Sie die Datenschutzerklärung."
	}
	if !in.Customer.AGBAccepted {
		fields["agbAccepted"] = "Bitte akzeptieren Sie die AGB."
	}
	if !in.Customer.DeliverySame {
		if strVal(in.Customer.DeliveryFirstName) == "" ||
			strVal(in.Customer.DeliveryLastName) == "" ||
			strVal(in.Customer.DeliveryStreet) == "" ||
			strVal(in.Customer.DeliveryZip) == "" ||
			strVal(in.Customer.DeliveryCity) == "" {
			fields["deliveryFirstName"] = "Bitte füllen Sie die Lieferadresse vollständig aus."
		}
	}

	if len(in.Items) == 0 {
		fields["items"] = "Bitte fügen Sie mindestens einen Schuh hinzu."
	}
	for i, it := range in.Items {
		key := func(f string) string { return fmt.Sprintf("items[%d].%s", i, f) }

		if !pricing.ValidQuantity(it.Quantity) {
			fields[key("quantity")] = "Anzahl muss ein Vielfaches von 0,5 sein (max. 10)."
		}
		if !it.DelegateToStaff {
			if strings.TrimSpace(it.Sole) == "" {
				fields[key("sole")] = "Bitte wählen Sie eine Sohle."
			}
			if !pricing.ValidEdgeRubber(pricing.EdgeRubberOption(it.EdgeRubber)) {
				fields[key("edgeRubber")] = "Bitte treffen Sie eine Auswahl zum Randgummi."
			}
		} else if it.EdgeRubber != "" && !pricing.ValidEdgeRubber(pricing.EdgeRubberOption(it.EdgeRubber)) {
			fields[key("edgeRubber")] = "Ungültige Auswahl zum Randgummi."
		}
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Create validates the intake payload, prices every position with the
// active ruleset and persists order, items and total in one transaction.
// The order enters the workflow as SUBMITTED. The confirmation mail is
// dispatched after commit without blocking the request.
func (s *Service) Create(ctx context.Context, in CreateInput) (Order, error) {
	if verr := in.Validate(); verr != nil {
		return Order{}, verr
	}

	now := time.Now()
	order := newOrder(in.Customer, now)
	order.Status = StatusSubmitted

	items := make([]OrderItem, 0, len(in.Items))
	total := decimal.Zero
	for _, it := range in.Items {
		price := pricing.ItemPrice(s.ruleset, it.priceInput())
		total = total.Add(price)
		items = append(items, OrderItem{
			ID:              uuid.NewString(),
			OrderID:         order.ID,
			Quantity:        it.Quantity,
			Manufacturer:    it.Manufacturer,
			Model:           it.Model,
			Color:           it.Color,
			Size:            it.Size,
			Sole:            it.Sole,
			EdgeRubber:      it.EdgeRubber,
			Closure:         it.Closure,
			Disinfection:    it.Disinfection,
			DelegateToStaff: it.DelegateToStaff,
			AdditionalWork:  it.AdditionalWork,
			InternalNotes:   it.InternalNotes,
			PhotoURL:        it.PhotoURL,
			CalculatedPrice: price,
			CreatedAt:       now,
		})
	}
	order.TotalPrice = total

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := nextOrderNumber(ctx, tx, now)
		if err != nil {
			return err
		}
		order.OrderNumber = &number

		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return Order{}, err
	}

	if s.notifier != nil {
		go func(o Order, its []OrderItem) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := s.notifier.OrderConfirmation(ctx, o, its); err != nil {
				s.logger.Error("order confirmation mail failed",
					slog.String("order_id", o.ID),
					slog.String("order_number", o.Number()),
					slog.Any("err", err))
			}
		}(order, items)
	}

	return order, nil
}

// SaveDraft persists a partially filled form for session recovery. Only the
// email address is required; the raw wizard payload is kept alongside the
// customer fields and no mail is sent.
func (s *Service) SaveDraft(ctx context.Context, in CustomerInput, payload []byte) (Order, error) {
	if strings.TrimSpace(in.Email) == "" {
		return Order{}, &ValidationError{Fields: map[string]string{
			"email": "E-Mail-Adresse wird benötigt.",
		}}
	}

	now := time.Now()
	order := newOrder(in, now)
	order.Status = StatusDraft
	if len(payload) > 0 {
		order.DraftPayload = datatypes.JSON(payload)
	}

	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return Order{}, err
	}
	return order, nil
}

func newOrder(c CustomerInput, now time.Time) Order {
	return Order{
		ID:                 uuid.NewString(),
		Salutation:         c.Salutation,
		FirstName:          c.FirstName,
		LastName:           c.LastName,
		Street:             c.Street,
		Zip:                c.Zip,
		City:               c.City,
		Phone:              c.Phone,
		Email:              c.Email,
		DeliverySame:       c.DeliverySame,
		DeliverySalutation: c.DeliverySalutation,
		DeliveryFirstName:  c.DeliveryFirstName,
		DeliveryLastName:   c.DeliveryLastName,
		DeliveryStreet:     c.DeliveryStreet,
		DeliveryZip:        c.DeliveryZip,
		DeliveryCity:       c.DeliveryCity,
		StationNotes:       c.StationNotes,
		GDPRAccepted:       c.GDPRAccepted,
		AGBAccepted:        c.AGBAccepted,
		Newsletter:         c.Newsletter,
		TotalPrice:         decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

func (it ItemInput) priceInput() pricing.ItemInput {
	return pricing.ItemInput{
		Quantity:          it.Quantity,
		Sole:              pricing.SoleType(it.Sole),
		EdgeRubber:        pricing.EdgeRubberOption(it.EdgeRubber),
		Closure:           it.Closure,
		Disinfection:      it.Disinfection,
		HasAdditionalWork: strVal(it.AdditionalWork) != "",
		DelegateToStaff:   it.DelegateToStaff,
	}
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}
