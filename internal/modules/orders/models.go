package orders

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Order is one repair request with its customer data. Orders are never
// physically deleted; cancellation is a terminal status.
type Order struct {
	ID string `gorm:"primaryKey;type:char(36)"`
	// OrderNumber is nil for drafts; assigned on submission. Nullable so the
	// unique index tolerates any number of drafts.
	OrderNumber *string `gorm:"type:varchar(32);uniqueIndex:ux_orders_number"`
	Status      Status  `gorm:"type:varchar(16);not null;index:ix_orders_status"`

	Salutation string `gorm:"type:varchar(16);not null"`
	FirstName  string `gorm:"type:varchar(128);not null"`
	LastName   string `gorm:"type:varchar(128);not null"`
	Street     string `gorm:"type:varchar(255);not null"`
	Zip        string `gorm:"type:varchar(8);not null"`
	City       string `gorm:"type:varchar(128);not null"`
	Phone      string `gorm:"type:varchar(32);not null"`
	Email      string `gorm:"type:varchar(255);not null;index:ix_orders_email"`

	DeliverySame       bool    `gorm:"not null;default:true"`
	DeliverySalutation *string `gorm:"type:varchar(16)"`
	DeliveryFirstName  *string `gorm:"type:varchar(128)"`
	DeliveryLastName   *string `gorm:"type:varchar(128)"`
	DeliveryStreet     *string `gorm:"type:varchar(255)"`
	DeliveryZip        *string `gorm:"type:varchar(8)"`
	DeliveryCity       *string `gorm:"type:varchar(128)"`

	StationNotes *string `gorm:"type:text"`

	GDPRAccepted bool `gorm:"not null"`
	AGBAccepted  bool `gorm:"not null"`
	Newsletter   bool `gorm:"not null;default:false"`

	// TotalPrice is the sum of the items' calculated prices, persisted
	// redundantly for lists and reporting.
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`

	// DraftPayload keeps the raw wizard state for DRAFT orders so a
	// customer can resume a half-filled form.
	DraftPayload datatypes.JSON `gorm:"type:json"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
	UpdatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (Order) TableName() string { return "orders" }

// Number returns the assigned order number, or "" for drafts.
func (o Order) Number() string {
	if o.OrderNumber == nil {
		return ""
	}
	return *o.OrderNumber
}

// OrderItem is one shoe (or pair) within an order. CalculatedPrice is fixed
// at submission time and never recomputed when the price table changes.
type OrderItem struct {
	ID      string `gorm:"primaryKey;type:char(36)"`
	OrderID string `gorm:"type:char(36);not null;index:ix_order_items_order_id"`

	Quantity     decimal.Decimal `gorm:"type:decimal(4,1);not null"` // 0.5 = single shoe
	Manufacturer string          `gorm:"type:varchar(64);not null"`
	Model        string          `gorm:"type:varchar(128);not null"`
	Color        string          `gorm:"type:varchar(64)"`
	Size         string          `gorm:"type:varchar(8);not null"`

	Sole            string  `gorm:"type:varchar(32)"` // blank when delegated to staff
	EdgeRubber      string  `gorm:"type:varchar(16);not null"`
	Closure         bool    `gorm:"not null;default:false"`
	Disinfection    bool    `gorm:"not null;default:false"`
	DelegateToStaff bool    `gorm:"column:trust_professionals;not null;default:false"`
	AdditionalWork  *string `gorm:"type:text"`
	InternalNotes   *string `gorm:"type:text"`
	PhotoURL        *string `gorm:"type:varchar(512)"`

	CalculatedPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	CreatedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (OrderItem) TableName() string { return "order_items" }

// OrderStatusChange is an immutable audit record of one lifecycle
// transition. Tracking fields are only set when the target is SHIPPED.
type OrderStatusChange struct {
	ID      string `gorm:"primaryKey;type:char(36)"`
	OrderID string `gorm:"type:char(36);not null;index:ix_status_changes_order_id"`

	FromStatus Status  `gorm:"type:varchar(16);not null"`
	ToStatus   Status  `gorm:"type:varchar(16);not null"`
	Comment    *string `gorm:"type:text"`

	TrackingCarrier *string `gorm:"type:varchar(64)"`
	TrackingNumber  *string `gorm:"type:varchar(64)"`

	ChangedBy string    `gorm:"type:varchar(255);not null"`
	ChangedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (OrderStatusChange) TableName() string { return "order_status_changes" }

// OrderFieldChange records one changed field of a staff edit, with old and
// new value snapshots as text. Written only when the value actually differs.
type OrderFieldChange struct {
	ID      string `gorm:"primaryKey;type:char(36)"`
	OrderID string `gorm:"type:char(36);not null;index:ix_field_changes_order_id"`

	Field    string  `gorm:"type:varchar(64);not null"`
	OldValue *string `gorm:"type:text"`
	NewValue *string `gorm:"type:text"`

	ChangedBy string    `gorm:"type:varchar(255);not null"`
	ChangedAt time.Time `gorm:"type:datetime(3);not null"`
}

func (OrderFieldChange) TableName() string { return "order_field_changes" }
