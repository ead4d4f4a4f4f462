package orders

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type Repo struct{ db *gorm.DB }

func NewRepo(db *gorm.DB) *Repo { return &Repo{db: db} }

func (r *Repo) GetWithItems(ctx context.Context, id string) (Order, []OrderItem, error) {
	var o Order
	if err := r.db.WithContext(ctx).First(&o, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Order{}, nil, ErrOrderNotFound
		}
		return Order{}, nil, err
	}
	var items []OrderItem
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&items, "order_id = ?", id).Error; err != nil {
		return Order{}, nil, err
	}
	return o, items, nil
}

// Detail bundles everything the admin order page shows: the order, its
// items, the status history (newest first) and the recent field history.
type Detail struct {
	Order         Order
	Items         []OrderItem
	StatusChanges []OrderStatusChange
	FieldChanges  []OrderFieldChange
}

func (r *Repo) GetDetail(ctx context.Context, id string) (Detail, error) {
	o, items, err := r.GetWithItems(ctx, id)
	if err != nil {
		return Detail{}, err
	}

	var statusChanges []OrderStatusChange
	if err := r.db.WithContext(ctx).
		Order("changed_at DESC").
		Limit(20).
		Find(&statusChanges, "order_id = ?", id).Error; err != nil {
		return Detail{}, err
	}

	var fieldChanges []OrderFieldChange
	if err := r.db.WithContext(ctx).
		Order("changed_at DESC").
		Limit(50).
		Find(&fieldChanges, "order_id = ?", id).Error; err != nil {
		return Detail{}, err
	}

	return Detail{
		Order:         o,
		Items:         items,
		StatusChanges: statusChanges,
		FieldChanges:  fieldChanges,
	}, nil
}
