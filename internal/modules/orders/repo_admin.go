package orders

import (
	"context"
	"strings"
)

type AdminListParams struct {
	Q        string // order number, customer name or email
	Status   string // optional filter
	Page     int
	PageSize int
}

type AdminListItem struct {
	Order     Order
	ItemCount int
}

type AdminListResult struct {
	Items []AdminListItem
	Total int64
}

func (r *Repo) AdminList(ctx context.Context, in AdminListParams) (AdminListResult, error) {
	page := in.Page
	if page < 1 {
		page = 1
	}
	size := in.PageSize
	if size < 1 || size > 100 {
		size = 30
	}

	q := strings.TrimSpace(in.Q)
	status := strings.TrimSpace(in.Status)

	base := r.db.WithContext(ctx).Model(&Order{})
	if status != "" {
		base = base.Where("status = ?", status)
	}
	if q != "" {
		like := "%" + q + "%"
		base = base.Where(
			"(order_number LIKE ? OR last_name LIKE ? OR email LIKE ?)",
			like, like, like,
		)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return AdminListResult{}, err
	}

	var orders []Order
	if err := base.
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&orders).Error; err != nil {
		return AdminListResult{}, err
	}

	items := make([]AdminListItem, len(orders))
	for i, o := range orders {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&OrderItem{}).
			Where("order_id = ?", o.ID).
			Count(&count).Error; err != nil {
			count = 0
		}
		items[i] = AdminListItem{Order: o, ItemCount: int(count)}
	}

	return AdminListResult{Items: items, Total: total}, nil
}
