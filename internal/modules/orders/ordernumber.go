package orders

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// nextOrderNumber reserves the next per-day sequence number inside the
// caller's transaction and formats it as R-YYYYMMDD-NNNN.
func nextOrderNumber(ctx context.Context, tx *gorm.DB, now time.Time) (string, error) {
	day := now.UTC().Format("2006-01-02")

	if err := tx.WithContext(ctx).Exec(
		`INSERT INTO order_number_seq (day, seq) VALUES (?, LAST_INSERT_ID(1))
		 ON DUPLICATE KEY UPDATE seq = LAST_INSERT_ID(seq + 1)`, day,
	).Error; err != nil {
		return "", fmt.Errorf("order number seq: %w", err)
	}

	var seq int64
	if err := tx.WithContext(ctx).Raw("SELECT LAST_INSERT_ID()").Scan(&seq).Error; err != nil {
		return "", fmt.Errorf("order number seq read: %w", err)
	}

	compactDay := now.UTC().Format("20060102")
	return fmt.Sprintf("R-%s-%04d", compactDay, seq), nil
}
