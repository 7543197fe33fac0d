package migration

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// decimalText matches decimal-formatted numbers stored as text, e.g.
// "4.000000000000000000000000000000" or "9.50". Collapsing is done on the
// string form; parsing to a float would risk precision loss on the long
// fractional parts found in production.
var decimalText = regexp.MustCompile(`^-?\d+\.\d+$`)

// NormalizeDecimalText collapses a decimal-string value to its shortest
// equivalent form. An all-zero fractional part collapses to the integer
// part; a non-zero fractional part has trailing zero digits stripped. Empty
// strings become nil (NULL). Values that are not decimal-formatted are
// returned unchanged.
func NormalizeDecimalText(raw string) *string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	if !decimalText.MatchString(raw) {
		return &raw
	}

	dot := strings.IndexByte(raw, '.')
	intPart, fracPart := raw[:dot], raw[dot+1:]

	fracPart = strings.TrimRight(fracPart, "0")
	if fracPart == "" {
		return &intPart
	}
	out := intPart + "." + fracPart
	return &out
}

// ParseQuantity interprets a quantity string as a number for arithmetic.
// Empty or unparseable values count as zero.
func ParseQuantity(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	qty, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return qty
}

// NormalizeQuantities rewrites every drifted quotation_items.quantity value
// to its collapsed form and returns the number of rows changed. The select
// casts the column to text explicitly: the column's declared type and its
// live contents have drifted apart and must not be parsed by the driver.
func NormalizeQuantities(ctx context.Context, db *gorm.DB, logger *zap.Logger) (int, error) {
	type row struct {
		ID       uuid.UUID
		Quantity *string
	}

	var rows []row
	err := db.WithContext(ctx).
		Raw("SELECT id, CAST(quantity AS TEXT) AS quantity FROM quotation_items ORDER BY id").
		Scan(&rows).Error
	if err != nil {
		return 0, fmt.Errorf("failed to read quotation items: %w", err)
	}

	changed := 0
	for _, r := range rows {
		if r.Quantity == nil {
			continue
		}
		normalized := NormalizeDecimalText(*r.Quantity)
		if normalized != nil && *normalized == *r.Quantity {
			continue
		}

		res := db.WithContext(ctx).
			Exec("UPDATE quotation_items SET quantity = ? WHERE id = ?", normalized, r.ID)
		if res.Error != nil {
			return changed, fmt.Errorf("failed to update quotation item %s: %w", r.ID, res.Error)
		}
		changed++

		from := *r.Quantity
		to := "NULL"
		if normalized != nil {
			to = *normalized
		}
		logger.Debug("normalized quantity",
			zap.String("id", r.ID.String()),
			zap.String("from", from),
			zap.String("to", to),
		)
	}

	logger.Info("quantity normalization finished",
		zap.Int("rows_scanned", len(rows)),
		zap.Int("rows_changed", changed),
	)
	return changed, nil
}
