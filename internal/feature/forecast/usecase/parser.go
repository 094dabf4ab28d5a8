package usecase

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"

	"pima_backend/internal/feature/forecast/domain/entity"
	priceentity "pima_backend/internal/feature/prices/domain/entity"
)

// dateLayouts は "fecha" フィールドの解析時に順番に試す日付フォーマットです。
var dateLayouts = []string{
	time.DateOnly,
	"2006-1-2",
	time.DateTime,
	"2006-01-02 15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.RFC3339,
	time.RFC3339Nano,
	"2006/01/02",
}

// ParseRecords は生レコードを価格ポイントに変換します。
// 商品名・日付・価格のいずれかを読めないレコードは破棄し、エラーは返しません。
func ParseRecords(records []priceentity.RawPriceRecord) []entity.PricePoint {
	points := make([]entity.PricePoint, 0, len(records))
	for _, r := range records {
		product, ok := r[priceentity.FieldProduct].(string)
		if !ok {
			continue
		}
		date, ok := parseDate(r[priceentity.FieldDate])
		if !ok {
			continue
		}
		price, ok := parsePrice(r[priceentity.FieldModePrice])
		if !ok {
			continue
		}
		points = append(points, entity.PricePoint{
			Product: product,
			Date:    date,
			Price:   price,
			Fields:  r,
		})
	}
	return points
}

// parseDate は日付文字列を解析し、UTCの暦日に切り捨てます。
func parseDate(v any) (time.Time, bool) {
	s, ok := v.(string)
	if !ok {
		return time.Time{}, false
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// parsePrice はJSON数値と数値文字列を受け付けます。NaN や無限大は除外します。
func parsePrice(v any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch x := v.(type) {
	case float64:
		f = x
	case json.Number:
		f, err = x.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(x), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
