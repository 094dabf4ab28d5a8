package dto

import (
	"strconv"
	"time"

	"github.com/samber/lo"

	"pima_backend/internal/feature/forecast/domain/entity"
	priceentity "pima_backend/internal/feature/prices/domain/entity"
)

// FieldOffset は履歴レコードに付与する経過日数フィールド名です。
const FieldOffset = "dias"

// Price は常に小数点以下2桁でエンコードされる価格です。
type Price float64

// MarshalJSON は 18 を 18.00 として出力します。
func (p Price) MarshalJSON() ([]byte, error) {
	return strconv.AppendFloat(nil, float64(p), 'f', 2, 64), nil
}

// ForecastPointResponse は予測1日分のレスポンスDTOです。
type ForecastPointResponse struct {
	Date  string `json:"fecha"`  // 日付 (YYYY-MM-DD)
	Price Price  `json:"precio"` // 予測価格
}

// ForecastResponse は /api/prediccion のレスポンスDTOです。
type ForecastResponse struct {
	Product    string                  `json:"producto"`
	Historical []map[string]any        `json:"historico"`
	Forecast   []ForecastPointResponse `json:"prediccion"`
}

// ErrorResponse はエラーレスポンスDTOです。
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewForecastResponse はドメインの予測結果をレスポンスDTOに変換します。
// 履歴は元レコードの全フィールドに、正規化した producto / fecha / moda と dias を上書きしたものです。
func NewForecastResponse(r *entity.ForecastResult) ForecastResponse {
	series := r.Historical
	historical := make([]map[string]any, 0, series.Len())
	for i, p := range series.Points {
		row := make(map[string]any, len(p.Fields)+1)
		for k, v := range p.Fields {
			row[k] = v
		}
		row[priceentity.FieldProduct] = p.Product
		row[priceentity.FieldDate] = formatDate(p.Date)
		row[priceentity.FieldModePrice] = p.Price
		row[FieldOffset] = series.Offsets[i]
		historical = append(historical, row)
	}

	return ForecastResponse{
		Product:    r.Product,
		Historical: historical,
		Forecast: lo.Map(r.Forecast, func(f entity.ForecastPoint, _ int) ForecastPointResponse {
			return ForecastPointResponse{Date: formatDate(f.Date), Price: Price(f.Price)}
		}),
	}
}

func formatDate(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
