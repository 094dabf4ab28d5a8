package usecase

import (
	"fmt"
	"slices"
	"strconv"

	"pima_backend/internal/feature/forecast/domain"
	"pima_backend/internal/feature/forecast/domain/entity"
)

// Horizon は最終観測日以降に予測する日数です。
const Horizon = 5

// FitTrend は平均を中心化した和から最小二乗法で price = a + b*offset を求めます。
func FitTrend(offsets []int, prices []float64) (entity.Trend, error) {
	if len(offsets) != len(prices) {
		return entity.Trend{}, fmt.Errorf("fit trend: %d offsets for %d prices", len(offsets), len(prices))
	}
	if len(offsets) < MinHistory {
		return entity.Trend{}, fmt.Errorf("%w: %d points", domain.ErrInsufficientHistory, len(offsets))
	}

	n := float64(len(offsets))
	var sumX, sumY float64
	for i := range offsets {
		sumX += float64(offsets[i])
		sumY += prices[i]
	}
	meanX, meanY := sumX/n, sumY/n

	var sxy, sxx float64
	for i := range offsets {
		dx := float64(offsets[i]) - meanX
		sxy += dx * (prices[i] - meanY)
		sxx += dx * dx
	}
	if sxx == 0 {
		return entity.Trend{}, domain.ErrDegenerateSeries
	}

	slope := sxy / sxx
	return entity.Trend{Intercept: meanY - slope*meanX, Slope: slope}, nil
}

// Project は系列の最終ポイントの翌日から horizon 日分トレンドを延長します。
// 将来日付は経過日数の起点ではなく、最新の日付から数えます。
func Project(series entity.TimeSeries, trend entity.Trend, horizon int) []entity.ForecastPoint {
	maxOffset := slices.Max(series.Offsets)
	lastDate := series.Last().Date

	out := make([]entity.ForecastPoint, 0, horizon)
	for i := 1; i <= horizon; i++ {
		out = append(out, entity.ForecastPoint{
			Date:  lastDate.AddDate(0, 0, i),
			Price: round2(trend.At(maxOffset + i)),
		})
	}
	return out
}

// round2 は2進数で保持された値そのものを小数点以下2桁に丸めます。
// 2.675 (実際は 2.67499…) は 2.67、ちょうど中間の 0.125 は偶数側の 0.12 になります。
func round2(v float64) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	return f
}
