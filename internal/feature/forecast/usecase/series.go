package usecase

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"pima_backend/internal/feature/forecast/domain"
	"pima_backend/internal/feature/forecast/domain/entity"
)

// MinHistory は予測に必要な最小の観測数です。
const MinHistory = 3

const day = 24 * 60 * 60 // 秒

// BuildSeries は1商品の価格ポイントを抽出して日付順に並べ、
// 最も古い日付からの経過日数を各ポイントについて算出します。
func BuildSeries(points []entity.PricePoint, product string) (entity.TimeSeries, error) {
	matched := lo.Filter(points, func(p entity.PricePoint, _ int) bool {
		return p.Product == product
	})
	if len(matched) == 0 {
		return entity.TimeSeries{}, fmt.Errorf("%w: %s", domain.ErrNoDataForProduct, product)
	}

	if len(matched) < MinHistory {
		return entity.TimeSeries{}, fmt.Errorf("%w: %s has %d points, need %d",
			domain.ErrInsufficientHistory, product, len(matched), MinHistory)
	}

	slices.SortStableFunc(matched, func(a, b entity.PricePoint) int {
		return a.Date.Compare(b.Date)
	})

	origin := matched[0].Date
	offsets := make([]int, len(matched))
	for i, p := range matched {
		// 日付はUTCの0時なので差は必ず日数の整数倍になる
		offsets[i] = int((p.Date.Unix() - origin.Unix()) / day)
	}

	return entity.TimeSeries{Product: product, Points: matched, Offsets: offsets}, nil
}
