// Package usecase は価格予測のビジネスロジックを実装します。
// 生レコードの解析、商品ごとの系列作成、線形トレンドの当てはめと将来価格の算出を行います。
package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pima_backend/internal/feature/forecast/domain"
	"pima_backend/internal/feature/forecast/domain/entity"
	priceentity "pima_backend/internal/feature/prices/domain/entity"
)

// RecordSource は外部APIから全商品の生価格レコードを取得するインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type RecordSource interface {
	FetchRecords(ctx context.Context) ([]priceentity.RawPriceRecord, error)
}

// ForecastUsecase は1商品の短期価格予測を行うユースケースです。
// 可変状態を持たないため、並行して呼び出しても安全です。
type ForecastUsecase struct {
	source RecordSource
}

// NewForecastUsecase は指定されたソースを使う ForecastUsecase を生成します。
func NewForecastUsecase(source RecordSource) *ForecastUsecase {
	return &ForecastUsecase{source: source}
}

// Forecast は最新のフィードを取得し、商品の整形済み履歴と
// 今後 Horizon 日分の予測価格を返します。
func (u *ForecastUsecase) Forecast(ctx context.Context, product string) (*entity.ForecastResult, error) {
	if product == "" {
		return nil, domain.ErrMissingProductParameter
	}

	records, err := u.source.FetchRecords(ctx)
	if err != nil {
		slog.Error("failed to fetch price records", "product", product, "error", err)
		if errors.Is(err, domain.ErrUpstreamUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}

	points := ParseRecords(records)
	if dropped := len(records) - len(points); dropped > 0 {
		slog.Debug("dropped unparseable price records", "dropped", dropped, "total", len(records))
	}

	series, err := BuildSeries(points, product)
	if err != nil {
		slog.Warn("cannot build price series", "product", product, "error", err)
		return nil, err
	}

	trend, err := FitTrend(series.Offsets, series.Prices())
	if err != nil {
		slog.Error("failed to fit price trend", "product", product, "error", err)
		return nil, err
	}

	return &entity.ForecastResult{
		Product:    product,
		Historical: series,
		Forecast:   Project(series, trend, Horizon),
	}, nil
}
