package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pima_backend/internal/feature/forecast/domain"
	"pima_backend/internal/feature/forecast/usecase"
	priceentity "pima_backend/internal/feature/prices/domain/entity"
)

// ErrNetwork はモックと期待値の間で共有されるセンチネルエラーです。
var ErrNetwork = errors.New("connection refused")

// mockRecordSource はRecordSourceインターフェースのモック実装です。
type mockRecordSource struct {
	FetchRecordsFunc func(ctx context.Context) ([]priceentity.RawPriceRecord, error)
	FetchCalls       int
}

func (m *mockRecordSource) FetchRecords(ctx context.Context) ([]priceentity.RawPriceRecord, error) {
	m.FetchCalls++
	if m.FetchRecordsFunc != nil {
		return m.FetchRecordsFunc(ctx)
	}
	return nil, errors.New("FetchRecordsFunc is not implemented")
}

func records(rs ...priceentity.RawPriceRecord) func(context.Context) ([]priceentity.RawPriceRecord, error) {
	return func(context.Context) ([]priceentity.RawPriceRecord, error) { return rs, nil }
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

// TestForecastUsecase_Forecast_LinearScenario は4日間の直線的な価格から次の5日間を予測します。
func TestForecastUsecase_Forecast_LinearScenario(t *testing.T) {
	t.Parallel()

	src := &mockRecordSource{FetchRecordsFunc: records(
		priceentity.RawPriceRecord{"producto": "papa", "fecha": "2024-01-03", "moda": "14"},
		priceentity.RawPriceRecord{"producto": "papa", "fecha": "2024-01-01", "moda": "10"},
		priceentity.RawPriceRecord{"producto": "tomate", "fecha": "2024-01-01", "moda": "99"},
		priceentity.RawPriceRecord{"producto": "papa", "fecha": "2024-01-04", "moda": 16.0},
		priceentity.RawPriceRecord{"producto": "papa", "fecha": "2024-01-02", "moda": "12"},
		priceentity.RawPriceRecord{"producto": "papa", "fecha": "sin fecha", "moda": "1000"},
	)}
	uc := usecase.NewForecastUsecase(src)

	res, err := uc.Forecast(context.Background(), "papa")
	require.NoError(t, err)

	assert.Equal(t, "papa", res.Product)
	assert.Equal(t, []float64{10, 12, 14, 16}, res.Historical.Prices())
	assert.Equal(t, []int{0, 1, 2, 3}, res.Historical.Offsets)

	require.Len(t, res.Forecast, usecase.Horizon)
	wantPrices := []float64{18, 20, 22, 24, 26}
	for i, f := range res.Forecast {
		assert.Equal(t, day(5+i), f.Date)
		assert.InDelta(t, wantPrices[i], f.Price, 1e-9)
	}
	assert.Equal(t, 1, src.FetchCalls)
}

// TestForecastUsecase_Forecast_Errors は各失敗種別が正しく返されることを検証します。
func TestForecastUsecase_Forecast_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		product       string
		fetch         func(ctx context.Context) ([]priceentity.RawPriceRecord, error)
		expectedErr   error
		expectedCalls int
	}{
		{
			name:          "missing product skips the fetch",
			product:       "",
			fetch:         records(),
			expectedErr:   domain.ErrMissingProductParameter,
			expectedCalls: 0,
		},
		{
			name:    "upstream failure",
			product: "papa",
			fetch: func(context.Context) ([]priceentity.RawPriceRecord, error) {
				return nil, ErrNetwork
			},
			expectedErr:   domain.ErrUpstreamUnavailable,
			expectedCalls: 1,
		},
		{
			name:    "upstream timeout",
			product: "papa",
			fetch: func(context.Context) ([]priceentity.RawPriceRecord, error) {
				return nil, context.DeadlineExceeded
			},
			expectedErr:   domain.ErrUpstreamUnavailable,
			expectedCalls: 1,
		},
		{
			name:    "only other products",
			product: "papa",
			fetch: records(
				priceentity.RawPriceRecord{"producto": "tomate", "fecha": "2024-01-01", "moda": "1"},
				priceentity.RawPriceRecord{"producto": "tomate", "fecha": "2024-01-02", "moda": "2"},
				priceentity.RawPriceRecord{"producto": "tomate", "fecha": "2024-01-03", "moda": "3"},
			),
			expectedErr:   domain.ErrNoDataForProduct,
			expectedCalls: 1,
		},
		{
			name:    "two valid points",
			product: "papa",
			fetch: records(
				priceentity.RawPriceRecord{"producto": "papa", "fecha": "2024-01-01", "moda": "1"},
				priceentity.RawPriceRecord{"producto": "papa", "fecha": "2024-01-02", "moda": "2"},
				priceentity.RawPriceRecord{"producto": "papa", "fecha": "2024-01-03", "moda": "x"},
			),
			expectedErr:   domain.ErrInsufficientHistory,
			expectedCalls: 1,
		},
		{
			name:    "all observations on the same date",
			product: "papa",
			fetch: records(
				priceentity.RawPriceRecord{"producto": "papa", "fecha": "2024-01-01", "moda": "1"},
				priceentity.RawPriceRecord{"producto": "papa", "fecha": "2024-01-01", "moda": "2"},
				priceentity.RawPriceRecord{"producto": "papa", "fecha": "2024-01-01 18:00:00", "moda": "3"},
			),
			expectedErr:   domain.ErrDegenerateSeries,
			expectedCalls: 1,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			src := &mockRecordSource{FetchRecordsFunc: tc.fetch}
			uc := usecase.NewForecastUsecase(src)

			res, err := uc.Forecast(context.Background(), tc.product)

			assert.Nil(t, res)
			assert.ErrorIs(t, err, tc.expectedErr)
			assert.Equal(t, tc.expectedCalls, src.FetchCalls)
		})
	}
}

// TestForecastUsecase_Forecast_UpstreamCauseKept はラップ後も元のエラーを辿れることを検証します。
func TestForecastUsecase_Forecast_UpstreamCauseKept(t *testing.T) {
	t.Parallel()

	src := &mockRecordSource{FetchRecordsFunc: func(context.Context) ([]priceentity.RawPriceRecord, error) {
		return nil, ErrNetwork
	}}

	_, err := usecase.NewForecastUsecase(src).Forecast(context.Background(), "papa")

	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.Contains(t, err.Error(), ErrNetwork.Error())
}

// TestForecastUsecase_Forecast_ExactlyThreePoints は最小件数ちょうどで成功することを検証します。
func TestForecastUsecase_Forecast_ExactlyThreePoints(t *testing.T) {
	t.Parallel()

	src := &mockRecordSource{FetchRecordsFunc: records(
		priceentity.RawPriceRecord{"producto": "papa", "fecha": "2024-01-01", "moda": "100"},
		priceentity.RawPriceRecord{"producto": "papa", "fecha": "2024-01-02", "moda": "100"},
		priceentity.RawPriceRecord{"producto": "papa", "fecha": "2024-01-03", "moda": "100"},
	)}

	res, err := usecase.NewForecastUsecase(src).Forecast(context.Background(), "papa")
	require.NoError(t, err)

	require.Len(t, res.Forecast, usecase.Horizon)
	assert.Equal(t, day(4), res.Forecast[0].Date)
	assert.Equal(t, day(8), res.Forecast[4].Date)
	for _, f := range res.Forecast {
		assert.InDelta(t, 100, f.Price, 1e-9)
	}
}
