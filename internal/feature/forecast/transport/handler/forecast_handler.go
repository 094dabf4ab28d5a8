// Package handler はforecastフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pima_backend/internal/feature/forecast/domain"
	"pima_backend/internal/feature/forecast/domain/entity"
	"pima_backend/internal/feature/forecast/transport/http/dto"
)

// ForecastUsecase は価格予測のユースケースインターフェースです。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ForecastUsecase interface {
	Forecast(ctx context.Context, product string) (*entity.ForecastResult, error)
}

// ForecastHandler は価格予測のHTTPリクエストを処理します。
type ForecastHandler struct {
	uc ForecastUsecase
}

// NewForecastHandler は新しい ForecastHandler を作成します。
func NewForecastHandler(uc ForecastUsecase) *ForecastHandler {
	return &ForecastHandler{uc: uc}
}

// GetForecast は商品名を受け取り、履歴と今後5日間の予測価格をJSONで返します。
//
// エンドポイント例:
// GET /api/prediccion?producto=papa
func (h *ForecastHandler) GetForecast(c *gin.Context) {
	product := c.Query("producto")

	result, err := h.uc.Forecast(c.Request.Context(), product)
	if err != nil {
		status, msg := errorResponse(err, product)
		c.JSON(status, dto.ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, dto.NewForecastResponse(result))
}

// errorResponse はドメインエラーをHTTPステータスとメッセージに変換します。
func errorResponse(err error, product string) (int, string) {
	switch {
	case errors.Is(err, domain.ErrMissingProductParameter):
		return http.StatusBadRequest, "Debe indicar un producto ?producto=XYZ"
	case errors.Is(err, domain.ErrNoDataForProduct):
		return http.StatusNotFound, fmt.Sprintf("No hay datos para %s", product)
	case errors.Is(err, domain.ErrInsufficientHistory):
		return http.StatusBadRequest, "No hay suficientes datos históricos para predecir"
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return http.StatusInternalServerError, fmt.Sprintf("No se pudo obtener datos de PIMA: %v", err)
	default:
		// ErrDegenerateSeries を含む計算エラー
		return http.StatusInternalServerError, err.Error()
	}
}
