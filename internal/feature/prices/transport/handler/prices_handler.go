// Package handler はpricesフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PricesUsecase は価格一覧取得のユースケースインターフェースです。
type PricesUsecase interface {
	ListPrices(ctx context.Context) ([]byte, error)
}

// PricesHandler は価格一覧のHTTPリクエストを処理します。
type PricesHandler struct {
	uc PricesUsecase
}

// NewPricesHandler は新しい PricesHandler を作成します。
func NewPricesHandler(uc PricesUsecase) *PricesHandler {
	return &PricesHandler{uc: uc}
}

// List はPIMAの価格一覧をそのまま返します。
//
// エンドポイント例:
// GET /api/precios
func (h *PricesHandler) List(c *gin.Context) {
	body, err := h.uc.ListPrices(c.Request.Context())
	if err != nil {
		slog.Error("failed to fetch PIMA prices", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("No se pudo obtener datos de PIMA: %v", err)})
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", body)
}
