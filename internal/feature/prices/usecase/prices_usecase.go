// Package usecase は価格一覧をそのまま返すユースケースを実装します。
package usecase

import "context"

// PriceFeed は上流の価格一覧をそのまま返すインターフェースです。
type PriceFeed interface {
	FetchRaw(ctx context.Context) ([]byte, error)
}

// PricesUsecase は上流の価格一覧を公開するユースケースです。
type PricesUsecase struct {
	feed PriceFeed
}

// NewPricesUsecase は新しい PricesUsecase を生成します。
func NewPricesUsecase(feed PriceFeed) *PricesUsecase {
	return &PricesUsecase{feed: feed}
}

// ListPrices は上流のペイロード全体をJSONバイト列として返します。
func (u *PricesUsecase) ListPrices(ctx context.Context) ([]byte, error) {
	return u.feed.FetchRaw(ctx)
}
