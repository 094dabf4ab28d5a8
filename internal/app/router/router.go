package router

import (
	"html/template"
	"log/slog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	forecasthandler "pima_backend/internal/feature/forecast/transport/handler"
	priceshandler "pima_backend/internal/feature/prices/transport/handler"
	"pima_backend/internal/platform/http/handler"
	"pima_backend/internal/platform/http/middleware"
	"pima_backend/internal/web"
)

// Options は任意のルータ設定です。
type Options struct {
	Logger             *slog.Logger
	Templates          *template.Template
	CORSAllowedOrigins []string
}

func NewRouter(prices *priceshandler.PricesHandler, forecast *forecasthandler.ForecastHandler,
	pages *web.Pages, opts Options) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	// アクセス元IPとパスを記録
	r.Use(middleware.RequestLogger(logger))

	// オリジンが設定されている場合のみCORSを有効化
	if len(opts.CORSAllowedOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = opts.CORSAllowedOrigins
		cfg.AllowMethods = []string{"GET", "HEAD", "OPTIONS"}
		r.Use(cors.New(cfg))
	}

	// 導通確認用
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.OPTIONS("/healthz", handler.Health)

	api := r.Group("/api")
	{
		api.GET("/precios", prices.List)
		api.GET("/prediccion", forecast.GetForecast)
	}

	// ページ
	if opts.Templates != nil {
		r.SetHTMLTemplate(opts.Templates)
		r.GET("/", pages.Index)
		r.GET("/pima", pages.PIMA)
		r.GET("/info", pages.Info)
	}

	return r
}
