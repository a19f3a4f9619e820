package server

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/usecase"
)

// Newはechoを組み立てて返す。Scopeはここで全ルートに配られる。
func New(cfg config.Config, log *zap.Logger, scope *handler.Scope, catalogUC *usecase.CatalogUsecase) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(RequestLogger(log))
	e.Use(handler.WithScope(scope))

	RegisterRoutes(e, cfg, catalogUC)

	return e
}

func Start(e *echo.Echo, port string) error {
	return e.Start(":" + port)
}

// RequestLoggerはリクエスト1件を1行のJSONで記録する。
func RequestLogger(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			log.Info("request",
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_ip", c.RealIP()),
			)

			return nil
		}
	}
}
