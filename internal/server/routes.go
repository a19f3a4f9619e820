package server

import (
	"time"

	"github.com/labstack/echo/v4"

	"storefront/internal/config"
	"storefront/internal/handler"
	"storefront/internal/usecase"
)

// セッショントークンの有効期限
const sessionTokenTTL = 24 * time.Hour

func RegisterRoutes(e *echo.Echo, cfg config.Config, catalogUC *usecase.CatalogUsecase) {
	handler.NewProductHandler(catalogUC).RegisterRoutes(e)
	handler.NewAuthHandler(cfg.SessionSecret, sessionTokenTTL).RegisterRoutes(e)
	handler.NewCartHandler().RegisterRoutes(e)
}
