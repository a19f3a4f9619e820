package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/domain/model"
	"storefront/internal/usecase"
)

// /api/cart のHTTP。カート操作は常に成功する契約なので、
// 失敗になり得るのは商品IDの解決とボディの形だけ。
type CartHandler struct{}

func NewCartHandler() *CartHandler {
	return &CartHandler{}
}

type addCartRequest struct {
	ProductID string `json:"productId"`
	// 省略時は1（元のaddToCartのデフォルト引数に合わせる）
	Quantity *int `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Success bool       `json:"success"`
	Cart    model.Cart `json:"cart"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/cart")

	g.GET("", h.get)
	g.POST("", h.add)
	g.PATCH("/:productId", h.updateQuantity)
	g.DELETE("/:productId", h.remove)
	g.DELETE("", h.clear)
}

func (h *CartHandler) get(c echo.Context) error {
	return c.JSON(http.StatusOK, cartResponse{
		Success: true,
		Cart:    ScopeFrom(c).Cart.Get(),
	})
}

func (h *CartHandler) add(c echo.Context) error {
	var req addCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	state, err := ScopeFrom(c).Cart.AddToCart(req.ProductID, quantity)
	if err != nil {
		if errors.Is(err, usecase.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, errJSON(err.Error()))
		}
		return c.JSON(http.StatusInternalServerError, errJSON("internal error"))
	}

	return c.JSON(http.StatusOK, cartResponse{Success: true, Cart: state})
}

func (h *CartHandler) updateQuantity(c echo.Context) error {
	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errJSON("invalid body"))
	}

	state := ScopeFrom(c).Cart.UpdateQuantity(c.Param("productId"), req.Quantity)
	return c.JSON(http.StatusOK, cartResponse{Success: true, Cart: state})
}

func (h *CartHandler) remove(c echo.Context) error {
	state := ScopeFrom(c).Cart.Remove(c.Param("productId"))
	return c.JSON(http.StatusOK, cartResponse{Success: true, Cart: state})
}

func (h *CartHandler) clear(c echo.Context) error {
	state := ScopeFrom(c).Cart.Clear()
	return c.JSON(http.StatusOK, cartResponse{Success: true, Cart: state})
}
