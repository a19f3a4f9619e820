package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"storefront/internal/usecase"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func errJSON(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

// 一覧系レスポンスの外枠。
type listEnvelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Total     int         `json:"total"`
	Timestamp time.Time   `json:"timestamp"`
}

type detailEnvelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
}

// /api/products と /api/categories の公開API
type ProductHandler struct {
	uc *usecase.CatalogUsecase
}

// DI
func NewProductHandler(uc *usecase.CatalogUsecase) *ProductHandler {
	return &ProductHandler{uc: uc}
}

func (h *ProductHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/products", h.list)
	e.GET("/api/products/:id", h.detail)
	e.GET("/api/categories", h.categories)
}

func (h *ProductHandler) list(c echo.Context) error {
	in := usecase.ListProductsInput{
		Search:   c.QueryParam("search"),
		Category: c.QueryParam("category"),
		SortBy:   c.QueryParam("sortBy"),
	}

	if v := c.QueryParam("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errJSON("invalid minPrice"))
		}
		in.MinPrice = &d
	}

	if v := c.QueryParam("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errJSON("invalid maxPrice"))
		}
		in.MaxPrice = &d
	}

	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errJSON("invalid limit"))
		}
		in.Limit = n
	}

	products := h.uc.ListProducts(in)

	return c.JSON(http.StatusOK, listEnvelope{
		Success:   true,
		Data:      products,
		Total:     len(products),
		Timestamp: time.Now().UTC(),
	})
}

func (h *ProductHandler) detail(c echo.Context) error {
	p, ok := h.uc.ProductByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, errJSON("Product not found"))
	}

	return c.JSON(http.StatusOK, detailEnvelope{
		Success:   true,
		Data:      p,
		Timestamp: time.Now().UTC(),
	})
}

func (h *ProductHandler) categories(c echo.Context) error {
	if c.QueryParam("includeProductCount") == "true" {
		cats := h.uc.ListCategoriesWithCount()
		return c.JSON(http.StatusOK, listEnvelope{
			Success:   true,
			Data:      cats,
			Total:     len(cats),
			Timestamp: time.Now().UTC(),
		})
	}

	cats := h.uc.ListCategories()
	return c.JSON(http.StatusOK, listEnvelope{
		Success:   true,
		Data:      cats,
		Total:     len(cats),
		Timestamp: time.Now().UTC(),
	})
}
