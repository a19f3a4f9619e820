package usecase

import (
	"github.com/shopspring/decimal"

	"storefront/internal/catalog"
	"storefront/internal/domain/model"
)

// 一覧APIのクエリ入力。
type ListProductsInput struct {
	Search   string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	SortBy   string
	Limit    int
}

// カテゴリ＋所属商品数。
type CategoryWithCount struct {
	model.Category
	ProductCount int `json:"productCount"`
}

// CatalogUsecaseは読み取り専用カタログの薄いラッパー。
type CatalogUsecase struct {
	store *catalog.Store
}

func NewCatalogUsecase(store *catalog.Store) *CatalogUsecase {
	return &CatalogUsecase{store: store}
}

func (u *CatalogUsecase) ListProducts(in ListProductsInput) []model.Product {
	return u.store.List(catalog.Filter{
		Search:   in.Search,
		Category: in.Category,
		MinPrice: in.MinPrice,
		MaxPrice: in.MaxPrice,
		SortBy:   in.SortBy,
		Limit:    in.Limit,
	})
}

func (u *CatalogUsecase) ProductByID(id string) (model.Product, bool) {
	return u.store.ProductByID(id)
}

func (u *CatalogUsecase) ListCategories() []model.Category {
	return u.store.ListCategories()
}

func (u *CatalogUsecase) ListCategoriesWithCount() []CategoryWithCount {
	cats := u.store.ListCategories()
	out := make([]CategoryWithCount, 0, len(cats))
	for _, c := range cats {
		out = append(out, CategoryWithCount{
			Category:     c,
			ProductCount: len(u.store.ProductsByCategory(c.ID)),
		})
	}
	return out
}
