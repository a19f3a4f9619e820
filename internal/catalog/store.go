package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
)

// Storeは静的なカタログ（カテゴリと商品）への読み取り専用アクセス。
// データは起動時に渡されたまま変更されない。
type Store struct {
	categories []model.Category
	products   []model.Product
}

func NewStore(categories []model.Category, products []model.Product) *Store {
	return &Store{categories: categories, products: products}
}

// Defaultはサンプルデータ入りのStore。
func Default() *Store {
	return NewStore(Categories(), Products())
}

// カテゴリ一覧（定義順）。
func (s *Store) ListCategories() []model.Category {
	out := make([]model.Category, len(s.categories))
	copy(out, s.categories)
	return out
}

// 商品一覧（定義順）。
func (s *Store) ListProducts() []model.Product {
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *Store) ProductByID(id string) (model.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return model.Product{}, false
}

func (s *Store) CategoryBySlug(slug string) (model.Category, bool) {
	for _, c := range s.categories {
		if c.Slug == slug {
			return c, true
		}
	}
	return model.Category{}, false
}

// ProductsByCategoryはcategoryIdが一致する商品を定義順のまま返す。
func (s *Store) ProductsByCategory(categoryID string) []model.Product {
	out := make([]model.Product, 0)
	for _, p := range s.products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// SearchProductsは名前・説明・タグに対する大文字小文字を無視した部分一致。
func (s *Store) SearchProducts(query string) []model.Product {
	q := strings.ToLower(query)
	out := make([]model.Product, 0)
	for _, p := range s.products {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p model.Product, lowerQuery string) bool {
	if strings.Contains(strings.ToLower(p.Name), lowerQuery) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), lowerQuery) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), lowerQuery) {
			return true
		}
	}
	return false
}

// 一覧APIの絞り込み条件。ゼロ値は「条件なし」。
type Filter struct {
	Search   string
	Category string // "all"は無条件と同じ
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	SortBy   string // name / price-low / price-high / category
	Limit    int    // 0は無制限
}

// Listは検索→カテゴリ→価格帯→ソート→件数制限の順で適用する。
func (s *Store) List(f Filter) []model.Product {
	var out []model.Product
	if f.Search != "" {
		out = s.SearchProducts(f.Search)
	} else {
		out = s.ListProducts()
	}

	if f.Category != "" && f.Category != "all" {
		filtered := make([]model.Product, 0, len(out))
		for _, p := range out {
			if p.CategoryID == f.Category {
				filtered = append(filtered, p)
			}
		}
		out = filtered
	}

	if f.MinPrice != nil || f.MaxPrice != nil {
		filtered := make([]model.Product, 0, len(out))
		for _, p := range out {
			if f.MinPrice != nil && p.Price.LessThan(*f.MinPrice) {
				continue
			}
			if f.MaxPrice != nil && p.Price.GreaterThan(*f.MaxPrice) {
				continue
			}
			filtered = append(filtered, p)
		}
		out = filtered
	}

	switch f.SortBy {
	case "name":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	case "price-low":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.LessThan(out[j].Price) })
	case "price-high":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price.GreaterThan(out[j].Price) })
	case "category":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	}

	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}

	return out
}
