package model

import "github.com/shopspring/decimal"

func init() {
	// 金額はJSONでは数値のまま出す（"8.97" ではなく 8.97）
	decimal.MarshalJSONWithoutQuotes = true
}

// 寸法（インチ）
type Dimensions struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Productはカタログの参照データ。読み取り専用で、起動時に静的ロードされる。
type Product struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	CategoryID     string            `json:"categoryId"`
	Category       string            `json:"category"` // カテゴリ名（表示用の非正規化）
	ImageURL       string            `json:"imageUrl"`
	Images         []string          `json:"images"`
	InStock        bool              `json:"inStock"`
	StockQuantity  int               `json:"stockQuantity"`
	Specifications map[string]string `json:"specifications"`
	Weight         *float64          `json:"weight,omitempty"`
	Dimensions     *Dimensions       `json:"dimensions,omitempty"`
	Brand          string            `json:"brand,omitempty"`
	SKU            string            `json:"sku"`
	Tags           []string          `json:"tags"`
}
