package model

import "github.com/shopspring/decimal"

// CartItemはカートの明細1行。
// Priceは追加時点の単価スナップショットで、あとからカタログ側の価格が
// 変わっても更新されない。
type CartItem struct {
	ID        string          `json:"id"` // 追加時に生成。カート内でユニーク
	ProductID string          `json:"productId"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Cartは明細（追加順）と導出合計。
// TotalItems / TotalPriceは毎回Itemsから再計算する。直接書き換えない。
type Cart struct {
	Items      []CartItem      `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice decimal.Decimal `json:"totalPrice"`
}
