package cart

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain/model"
)

// Actionはカートへのユーザー操作のタグ付きユニオン。
type Action interface {
	isAction()
}

// 商品をカートに追加（同一商品は数量加算）。
// Quantityの0以下チェックはこの境界では行わない。UpdateQuantity側とは
// 非対称だが、観測された挙動をそのまま保っている。
type AddToCart struct {
	Product  model.Product
	Quantity int
}

// 明細を削除。該当なしはno-op。
type RemoveFromCart struct {
	ProductID string
}

// 数量の絶対値セット。0以下はRemoveFromCartと同じ扱い。
type UpdateQuantity struct {
	ProductID string
	Quantity  int
}

// 空カートに戻す。
type ClearCart struct{}

func (AddToCart) isAction()      {}
func (RemoveFromCart) isAction() {}
func (UpdateQuantity) isAction() {}
func (ClearCart) isAction()      {}

// 明細IDの採番を外から注入する（テストでは連番、本番ではUUID）。
type IDGenerator interface {
	NewID() string
}

// EngineはCartの純粋な状態遷移。永続化はしない。
type Engine struct {
	ids IDGenerator
}

// DI
func NewEngine(ids IDGenerator) *Engine {
	return &Engine{ids: ids}
}

// Initialは空カート。
func Initial() model.Cart {
	return model.Cart{
		Items:      []model.CartItem{},
		TotalItems: 0,
		TotalPrice: decimal.Zero,
	}
}

// Reduceは (state, action) -> state。入力のstateは変更しない。
// どのactionでも必ず成功し、合計はItemsから再計算される。
func (e *Engine) Reduce(state model.Cart, action Action) model.Cart {
	switch a := action.(type) {
	case AddToCart:
		items := make([]model.CartItem, len(state.Items))
		copy(items, state.Items)

		found := false
		for i := range items {
			if items[i].ProductID == a.Product.ID {
				// 既存明細は数量だけ加算。単価スナップショットは保持
				items[i].Quantity += a.Quantity
				found = true
				break
			}
		}
		if !found {
			items = append(items, model.CartItem{
				ID:        e.ids.NewID(),
				ProductID: a.Product.ID,
				Quantity:  a.Quantity,
				Price:     a.Product.Price,
			})
		}
		return recompute(items)

	case RemoveFromCart:
		items := make([]model.CartItem, 0, len(state.Items))
		for _, it := range state.Items {
			if it.ProductID != a.ProductID {
				items = append(items, it)
			}
		}
		return recompute(items)

	case UpdateQuantity:
		if a.Quantity <= 0 {
			// 0以下は削除の意味（1へのクランプはしない）
			return e.Reduce(state, RemoveFromCart{ProductID: a.ProductID})
		}
		items := make([]model.CartItem, len(state.Items))
		copy(items, state.Items)
		for i := range items {
			if items[i].ProductID == a.ProductID {
				items[i].Quantity = a.Quantity
			}
		}
		return recompute(items)

	case ClearCart:
		return Initial()

	default:
		return state
	}
}

// 合計をItemsから計算し直す。
func recompute(items []model.CartItem) model.Cart {
	totalItems := 0
	totalPrice := decimal.Zero
	for _, it := range items {
		totalItems += it.Quantity
		totalPrice = totalPrice.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return model.Cart{
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	}
}
