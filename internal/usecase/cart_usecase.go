package usecase

import (
	"errors"
	"sync"

	"storefront/internal/cart"
	"storefront/internal/catalog"
	"storefront/internal/domain/model"
)

// カタログに無い商品IDを追加しようとした
var ErrProductNotFound = errors.New("Product not found")

// CartUsecaseは1プロセスに1つのカート。
// エンジン（純粋なreducer）にactionを流し、結果の状態を差し替えるだけ。
// mutexで直列化するので外からは各操作がアトミックに見える。
type CartUsecase struct {
	mu      sync.Mutex
	engine  *cart.Engine
	catalog *catalog.Store
	state   model.Cart
}

func NewCartUsecase(engine *cart.Engine, cat *catalog.Store) *CartUsecase {
	return &CartUsecase{
		engine:  engine,
		catalog: cat,
		state:   cart.Initial(),
	}
}

// Getは現在のカート。
func (u *CartUsecase) Get() model.Cart {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.state
}

// AddToCartは商品IDで追加する（HTTP向けの入口）。
// 商品の解決だけがエラーになり得る。エンジン自体は必ず成功する。
func (u *CartUsecase) AddToCart(productID string, quantity int) (model.Cart, error) {
	p, ok := u.catalog.ProductByID(productID)
	if !ok {
		return u.Get(), ErrProductNotFound
	}
	return u.dispatch(cart.AddToCart{Product: p, Quantity: quantity}), nil
}

// AddProductはProductを直接渡す入口（エンジンの契約そのまま）。
func (u *CartUsecase) AddProduct(p model.Product, quantity int) model.Cart {
	return u.dispatch(cart.AddToCart{Product: p, Quantity: quantity})
}

func (u *CartUsecase) UpdateQuantity(productID string, quantity int) model.Cart {
	return u.dispatch(cart.UpdateQuantity{ProductID: productID, Quantity: quantity})
}

func (u *CartUsecase) Remove(productID string) model.Cart {
	return u.dispatch(cart.RemoveFromCart{ProductID: productID})
}

func (u *CartUsecase) Clear() model.Cart {
	return u.dispatch(cart.ClearCart{})
}

func (u *CartUsecase) dispatch(a cart.Action) model.Cart {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.state = u.engine.Reduce(u.state, a)
	return u.state
}
