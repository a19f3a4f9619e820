package handler

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/usecase"
)

const scopeKey = "storefront_scope"

// Scopeはアプリのrootで1回だけ組み立てるエンジン一式のハンドル。
// セッションとカートはプロセスに1つなので、隠れたグローバルにせず
// これを明示的に配って使う。
type Scope struct {
	Auth *usecase.AuthUsecase
	Cart *usecase.CartUsecase
}

// WithScopeは配下の全ルートにScopeを配るミドルウェア。
func WithScope(s *Scope) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(scopeKey, s)
			return next(c)
		}
	}
}

// ScopeFromは配られたScopeを取り出す。
// WithScopeの外で呼ぶのは配線ミス（契約違反）なので即panicし、
// 開発中に気づけるようにする。呼び出し側での回復は想定しない。
func ScopeFrom(c echo.Context) *Scope {
	s, ok := c.Get(scopeKey).(*Scope)
	if !ok {
		panic("handler: scope not installed; register routes behind WithScope")
	}
	return s
}
