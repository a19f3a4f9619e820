package repository

import (
	"context"

	"storefront/internal/domain/model"
)

// UserDirectoryは擬似DB（全ユーザーの永続コレクション）への約束。
// モック認証エンジンだけが使う。
type UserDirectory interface {
	// 保存順の全件。未初期化・壊れている場合は空
	List(ctx context.Context) ([]model.UserRecord, error)
	// 末尾に追加
	Append(ctx context.Context, rec model.UserRecord) error
	// ID一致の1件を置き換える。見つからなければ found=false
	Update(ctx context.Context, rec model.UserRecord) (found bool, err error)
}

// SessionStoreは現在セッションのスナップショット1件の保存・復元。
type SessionStore interface {
	// 未保存・壊れている場合は nil（匿名扱い）
	Load(ctx context.Context) (*model.User, error)
	Save(ctx context.Context, user model.User) error
	Clear(ctx context.Context) error
}
