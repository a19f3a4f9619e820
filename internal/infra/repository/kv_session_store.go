package repository

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/model"
	domainrepo "storefront/internal/repository"
)

type kvSessionStore struct {
	store domainrepo.KVStore
}

// DI
func NewKVSessionStore(store domainrepo.KVStore) domainrepo.SessionStore {
	return &kvSessionStore{store: store}
}

// Loadは保存済みスナップショットを復元する。
// 壊れたJSONは消してnil（匿名）を返す。
func (r *kvSessionStore) Load(ctx context.Context) (*model.User, error) {
	b, ok, err := r.store.Get(ctx, keySessionUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var u model.User
	if err := json.Unmarshal(b, &u); err != nil {
		_ = r.store.Delete(ctx, keySessionUser)
		return nil, nil
	}
	return &u, nil
}

func (r *kvSessionStore) Save(ctx context.Context, user model.User) error {
	b, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, keySessionUser, b)
}

func (r *kvSessionStore) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, keySessionUser)
}
