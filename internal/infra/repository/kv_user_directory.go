package repository

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/model"
	domainrepo "storefront/internal/repository"
)

// 保存キーのレイアウト。
const (
	keyUserDirectory = "userDirectory"
	keySessionUser   = "currentSessionUser"
)

type kvUserDirectory struct {
	store domainrepo.KVStore
}

// DI
// main.goでこれをnewしてusecaseに注入します。
func NewKVUserDirectory(store domainrepo.KVStore) domainrepo.UserDirectory {
	return &kvUserDirectory{store: store}
}

// 全件読む。未初期化や壊れたJSONは空扱い（エラーにしない）。
func (r *kvUserDirectory) List(ctx context.Context) ([]model.UserRecord, error) {
	b, ok, err := r.store.Get(ctx, keyUserDirectory)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []model.UserRecord{}, nil
	}

	var recs []model.UserRecord
	if err := json.Unmarshal(b, &recs); err != nil {
		return []model.UserRecord{}, nil
	}
	return recs, nil
}

func (r *kvUserDirectory) Append(ctx context.Context, rec model.UserRecord) error {
	recs, err := r.List(ctx)
	if err != nil {
		return err
	}
	recs = append(recs, rec)
	return r.save(ctx, recs)
}

// ID一致の1件を置き換える。
func (r *kvUserDirectory) Update(ctx context.Context, rec model.UserRecord) (bool, error) {
	recs, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for i := range recs {
		if recs[i].ID == rec.ID {
			recs[i] = rec
			return true, r.save(ctx, recs)
		}
	}
	return false, nil
}

func (r *kvUserDirectory) save(ctx context.Context, recs []model.UserRecord) error {
	b, err := json.Marshal(recs)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, keyUserDirectory, b)
}
