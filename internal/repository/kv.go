package repository

import "context"

// KVStoreは文字列キーのKey-Valueポート。値はJSONのバイト列。
// エンジン側はこの約束だけに依存するので、裏はメモリ・ファイル・
// Redis・RDBのどれでも差し替えられる。
type KVStore interface {
	// キーが無い場合は ok=false（エラーではない）
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
