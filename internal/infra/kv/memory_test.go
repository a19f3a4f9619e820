package kv

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_SetGetDelete(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, s.Set(ctx, "k", []byte(`{"a":1}`)))

	v, ok, err := s.Get(ctx, "k")
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"a":1}`), v)

	assert.NoError(t, s.Delete(ctx, "k"))
	_, ok, _ = s.Get(ctx, "k")
	assert.False(t, ok)
}

// 無いキーの削除はエラーにならない
func TestMemory_DeleteAbsentIsNoop(t *testing.T) {
	s := NewMemory()

	assert.NoError(t, s.Delete(context.Background(), "nope"))
}

// 返り値や渡した値を書き換えても内部は汚れない
func TestMemory_CopySemantics(t *testing.T) {
	s := NewMemory()
	ctx := context.Background()

	in := []byte("hello")
	assert.NoError(t, s.Set(ctx, "k", in))
	in[0] = 'X'

	v, _, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("hello"), v)

	v[0] = 'Y'
	v2, _, _ := s.Get(ctx, "k")
	assert.Equal(t, []byte("hello"), v2)
}
