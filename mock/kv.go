package mock

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/folio"
)

// Compile-time interface verification.
var _ folio.KV = (*KV)(nil)

// KV is a mock implementation of folio.KV.
type KV struct {
	GetFn    func(ctx context.Context, key string) (json.RawMessage, error)
	SetFn    func(ctx context.Context, key string, value json.RawMessage) error
	RemoveFn func(ctx context.Context, key string) error
}

func (kv *KV) Get(ctx context.Context, key string) (json.RawMessage, error) {
	return kv.GetFn(ctx, key)
}

func (kv *KV) Set(ctx context.Context, key string, value json.RawMessage) error {
	return kv.SetFn(ctx, key, value)
}

func (kv *KV) Remove(ctx context.Context, key string) error {
	return kv.RemoveFn(ctx, key)
}
