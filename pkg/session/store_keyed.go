package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/alexedwards/scs/v2"
)

// KeyedStore hides raw cookie tokens from the backing store. Every token
// is replaced by HMAC-SHA256(secret, token) before it reaches the store.
type KeyedStore struct {
	inner scs.Store
	key   []byte
}

var _ scs.CtxStore = (*KeyedStore)(nil)

func NewKeyedStore(inner scs.Store, secret string) *KeyedStore {
	return &KeyedStore{inner: inner, key: []byte(secret)}
}

func (s *KeyedStore) id(token string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func (s *KeyedStore) Find(token string) ([]byte, bool, error) {
	return s.FindCtx(context.Background(), token)
}

func (s *KeyedStore) Commit(token string, b []byte, expiry time.Time) error {
	return s.CommitCtx(context.Background(), token, b, expiry)
}

func (s *KeyedStore) Delete(token string) error {
	return s.DeleteCtx(context.Background(), token)
}

func (s *KeyedStore) FindCtx(ctx context.Context, token string) ([]byte, bool, error) {
	if cs, ok := s.inner.(scs.CtxStore); ok {
		return cs.FindCtx(ctx, s.id(token))
	}
	return s.inner.Find(s.id(token))
}

func (s *KeyedStore) CommitCtx(ctx context.Context, token string, b []byte, expiry time.Time) error {
	if cs, ok := s.inner.(scs.CtxStore); ok {
		return cs.CommitCtx(ctx, s.id(token), b, expiry)
	}
	return s.inner.Commit(s.id(token), b, expiry)
}

func (s *KeyedStore) DeleteCtx(ctx context.Context, token string) error {
	if cs, ok := s.inner.(scs.CtxStore); ok {
		return cs.DeleteCtx(ctx, s.id(token))
	}
	return s.inner.Delete(s.id(token))
}
