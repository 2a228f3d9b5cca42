package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/johnquangdev/voicenotes/internal/domain/entities"
	"github.com/johnquangdev/voicenotes/internal/domain/repositories"
)

const resultKeyPrefix = "voicenotes:result:"

// KV is the string key-value contract shared by MemoryStore and RedisStore
type KV interface {
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
	Delete(ctx context.Context, key string) error
}

type resultStore struct {
	kv  KV
	ttl time.Duration
}

// NewResultStore stores the latest bundle per session as JSON in kv
func NewResultStore(kv KV, ttl time.Duration) repositories.ResultStore {
	return &resultStore{kv: kv, ttl: ttl}
}

func resultKey(sessionID string) string {
	return resultKeyPrefix + sessionID
}

// Save overwrites any bundle previously stored for the session
func (s *resultStore) Save(ctx context.Context, sessionID string, bundle *entities.ResultBundle) error {
	if bundle == nil {
		return fmt.Errorf("nil result bundle")
	}

	b, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}

	if err := s.kv.Set(ctx, resultKey(sessionID), string(b), s.ttl); err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// Get returns nil, nil when the session has no stored bundle
func (s *resultStore) Get(ctx context.Context, sessionID string) (*entities.ResultBundle, error) {
	raw, ok, err := s.kv.Get(ctx, resultKey(sessionID))
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var bundle entities.ResultBundle
	if err := json.Unmarshal([]byte(raw), &bundle); err != nil {
		return nil, fmt.Errorf("failed to decode result: %w", err)
	}
	return &bundle, nil
}

// Delete removes the session's bundle
func (s *resultStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.kv.Delete(ctx, resultKey(sessionID)); err != nil {
		return fmt.Errorf("failed to delete result: %w", err)
	}
	return nil
}
