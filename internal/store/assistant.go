package store

import (
	"context"
	"encoding/json"
)

// ConfigKey is the fixed key the single assistant configuration lives under.
const ConfigKey = "ASSISTANT_CONFIG"

// AssistantConfigStore wraps a KV with the one record this application
// persists. It hands JSON through opaquely; validation belongs to the
// write endpoint.
type AssistantConfigStore struct {
	kv KV
}

func NewAssistantConfigStore(kv KV) *AssistantConfigStore {
	return &AssistantConfigStore{kv: kv}
}

// Load returns the raw stored record. found is false when the assistant has
// never been configured; that is not an error.
func (s *AssistantConfigStore) Load(ctx context.Context) (raw json.RawMessage, found bool, err error) {
	val, err := s.kv.Get(ctx, ConfigKey)
	if err == ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return json.RawMessage(val), true, nil
}

// Save replaces the record wholesale. There is no merge: concurrent writers
// race at store granularity and the last write wins.
func (s *AssistantConfigStore) Save(ctx context.Context, raw json.RawMessage) error {
	return s.kv.Put(ctx, ConfigKey, raw)
}
