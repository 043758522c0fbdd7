package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// FlowStore keeps flow snapshots in Redis, TTL-bounded. The portal has
// no durable state: an expired flow simply starts over.
type FlowStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewFlowStore(client *redis.Client, ttl time.Duration) *FlowStore {
	return &FlowStore{client: client, ttl: ttl}
}

func flowKey(userID string) string { return "flow:" + userID }

func (s *FlowStore) Load(ctx context.Context, userID string) (*Flow, error) {
	data, err := s.client.Get(ctx, flowKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return NewFlow(userID), nil
	}
	if err != nil {
		return nil, err
	}
	var f Flow
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		// corrupt snapshot: start over rather than fail the request
		return NewFlow(userID), nil
	}
	return &f, nil
}

func (s *FlowStore) Save(ctx context.Context, f *Flow) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, flowKey(f.UserID), data, s.ttl).Err()
}

func (s *FlowStore) Delete(ctx context.Context, userID string) error {
	return s.client.Del(ctx, flowKey(userID)).Err()
}

// Update runs a load-mutate-save round trip.
func (s *FlowStore) Update(ctx context.Context, userID string, fn func(*Flow) error) (*Flow, error) {
	f, err := s.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(f); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// ApplyIfCurrent applies fn only when the stored flow is still at gen;
// a flow that moved on means the caller's work is stale and is dropped.
func (s *FlowStore) ApplyIfCurrent(ctx context.Context, userID string, gen uint64, fn func(*Flow)) (*Flow, error) {
	return s.Update(ctx, userID, func(f *Flow) error {
		return f.ApplyAt(gen, fn)
	})
}
