// Package cartstore keeps in-flight session carts in Redis.
//
// Carts are short-lived working state, so they live outside the
// transactional database in an expiring key per client session.
package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"appcenar/internal/core/domain/model/cart"
	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const cartKeyPrefix = "cart:"

// DefaultTTL is how long an untouched cart survives before expiring.
const DefaultTTL = 24 * time.Hour

// cartPayload is the stored JSON shape of one cart.
type cartPayload struct {
	MerchantID string    `json:"merchant_id"`
	ItemIDs    []string  `json:"item_ids"`
	CreatedAt  time.Time `json:"created_at"`
}

// Store implements CartStore on top of a Redis client.
type Store struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStore creates a cart store. A non-positive ttl falls back to DefaultTTL.
func NewStore(client *redis.Client, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{client: client, ttl: ttl}
}

// Get retrieves the session's current cart.
func (s *Store) Get(ctx context.Context, sessionID kernel.UUID) (*cart.Cart, error) {
	if err := sessionID.Validate(); err != nil {
		return nil, err
	}

	raw, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.NewObjectNotFoundError("cart", sessionID.String())
		}
		return nil, err
	}

	var payload cartPayload
	if err = json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("corrupt cart payload: %w", err)
	}

	return toDomain(payload)
}

// Set replaces the session's current cart and refreshes its expiry.
func (s *Store) Set(ctx context.Context, sessionID kernel.UUID, c *cart.Cart) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}
	if err := c.Validate(); err != nil {
		return err
	}

	raw, err := json.Marshal(fromDomain(c))
	if err != nil {
		return err
	}

	return s.client.Set(ctx, cartKey(sessionID), raw, s.ttl).Err()
}

// Clear removes the session's cart. Clearing an absent cart is a no-op.
func (s *Store) Clear(ctx context.Context, sessionID kernel.UUID) error {
	if err := sessionID.Validate(); err != nil {
		return err
	}

	return s.client.Del(ctx, cartKey(sessionID)).Err()
}

func cartKey(sessionID kernel.UUID) string {
	return cartKeyPrefix + sessionID.String()
}

func fromDomain(c *cart.Cart) cartPayload {
	itemIDs := c.ItemIDs()
	ids := make([]string, 0, len(itemIDs))
	for _, id := range itemIDs {
		ids = append(ids, id.String())
	}

	return cartPayload{
		MerchantID: c.MerchantID().String(),
		ItemIDs:    ids,
		CreatedAt:  c.CreatedAt(),
	}
}

func toDomain(payload cartPayload) (*cart.Cart, error) {
	merchantID, err := kernel.UUIDFromString(payload.MerchantID)
	if err != nil {
		return nil, err
	}

	itemIDs := make([]kernel.UUID, 0, len(payload.ItemIDs))
	for _, raw := range payload.ItemIDs {
		id, idErr := kernel.UUIDFromString(raw)
		if idErr != nil {
			return nil, idErr
		}
		itemIDs = append(itemIDs, id)
	}

	return cart.NewCart(merchantID, itemIDs, payload.CreatedAt)
}
