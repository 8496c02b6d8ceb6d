package services

import (
	"context"
	"fmt"
	"lumi_noir_server/cart"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// CartService exposes the owner-partitioned cart store backed by Redis.
type CartService struct {
	logger *gecho.Logger
	store  *cart.Store
}

// redisCartBackend adapts the cache service to the cart backend interface.
type redisCartBackend struct {
	cache *CacheService
}

func (b *redisCartBackend) Get(ctx context.Context, key string) ([]byte, error) {
	return b.cache.GetBytes(ctx, key)
}

func (b *redisCartBackend) Set(ctx context.Context, key string, data []byte) error {
	return b.cache.SetBytes(ctx, key, data)
}

func (b *redisCartBackend) Delete(ctx context.Context, key string) error {
	return b.cache.DeleteKey(ctx, key)
}

func NewCartService(logger *gecho.Logger, cacheService *CacheService) *CartService {
	store := cart.NewStore(&redisCartBackend{cache: cacheService})

	store.Subscribe(func(owner string, items []cart.Item) {
		logger.Debug("Cart updated", "owner", owner, "lines", len(items))
	})

	return &CartService{
		logger: logger,
		store:  store,
	}
}

// Store returns the underlying cart store.
func (cs *CartService) Store() *cart.Store {
	return cs.store
}

// Items returns the owner's cart lines.
func (cs *CartService) Items(ctx context.Context, owner string) ([]cart.Item, error) {
	return cs.store.Items(ctx, owner)
}

// Add merges an item into the owner's cart.
func (cs *CartService) Add(ctx context.Context, owner string, item cart.Item) ([]cart.Item, error) {
	return cs.store.Add(ctx, owner, item)
}

// SetQuantity updates a line's quantity, removing it below one.
func (cs *CartService) SetQuantity(ctx context.Context, owner string, productID string, quantity int) ([]cart.Item, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}
	return cs.store.SetQuantity(ctx, owner, id, quantity)
}

// Remove deletes a line from the owner's cart.
func (cs *CartService) Remove(ctx context.Context, owner string, productID string) ([]cart.Item, error) {
	id, err := uuid.Parse(productID)
	if err != nil {
		return nil, fmt.Errorf("invalid product id: %w", err)
	}
	return cs.store.Remove(ctx, owner, id)
}

// Clear empties the owner's cart partition only.
func (cs *CartService) Clear(ctx context.Context, owner string) error {
	return cs.store.Clear(ctx, owner)
}
