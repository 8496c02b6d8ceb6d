package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"lumi_noir_server/config"
	"lumi_noir_server/structs"
	"lumi_noir_server/structs/tables"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
	redisCtx    = context.Background()
)

// CacheService provides Redis caching functionality with connection pooling and retry logic
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	return &CacheService{
		logger: logger,
		config: cfg,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			// Connection pool settings
			PoolSize:     cfg.Cache.PoolSize,
			MinIdleConns: cfg.Cache.MinIdleConns,

			// Timeouts
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,

			// Retry settings
			MaxRetries: cfg.Cache.MaxRetries,
		})
	})
	return redisClient
}

// Close closes the Redis connection pool
func (cs *CacheService) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

// withRetry executes a Redis operation with exponential backoff retry logic
func (cs *CacheService) withRetry(operation func() error, maxRetries int) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		// Don't retry on the last attempt
		if attempt == maxRetries {
			break
		}

		// Only retry on network/connection errors, not on logical errors like key not found
		if !isRetryableRedisError(err) {
			return err
		}

		maxBackoff := 2000 // max 2000ms = 2s
		base := 100        // 100ms base

		backoff := base * (1 << attempt) // exponential
		backoff = min(backoff, maxBackoff)

		// add jitter ±50%
		jitterBytes := make([]byte, 4)
		_, err = rand.Read(jitterBytes)
		if err != nil {
			// fallback to no jitter if random fails
			time.Sleep(time.Duration(backoff) * time.Millisecond)
			continue
		}
		jitter := int(uint32(jitterBytes[0])<<24 | uint32(jitterBytes[1])<<16 | uint32(jitterBytes[2])<<8 | uint32(jitterBytes[3]))
		jitter = jitter % (backoff/2 + 1)
		backoffWithJitter := backoff/2 + jitter

		time.Sleep(time.Duration(backoffWithJitter) * time.Millisecond)
	}

	return fmt.Errorf("redis operation failed after %d retries: %w", maxRetries, lastErr)
}

// isRetryableRedisError determines if an error is worth retrying
func isRetryableRedisError(err error) bool {
	if err == nil {
		return false
	}

	// Don't retry on nil results (key not found)
	if err == redis.Nil {
		return false
	}

	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}

// Set sets a key with TTL and automatic retry logic
func (cs *CacheService) Set(key string, value any, ttl time.Duration) error {
	return cs.withRetry(func() error {
		return cs.client.Set(redisCtx, key, value, ttl).Err()
	}, 3)
}

// Get retrieves a key with automatic retry logic
func (cs *CacheService) Get(key string) (string, error) {
	var result string

	err := cs.withRetry(func() error {
		val, err := cs.client.Get(redisCtx, key).Result()
		if err == redis.Nil {
			result = ""
			return nil // Don't retry on key not found
		}
		if err != nil {
			return err
		}
		result = val
		return nil
	}, 3)

	if err != nil {
		return "", err
	}

	return result, nil
}

// Delete removes a key with automatic retry logic
func (cs *CacheService) Delete(key string) error {
	return cs.withRetry(func() error {
		return cs.client.Del(redisCtx, key).Err()
	}, 3)
}

// GetBytes retrieves a raw value, returning nil for a missing key.
func (cs *CacheService) GetBytes(ctx context.Context, key string) ([]byte, error) {
	var result []byte

	err := cs.withRetry(func() error {
		val, err := cs.client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			result = nil
			return nil
		}
		if err != nil {
			return err
		}
		result = val
		return nil
	}, 3)

	if err != nil {
		return nil, err
	}
	return result, nil
}

// SetBytes stores a raw value without expiry.
func (cs *CacheService) SetBytes(ctx context.Context, key string, data []byte) error {
	return cs.withRetry(func() error {
		return cs.client.Set(ctx, key, data, 0).Err()
	}, 3)
}

// DeleteKey removes a key using the caller's context.
func (cs *CacheService) DeleteKey(ctx context.Context, key string) error {
	return cs.withRetry(func() error {
		return cs.client.Del(ctx, key).Err()
	}, 3)
}

// BlacklistToken adds a token's jti to the blacklist with expiration and retry logic
func (cs *CacheService) BlacklistToken(jti uuid.UUID, exp time.Time) error {
	ttl := cs.config.Auth.AccessTokenExpiry
	if exp.After(time.Now()) {
		ttl = time.Until(exp)
	}

	key := fmt.Sprintf("blacklist:%s", jti)
	return cs.Set(key, "true", ttl)
}

// IsTokenBlacklisted checks if a JTI exists in Redis with retry logic
func (cs *CacheService) IsTokenBlacklisted(jti uuid.UUID) (bool, error) {
	key := fmt.Sprintf("blacklist:%s", jti.String())
	val, err := cs.Get(key)
	if err != nil {
		return false, err
	}

	return val == "true", nil
}

// IncrementRateLimit atomically increments a rate limit counter
func (cs *CacheService) IncrementRateLimit(ip, endpoint string, ttl time.Duration) (int, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)

	var result int64
	err := cs.withRetry(func() error {
		val, err := cs.client.Incr(redisCtx, key).Result()
		if err != nil {
			return err
		}
		result = val

		// Set expiration only on first increment
		if val == 1 {
			return cs.client.Expire(redisCtx, key, ttl).Err()
		}

		return nil
	}, 3)

	return int(result), err
}

// GetRateLimitStatus returns current rate limit information for debugging
func (cs *CacheService) GetRateLimitStatus(ip, endpoint string) (map[string]any, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)

	var result map[string]any

	err := cs.withRetry(func() error {
		val, err := cs.client.Get(redisCtx, key).Result()
		if err == redis.Nil {
			result = map[string]any{
				"count": 0,
				"ttl":   0,
			}
			return nil
		}
		if err != nil {
			return err
		}

		ttl, err := cs.client.TTL(redisCtx, key).Result()
		if err != nil {
			return err
		}

		count, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid rate limit value: %w", err)
		}

		result = map[string]any{
			"count": count,
			"ttl":   int(ttl.Seconds()),
		}
		return nil
	}, 3)

	return result, err
}

// Ping tests the Redis connection
func (cs *CacheService) Ping() error {
	return cs.withRetry(func() error {
		return cs.client.Ping(redisCtx).Err()
	}, 3)
}

// GetConnectionStats returns Redis connection pool statistics
func (cs *CacheService) GetConnectionStats() map[string]any {
	stats := cs.client.PoolStats()

	return map[string]any{
		"hits":        stats.Hits,
		"misses":      stats.Misses,
		"timeouts":    stats.Timeouts,
		"total_conns": stats.TotalConns,
		"idle_conns":  stats.IdleConns,
		"stale_conns": stats.StaleConns,
	}
}

// ============================================================================
// Product Caching Methods
// ============================================================================

// GetProductList retrieves a cached product list for a storefront view
// (for example "published" or "sale").
func (cs *CacheService) GetProductList(view string) ([]tables.Product, error) {
	key := fmt.Sprintf("products:list:%s", view)

	products, err := getJSON[[]tables.Product](cs, key)
	if err != nil {
		cs.logger.Warn("Failed to get product list from cache", "error", err, "key", key)
		return nil, err
	}

	if products == nil {
		return nil, nil
	}

	return *products, nil
}

// SetProductList caches a storefront product list
func (cs *CacheService) SetProductList(view string, products []tables.Product) error {
	key := fmt.Sprintf("products:list:%s", view)
	return setJSON(cs, key, products, cs.getProductTTL())
}

// GetProductByID retrieves a cached product by ID
func (cs *CacheService) GetProductByID(id string) (*tables.Product, error) {
	key := fmt.Sprintf("product:id:%s", id)

	product, err := getJSON[tables.Product](cs, key)
	if err != nil {
		cs.logger.Warn("Failed to get product from cache", "error", err, "id", id)
		return nil, err
	}

	if product == nil {
		return nil, nil
	}

	return product, nil
}

// SetProductByID caches a product by ID
func (cs *CacheService) SetProductByID(product *tables.Product) error {
	key := fmt.Sprintf("product:id:%s", product.ID.String())
	return setJSON(cs, key, product, cs.getProductTTL())
}

// ============================================================================
// Site Content Caching Methods
// ============================================================================

// contentEntriesKey builds the cache key for a content key's language rows.
// It must stay under the "content:<key>:*" pattern that InvalidateContentCache
// clears.
func contentEntriesKey(key string) string {
	return fmt.Sprintf("content:%s:entries", key)
}

// GetContentEntries retrieves the cached lang -> content map for a key.
func (cs *CacheService) GetContentEntries(key string) (map[string]string, error) {
	entries, err := getJSON[map[string]string](cs, contentEntriesKey(key))
	if err != nil {
		cs.logger.Warn("Failed to get content entries from cache", "error", err, "key", key)
		return nil, err
	}

	if entries == nil {
		return nil, nil
	}

	return *entries, nil
}

// SetContentEntries caches the language rows for a content key
func (cs *CacheService) SetContentEntries(key string, entries map[string]string) error {
	return setJSON(cs, contentEntriesKey(key), entries, cs.getContentTTL())
}

// ============================================================================
// Cache Invalidation Methods
// ============================================================================

// InvalidateProductCaches removes all product-related caches.
// Called when any product is created, updated, or deleted.
func (cs *CacheService) InvalidateProductCaches(productID uuid.UUID) error {
	cs.logger.Info("Invalidating product caches", "product_id", productID)

	if err := cs.Delete(fmt.Sprintf("product:id:%s", productID.String())); err != nil {
		cs.logger.Warn("Failed to delete product ID cache", "product_id", productID, "error", err)
	}

	// Lists may contain this product in any view
	if err := cs.DeletePattern("products:list:*"); err != nil {
		cs.logger.Warn("Failed to delete product list caches", "error", err)
		return err
	}

	return nil
}

// InvalidateContentCache removes cached site content for all languages.
func (cs *CacheService) InvalidateContentCache(key string) error {
	return cs.DeletePattern(fmt.Sprintf("content:%s:*", key))
}

// DeletePattern removes all keys matching a pattern using SCAN
func (cs *CacheService) DeletePattern(pattern string) error {
	return cs.withRetry(func() error {
		var cursor uint64

		for {
			keys, nextCursor, err := cs.client.Scan(redisCtx, cursor, pattern, 100).Result()
			if err != nil {
				return fmt.Errorf("scan failed: %w", err)
			}

			if len(keys) > 0 {
				if err := cs.client.Del(redisCtx, keys...).Err(); err != nil {
					return fmt.Errorf("delete failed: %w", err)
				}
			}

			cursor = nextCursor
			if cursor == 0 {
				break
			}
		}

		return nil
	}, 3)
}

// ============================================================================
// Helper Methods
// ============================================================================

func (cs *CacheService) getProductTTL() time.Duration {
	if cs.config.Cache.ProductTTL > 0 {
		return cs.config.Cache.ProductTTL
	}
	return 5 * time.Minute // fallback default
}

func (cs *CacheService) getContentTTL() time.Duration {
	if cs.config.Cache.ContentTTL > 0 {
		return cs.config.Cache.ContentTTL
	}
	return 10 * time.Minute // content changes rarely
}

func setJSON[T any](cs *CacheService, key string, value T, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return cs.Set(key, data, ttl)
}

func getJSON[T any](cs *CacheService, key string) (*T, error) {
	val, err := cs.Get(key)
	if err != nil {
		return nil, err
	}

	if val == "" {
		return nil, nil // not found in cache
	}

	var result T
	err = json.Unmarshal([]byte(val), &result)
	if err != nil {
		return nil, err
	}

	return &result, nil
}
