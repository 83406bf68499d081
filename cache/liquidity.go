package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	// LiquidityCacheKeyPrefix Redis 缓存 key 前缀
	LiquidityCacheKeyPrefix = "liquidity:store:"
	// 全网汇总使用的伪门店 ID
	allStoresKey = 0
	// LiquidityCacheTTL 缓存过期时间（1分钟，库存变动频繁）
	LiquidityCacheTTL = time.Minute
)

// CachedLiquidityItem 单条库存流动性评分
type CachedLiquidityItem struct {
	InventoryID int64   `json:"inventory_id"`
	StoreID     int64   `json:"store_id"`
	ProductID   int64   `json:"product_id"`
	Score       float64 `json:"score"`
	Status      string  `json:"status"`
}

// CachedLiquiditySummary 缓存的流动性汇总
type CachedLiquiditySummary struct {
	Items       []CachedLiquidityItem `json:"items"`
	ComputedAt  time.Time             `json:"computed_at"`
	StoreFilter int64                 `json:"store_filter"`
}

// LiquidityCache 库存流动性评分缓存接口
type LiquidityCache interface {
	// Get 获取门店流动性汇总（storeID 为 0 表示全网）
	Get(ctx context.Context, storeID int64) (*CachedLiquiditySummary, error)
	// Set 写入门店流动性汇总
	Set(ctx context.Context, storeID int64, summary *CachedLiquiditySummary) error
	// Invalidate 删除门店流动性缓存（库存调拨后调用）
	Invalidate(ctx context.Context, storeIDs ...int64) error
}

// redisLiquidityCache Redis 实现的流动性缓存
type redisLiquidityCache struct {
	client *redis.Client
}

// NewLiquidityCache 创建流动性缓存
func NewLiquidityCache(redisAddr string, redisPassword string) (LiquidityCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
	})

	// 测试连接
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}

	return &redisLiquidityCache{client: client}, nil
}

// cacheKey 生成缓存 key
func cacheKey(storeID int64) string {
	return fmt.Sprintf("%s%d", LiquidityCacheKeyPrefix, storeID)
}

// Get 获取流动性缓存
func (c *redisLiquidityCache) Get(ctx context.Context, storeID int64) (*CachedLiquiditySummary, error) {
	data, err := c.client.Get(ctx, cacheKey(storeID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // 缓存不存在
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var summary CachedLiquiditySummary
	if err := json.Unmarshal(data, &summary); err != nil {
		return nil, fmt.Errorf("unmarshal cached summary failed: %w", err)
	}

	return &summary, nil
}

// Set 写入流动性缓存
func (c *redisLiquidityCache) Set(ctx context.Context, storeID int64, summary *CachedLiquiditySummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshal summary failed: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey(storeID), data, LiquidityCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

// Invalidate 删除流动性缓存，同时清理全网汇总
func (c *redisLiquidityCache) Invalidate(ctx context.Context, storeIDs ...int64) error {
	keys := []string{cacheKey(allStoresKey)}
	for _, id := range storeIDs {
		keys = append(keys, cacheKey(id))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}

	return nil
}
