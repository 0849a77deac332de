package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

const shopNameKeyPrefix = "shopcmp:shop_name:"

// cmdable ShopNameCache가 사용하는 최소한의 명령 집합입니다. *goredis.Client가 만족합니다.
type cmdable interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
	Ping(ctx context.Context) *goredis.StatusCmd
}

// ShopNameCache contract.ShopNameCache의 Redis 구현체입니다.
// 항목은 ttl이 지나면 만료되므로 무효화에 실패하더라도 오래된 이름이 계속 남지는 않습니다.
type ShopNameCache struct {
	client cmdable
	ttl    time.Duration
}

func NewShopNameCache(client cmdable, ttl time.Duration) *ShopNameCache {
	return &ShopNameCache{client: client, ttl: ttl}
}

func shopNameKey(shopID int64) string {
	return shopNameKeyPrefix + strconv.FormatInt(shopID, 10)
}

func (c *ShopNameCache) Get(ctx context.Context, shopID int64) (string, bool, error) {
	name, err := c.client.Get(ctx, shopNameKey(shopID)).Result()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, apperrors.Wrap(err, apperrors.Unavailable, "상점 이름 캐시 조회 실패")
	}
	return name, true, nil
}

func (c *ShopNameCache) Set(ctx context.Context, shopID int64, name string) error {
	if err := c.client.Set(ctx, shopNameKey(shopID), name, c.ttl).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.Unavailable, "상점 이름 캐시 저장 실패")
	}
	return nil
}

func (c *ShopNameCache) Delete(ctx context.Context, shopID int64) error {
	if err := c.client.Del(ctx, shopNameKey(shopID)).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.Unavailable, "상점 이름 캐시 삭제 실패")
	}
	return nil
}

// Ping 헬스체크용 연결 확인입니다.
func (c *ShopNameCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return apperrors.Wrap(err, apperrors.Unavailable, "Redis 연결 확인 실패")
	}
	return nil
}
