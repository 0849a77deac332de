// Package redis 상점 이름 캐시의 Redis 구현입니다.
package redis

import (
	"context"

	"github.com/darkkaiser/shop-compare-server/internal/config"
	apperrors "github.com/darkkaiser/shop-compare-server/internal/pkg/errors"
	applog "github.com/darkkaiser/shop-compare-server/pkg/log"
	goredis "github.com/redis/go-redis/v9"
)

const component = "store.redis"

// NewClient 설정으로 클라이언트를 만들고 연결을 확인합니다.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "Redis 접속 URL을 해석할 수 없습니다")
	}
	opts.DialTimeout = cfg.DialTimeout
	opts.ReadTimeout = cfg.ReadTimeout
	opts.WriteTimeout = cfg.WriteTimeout

	client := goredis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "Redis 연결 확인에 실패했습니다")
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"addr": opts.Addr,
		"db":   opts.DB,
	}).Info("Redis 연결 완료")

	return client, nil
}
