package dal

import (
	"context"
	"log"
	"time"

	"paytm-txn-api/internal/config"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client
var RedisCtx = context.Background()

// InitRedis 初始化redis客户端。
// 这里只承载订单防重守卫（SETNX），超时压短，守卫慢不能拖住下单主链路。
func InitRedis() {
	c := config.C.Redis
	poolSize := c.PoolSize
	if poolSize <= 0 {
		poolSize = 10
	}
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         c.Addr,
		Password:     c.Password,
		DB:           c.DB,
		PoolSize:     poolSize,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  500 * time.Millisecond,
		WriteTimeout: 500 * time.Millisecond,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Fatalf("redis ping failed: %v", err)
	}
}
