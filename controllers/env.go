package controllers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/kyobegeorge57/falcon-finance/config"
	"github.com/kyobegeorge57/falcon-finance/uploads"
)

// SessionCache is the slice of the redis client the session gate
// needs: marking a session revoked on logout and checking for that
// mark on each request. *redis.Client satisfies it.
type SessionCache interface {
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Env carries the handles every handler needs: the store, the
// optional session cache, configuration and the upload store. It is
// built once at startup and passed in explicitly, never held in a
// package global.
type Env struct {
	DB      *gorm.DB
	Cache   SessionCache
	Cfg     *config.Config
	Uploads *uploads.Store
}
