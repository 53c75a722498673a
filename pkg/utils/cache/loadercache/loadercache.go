package loadercache

import (
	"context"
	"sync"
	"time"

	"github.com/Melanie472/f1laps/log"
	"github.com/Melanie472/f1laps/pkg/utils/cache"
)

// based on github.com/kittpat1413/go-common/framework/cache/localcache/localcache.go

type (
	Option[K comparable, V any] func(*config[K, V])
	item[T any]                 struct {
		data    T
		expires *time.Time
	}
	LoaderFunc[K comparable, V any] func(context.Context, K) (*V, error)
	config[K comparable, V any]     struct {
		expiration time.Duration
		loader     LoaderFunc[K, V]
		l          *log.Logger
	}
	loaderCache[K comparable, V any] struct {
		mutex  sync.Mutex
		items  map[K]item[*V]
		config *config[K, V]
	}
)

// WithExpiration sets the lifetime of loaded entries.
// A zero value (the default) keeps entries until they are invalidated.
func WithExpiration[K comparable, V any](expiration time.Duration) Option[K, V] {
	return func(c *config[K, V]) {
		c.expiration = expiration
	}
}

func WithLoader[K comparable, V any](lf LoaderFunc[K, V]) Option[K, V] {
	return func(c *config[K, V]) {
		c.loader = lf
	}
}

func WithLogger[K comparable, V any](arg *log.Logger) Option[K, V] {
	return func(c *config[K, V]) {
		c.l = arg
	}
}

func New[K comparable, V any](opts ...Option[K, V]) cache.Cache[K, V] {
	c := &config[K, V]{
		l: log.Default().Named("cache"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return &loaderCache[K, V]{
		mutex:  sync.Mutex{},
		items:  make(map[K]item[*V]),
		config: c,
	}
}

// Get returns the cached value for key, loading it on first access.
// Failed loads are not cached.
func (c *loaderCache[K, V]) Get(ctx context.Context, key K) (*V, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if cacheItem, ok := c.items[key]; ok {
		if cacheItem.expires != nil && cacheItem.expires.Before(time.Now()) {
			delete(c.items, key)
			return c.load(ctx, key)
		}
		return cacheItem.data, nil
	}
	return c.load(ctx, key)
}

func (c *loaderCache[K, V]) load(ctx context.Context, key K) (*V, error) {
	if c.config.loader == nil {
		return nil, cache.ErrCacheMiss
	}
	c.config.l.Debug("loaderCache.load", log.Any("key", key))
	v, err := c.config.loader(ctx, key)
	if err != nil {
		c.config.l.Error("error loading entry", log.ErrorField(err))
		return nil, err
	}
	var expires *time.Time
	if c.config.expiration > 0 {
		e := time.Now().Add(c.config.expiration)
		expires = &e
	}
	c.items[key] = item[*V]{data: v, expires: expires}
	return v, nil
}

func (c *loaderCache[K, V]) Invalidate(ctx context.Context, key K) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.config.l.Debug("Invalidate", log.Any("key", key))

	delete(c.items, key)
	c.config.l.Debug("Invalidate", log.Int("remain items", len(c.items)))
}
