package dataset

import (
	"context"
	"time"

	"github.com/Melanie472/f1laps/log"
	"github.com/Melanie472/f1laps/pkg/utils/cache"
	"github.com/Melanie472/f1laps/pkg/utils/cache/loadercache"
)

type (
	LoaderOption func(*Loader)
	// Loader memoizes Load per query for the lifetime of the process.
	Loader struct {
		src        Source
		query      Query
		expiration time.Duration
		cache      cache.Cache[Query, Dataset]
	}
)

func WithQuery(arg Query) LoaderOption {
	return func(l *Loader) {
		l.query = arg
	}
}

// WithExpiration makes the loader refetch after d. Zero means never.
func WithExpiration(d time.Duration) LoaderOption {
	return func(l *Loader) {
		l.expiration = d
	}
}

func NewLoader(src Source, opts ...LoaderOption) *Loader {
	l := &Loader{src: src}
	for _, opt := range opts {
		opt(l)
	}
	l.cache = loadercache.New(
		loadercache.WithLoader[Query, Dataset](func(ctx context.Context, q Query) (*Dataset, error) {
			return Load(ctx, l.src, q)
		}),
		loadercache.WithExpiration[Query, Dataset](l.expiration),
		loadercache.WithLogger[Query, Dataset](log.Default().Named("dataset.cache")),
	)
	return l
}

func (l *Loader) Query() Query {
	return l.query
}

// Dataset returns the dataset of the configured query, fetching it on first use.
func (l *Loader) Dataset(ctx context.Context) (*Dataset, error) {
	return l.cache.Get(ctx, l.query)
}
