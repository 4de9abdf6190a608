package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"bookstore-catalog/pkg/cache"
)

// CachedPort is a read-through cache in front of another Port. Only
// single-row lookups are cached; every write invalidates the row's key.
// Cache failures are logged and never surface to the caller.
type CachedPort[E Entity[E]] struct {
	inner  Port[E]
	cache  cache.Cache
	prefix string
	ttl    time.Duration
	newE   func() E
	log    zerolog.Logger
}

func NewCachedPort[E Entity[E]](
	inner Port[E],
	c cache.Cache,
	prefix string,
	ttl time.Duration,
	newEntity func() E,
	log zerolog.Logger,
) *CachedPort[E] {
	return &CachedPort[E]{
		inner:  inner,
		cache:  c,
		prefix: prefix,
		ttl:    ttl,
		newE:   newEntity,
		log:    log,
	}
}

func (p *CachedPort[E]) key(id int64) string {
	return fmt.Sprintf("%s:%d", p.prefix, id)
}

func (p *CachedPort[E]) SelectAll(ctx context.Context) ([]E, error) {
	return p.inner.SelectAll(ctx)
}

func (p *CachedPort[E]) SelectByID(ctx context.Context, id int64) (E, bool, error) {
	key := p.key(id)

	cached := p.newE()
	hit, err := p.cache.Get(ctx, key, cached)
	if err != nil {
		p.log.Warn().Err(err).Str("key", key).Msg("cache read failed")
	} else if hit {
		return cached, true, nil
	}

	e, found, err := p.inner.SelectByID(ctx, id)
	if err != nil || !found {
		return e, found, err
	}

	if err := p.cache.Set(ctx, key, e, p.ttl); err != nil {
		p.log.Warn().Err(err).Str("key", key).Msg("cache write failed")
	}
	return e, true, nil
}

func (p *CachedPort[E]) Exists(ctx context.Context, id int64) (bool, error) {
	return p.inner.Exists(ctx, id)
}

func (p *CachedPort[E]) Stage(ctx context.Context, entity E) (Staged, error) {
	staged, err := p.inner.Stage(ctx, entity)
	if err != nil {
		return nil, err
	}
	return &cachedStaged[E]{Staged: staged, port: p}, nil
}

func (p *CachedPort[E]) UpdateRow(ctx context.Context, entity E) (bool, error) {
	ok, err := p.inner.UpdateRow(ctx, entity)
	p.invalidate(ctx, entity.EntityID())
	return ok, err
}

func (p *CachedPort[E]) DeleteRow(ctx context.Context, id int64) (bool, error) {
	ok, err := p.inner.DeleteRow(ctx, id)
	p.invalidate(ctx, id)
	return ok, err
}

func (p *CachedPort[E]) invalidate(ctx context.Context, id int64) {
	if err := p.cache.Delete(ctx, p.key(id)); err != nil {
		p.log.Warn().Err(err).Int64("id", id).Msg("cache invalidation failed")
	}
}

type cachedStaged[E Entity[E]] struct {
	Staged
	port *CachedPort[E]
}

// Commit drops any stale entry left under the reserved id.
func (s *cachedStaged[E]) Commit(ctx context.Context) error {
	if err := s.Staged.Commit(ctx); err != nil {
		return err
	}
	s.port.invalidate(ctx, s.ID())
	return nil
}
