package catalog

import "context"

// Source is the upstream that owns sessions, equipment and food
// listings. Courts are static and never fetched.
type Source interface {
	TrainingSessions(ctx context.Context) ([]TrainingSession, error)
	Equipment(ctx context.Context) ([]CatalogItem, error)
	Food(ctx context.Context) ([]CatalogItem, error)
}

const (
	keySessions  = "catalog:sessions"
	keyEquipment = "catalog:equipment"
	keyFood      = "catalog:food"
)

// Catalog serves listings cache-aside: short TTL, refetched from the
// backend on miss. Enrollment invalidates the session list so capacity
// counts stay authoritative.
type Catalog struct {
	src   Source
	cache *Cache
}

func New(src Source, cache *Cache) *Catalog {
	return &Catalog{src: src, cache: cache}
}

func (c *Catalog) Sessions(ctx context.Context) ([]TrainingSession, error) {
	var out []TrainingSession
	if c.cache.Get(ctx, keySessions, &out) {
		return out, nil
	}
	out, err := c.src.TrainingSessions(ctx)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, keySessions, out)
	return out, nil
}

func (c *Catalog) SessionByID(ctx context.Context, id string) (TrainingSession, bool, error) {
	list, err := c.Sessions(ctx)
	if err != nil {
		return TrainingSession{}, false, err
	}
	for _, s := range list {
		if s.ID == id {
			return s, true, nil
		}
	}
	return TrainingSession{}, false, nil
}

func (c *Catalog) Equipment(ctx context.Context) ([]CatalogItem, error) {
	var out []CatalogItem
	if c.cache.Get(ctx, keyEquipment, &out) {
		return out, nil
	}
	out, err := c.src.Equipment(ctx)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, keyEquipment, out)
	return out, nil
}

func (c *Catalog) Food(ctx context.Context) ([]CatalogItem, error) {
	var out []CatalogItem
	if c.cache.Get(ctx, keyFood, &out) {
		return out, nil
	}
	out, err := c.src.Food(ctx)
	if err != nil {
		return nil, err
	}
	_ = c.cache.Set(ctx, keyFood, out)
	return out, nil
}

func (c *Catalog) ItemByID(ctx context.Context, kind, id string) (CatalogItem, bool, error) {
	var list []CatalogItem
	var err error
	if kind == "food" {
		list, err = c.Food(ctx)
	} else {
		list, err = c.Equipment(ctx)
	}
	if err != nil {
		return CatalogItem{}, false, err
	}
	for _, it := range list {
		if it.ID == id {
			return it, true, nil
		}
	}
	return CatalogItem{}, false, nil
}

// InvalidateSessions drops the cached session list, forcing the next
// read back to the backend.
func (c *Catalog) InvalidateSessions(ctx context.Context) error {
	return c.cache.Invalidate(ctx, keySessions)
}

// InvalidateAll drops every cached listing. Staff use this after
// editing prices or stock upstream so the portal stops serving the
// stale copies for the rest of the TTL.
func (c *Catalog) InvalidateAll(ctx context.Context) error {
	for _, key := range []string{keySessions, keyEquipment, keyFood} {
		if err := c.cache.Invalidate(ctx, key); err != nil {
			return err
		}
	}
	return nil
}
