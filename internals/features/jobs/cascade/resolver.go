// internals/features/jobs/cascade/resolver.go
package cascade

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Option is one dependent-dropdown entry, serialized exactly as the
// AJAX endpoints expose it.
type Option struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Resolver answers "active children of this parent" for the geography and
// taxonomy hierarchies. Reads are side-effect free: an unknown parent id or
// a parent without active children yields an empty slice, never an error.
// A Redis client is optional; nil disables caching.
type Resolver struct {
	DB    *gorm.DB
	Cache *redis.Client
	TTL   time.Duration
}

func NewResolver(db *gorm.DB, cache *redis.Client) *Resolver {
	return &Resolver{DB: db, Cache: cache, TTL: 30 * time.Second}
}

/* ===================== GEOGRAPHY ===================== */

func (r *Resolver) ActiveCities(ctx context.Context, stateID uuid.UUID) ([]Option, error) {
	return r.resolve(ctx, "cascade:cities:"+stateID.String(), func() ([]Option, error) {
		return r.queryOptions(ctx, "cities", "city_id", "city_name",
			"city_state_id = ? AND city_is_active = ?", stateID, true)
	})
}

/* ===================== TAXONOMY ===================== */

func (r *Resolver) ActiveSubcategories(ctx context.Context, categoryID uuid.UUID) ([]Option, error) {
	return r.resolve(ctx, "cascade:subcategories:"+categoryID.String(), func() ([]Option, error) {
		return r.queryOptions(ctx, "subcategories", "subcategory_id", "subcategory_name",
			"subcategory_category_id = ? AND subcategory_is_active = ?", categoryID, true)
	})
}

func (r *Resolver) ActiveFunctionalAreas(ctx context.Context, subcategoryID uuid.UUID) ([]Option, error) {
	return r.resolve(ctx, "cascade:functional_areas:"+subcategoryID.String(), func() ([]Option, error) {
		return r.queryOptions(ctx, "functional_areas", "functional_area_id", "functional_area_name",
			"functional_area_subcategory_id = ? AND functional_area_is_active = ?", subcategoryID, true)
	})
}

/* ===================== INVALIDATION ===================== */

// InvalidateCities drops the cached option list for one state.
func (r *Resolver) InvalidateCities(ctx context.Context, stateID uuid.UUID) {
	r.invalidate(ctx, "cascade:cities:"+stateID.String())
}

func (r *Resolver) InvalidateSubcategories(ctx context.Context, categoryID uuid.UUID) {
	r.invalidate(ctx, "cascade:subcategories:"+categoryID.String())
}

func (r *Resolver) InvalidateFunctionalAreas(ctx context.Context, subcategoryID uuid.UUID) {
	r.invalidate(ctx, "cascade:functional_areas:"+subcategoryID.String())
}

/* ===================== INTERNAL ===================== */

func (r *Resolver) queryOptions(ctx context.Context, table, idCol, nameCol, cond string, args ...interface{}) ([]Option, error) {
	opts := make([]Option, 0)
	err := r.DB.WithContext(ctx).
		Table(table).
		Select(idCol+" AS id, "+nameCol+" AS name").
		Where(cond, args...).
		Order(nameCol + " ASC").
		Scan(&opts).Error
	if err != nil {
		return nil, err
	}
	return opts, nil
}

func (r *Resolver) resolve(ctx context.Context, key string, fetch func() ([]Option, error)) ([]Option, error) {
	if r.Cache != nil {
		if raw, err := r.Cache.Get(ctx, key).Bytes(); err == nil {
			var cached []Option
			if sonic.Unmarshal(raw, &cached) == nil {
				return cached, nil
			}
		}
	}

	opts, err := fetch()
	if err != nil {
		return nil, err
	}

	if r.Cache != nil {
		if raw, err := sonic.Marshal(opts); err == nil {
			_ = r.Cache.Set(ctx, key, raw, r.TTL).Err()
		}
	}
	return opts, nil
}

func (r *Resolver) invalidate(ctx context.Context, key string) {
	if r.Cache != nil {
		_ = r.Cache.Del(ctx, key).Err()
	}
}
