package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/ports"

	"github.com/go-redis/redis/v8"
)

// DefaultCacheTTL bounds how stale a cached directory entry may get. Master
// data changes rarely; a short TTL keeps renames from lingering.
const DefaultCacheTTL = 5 * time.Minute

// CachedDirectory is a read-through Redis cache in front of another
// ReferenceDirectory. Cache failures are never fatal: a broken Redis
// degrades to direct database reads. Misses are not cached, so a reference
// created moments ago resolves on the next lookup.
type CachedDirectory struct {
	next   ports.ReferenceDirectory
	client *redis.Client
	ttl    time.Duration
}

// NewCachedDirectory wraps a directory with a Redis read-through cache.
// A non-positive ttl falls back to DefaultCacheTTL.
func NewCachedDirectory(
	next ports.ReferenceDirectory,
	client *redis.Client,
	ttl time.Duration,
) *CachedDirectory {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}

	return &CachedDirectory{
		next:   next,
		client: client,
		ttl:    ttl,
	}
}

type cachedLocation struct {
	ID         int64    `json:"id"`
	CustomerID int64    `json:"customerId"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

type cachedProduct struct {
	ProductID int64  `json:"productId"`
	VariantID int64  `json:"variantId"`
	Name      string `json:"name"`
	Barcode   string `json:"barcode"`
}

type cachedName struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ResolveLocation returns the site behind a location id, preferring the cache.
func (d *CachedDirectory) ResolveLocation(
	ctx context.Context,
	id kernel.LocationID,
) (ports.LocationInfo, error) {
	cacheKey := fmt.Sprintf("directory:location:%d", int64(id))

	var cached cachedLocation
	if d.lookup(ctx, cacheKey, &cached) {
		return ports.LocationInfo{
			ID:         kernel.LocationID(cached.ID),
			CustomerID: kernel.CustomerID(cached.CustomerID),
			Name:       cached.Name,
			Address:    cached.Address,
			Latitude:   cached.Latitude,
			Longitude:  cached.Longitude,
		}, nil
	}

	info, err := d.next.ResolveLocation(ctx, id)
	if err != nil {
		return ports.LocationInfo{}, err
	}

	d.store(ctx, cacheKey, cachedLocation{
		ID:         int64(info.ID),
		CustomerID: int64(info.CustomerID),
		Name:       info.Name,
		Address:    info.Address,
		Latitude:   info.Latitude,
		Longitude:  info.Longitude,
	})

	return info, nil
}

// ResolveProduct returns the catalog line behind a product key, preferring
// the cache.
func (d *CachedDirectory) ResolveProduct(
	ctx context.Context,
	key kernel.ProductKey,
) (ports.ProductInfo, error) {
	cacheKey := fmt.Sprintf("directory:product:%s", key.String())

	var cached cachedProduct
	if d.lookup(ctx, cacheKey, &cached) {
		var variantID *kernel.VariantID
		if cached.VariantID != 0 {
			variant := kernel.VariantID(cached.VariantID)
			variantID = &variant
		}

		restoredKey, err := kernel.NewProductKey(kernel.ProductID(cached.ProductID), variantID)
		if err == nil {
			return ports.ProductInfo{
				Key:     restoredKey,
				Name:    cached.Name,
				Barcode: cached.Barcode,
			}, nil
		}
	}

	info, err := d.next.ResolveProduct(ctx, key)
	if err != nil {
		return ports.ProductInfo{}, err
	}

	variantID := int64(0)
	if info.Key.VariantID() != nil {
		variantID = int64(*info.Key.VariantID())
	}

	d.store(ctx, cacheKey, cachedProduct{
		ProductID: int64(info.Key.ProductID()),
		VariantID: variantID,
		Name:      info.Name,
		Barcode:   info.Barcode,
	})

	return info, nil
}

// ResolveUser returns the user behind a user id, preferring the cache.
func (d *CachedDirectory) ResolveUser(
	ctx context.Context,
	id kernel.UserID,
) (ports.UserInfo, error) {
	cacheKey := fmt.Sprintf("directory:user:%d", int64(id))

	var cached cachedName
	if d.lookup(ctx, cacheKey, &cached) {
		return ports.UserInfo{
			ID:   kernel.UserID(cached.ID),
			Name: cached.Name,
		}, nil
	}

	info, err := d.next.ResolveUser(ctx, id)
	if err != nil {
		return ports.UserInfo{}, err
	}

	d.store(ctx, cacheKey, cachedName{ID: int64(info.ID), Name: info.Name})

	return info, nil
}

// ResolveCustomer returns the customer behind a customer id, preferring the
// cache.
func (d *CachedDirectory) ResolveCustomer(
	ctx context.Context,
	id kernel.CustomerID,
) (ports.CustomerInfo, error) {
	cacheKey := fmt.Sprintf("directory:customer:%d", int64(id))

	var cached cachedName
	if d.lookup(ctx, cacheKey, &cached) {
		return ports.CustomerInfo{
			ID:   kernel.CustomerID(cached.ID),
			Name: cached.Name,
		}, nil
	}

	info, err := d.next.ResolveCustomer(ctx, id)
	if err != nil {
		return ports.CustomerInfo{}, err
	}

	d.store(ctx, cacheKey, cachedName{ID: int64(info.ID), Name: info.Name})

	return info, nil
}

// lookup reads and decodes one cache entry. Any failure counts as a miss.
func (d *CachedDirectory) lookup(ctx context.Context, cacheKey string, target any) bool {
	payload, err := d.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return false
	}

	return json.Unmarshal(payload, target) == nil
}

// store writes one cache entry, ignoring failures.
func (d *CachedDirectory) store(ctx context.Context, cacheKey string, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	d.client.Set(ctx, cacheKey, payload, d.ttl)
}
