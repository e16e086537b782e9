package cache

import (
	"sync"
	"time"

	claimModel "osg-portal/models/claim"
	"osg-portal/services/claimstore"
)

// DefaultTTL is how long a cached claim list is served before refreshing
const DefaultTTL = 120 * time.Second

// ClaimCache holds a mutex guarded snapshot of the claim list. Reads within
// the TTL window are served from memory; a failed refresh falls back to the
// stale snapshot so the dashboard keeps working through store hiccups.
type ClaimCache struct {
	mu        sync.Mutex
	store     claimstore.Store
	ttl       time.Duration
	claims    []claimModel.Claim
	fetchedAt time.Time
}

func NewClaimCache(store claimstore.Store, ttl time.Duration) *ClaimCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &ClaimCache{store: store, ttl: ttl}
}

// Get returns the claim list, refreshing through the store when the snapshot
// is missing, expired, or force is set.
func (cc *ClaimCache) Get(force bool) ([]claimModel.Claim, error) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if !force && cc.claims != nil && time.Since(cc.fetchedAt) < cc.ttl {
		return cc.claims, nil
	}

	claims, err := cc.store.List()
	if err != nil {
		if cc.claims != nil {
			// Serve the stale snapshot rather than failing the read.
			return cc.claims, nil
		}
		return nil, err
	}

	cc.claims = claims
	cc.fetchedAt = time.Now()
	return cc.claims, nil
}

// Invalidate drops the snapshot so the next read refreshes
func (cc *ClaimCache) Invalidate() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.claims = nil
	cc.fetchedAt = time.Time{}
}
