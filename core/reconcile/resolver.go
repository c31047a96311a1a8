package reconcile

import (
	"context"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type resolution struct {
	path  string
	found bool
}

// ManagerResolver maps supervisor employee ids to entry paths for one pass.
// Lookups are cached and concurrent lookups of the same id share one directory call.
// Errors are not cached, so a later record may retry the lookup.
type ManagerResolver struct {
	dir     Directory
	timeout time.Duration

	mu    sync.RWMutex
	cache map[string]resolution
	sf    singleflight.Group
}

// NewManagerResolver creates a resolver with an empty cache.
func NewManagerResolver(dir Directory, timeout time.Duration) *ManagerResolver {
	return &ManagerResolver{
		dir:     dir,
		timeout: timeout,
		cache:   make(map[string]resolution),
	}
}

// Resolve returns the path of the entry carrying employeeID.
func (r *ManagerResolver) Resolve(ctx context.Context, employeeID string) (string, bool, error) {
	r.mu.RLock()
	res, ok := r.cache[employeeID]
	r.mu.RUnlock()
	if ok {
		return res.path, res.found, nil
	}

	v, err, _ := r.sf.Do(employeeID, func() (any, error) {
		r.mu.RLock()
		res, ok := r.cache[employeeID]
		r.mu.RUnlock()
		if ok {
			return res, nil
		}

		callCtx, cancel := withTimeout(ctx, r.timeout)
		defer cancel()

		path, found, err := r.dir.ResolvePathByEmployeeID(callCtx, employeeID)
		if err != nil {
			return nil, err
		}

		res = resolution{path: path, found: found}
		r.mu.Lock()
		r.cache[employeeID] = res
		r.mu.Unlock()
		return res, nil
	})
	if err != nil {
		return "", false, err
	}

	res = v.(resolution)
	return res.path, res.found, nil
}

// Moved records that the entry at oldPath now lives at newPath. A cached lookup of
// employeeID that pointed at oldPath is rewritten so later records reference the new path.
func (r *ManagerResolver) Moved(employeeID, oldPath, newPath string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.cache[employeeID]
	if !ok || !res.found || !strings.EqualFold(res.path, oldPath) {
		return
	}
	r.cache[employeeID] = resolution{path: newPath, found: true}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
