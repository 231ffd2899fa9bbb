package asset

import (
	"math/big"
	"sort"
	"sync"

	"github.com/fd1az/asset-console/internal/apperror"
)

// Registry is a thread-safe registry of existing assets keyed by id.
type Registry struct {
	byID map[string]*Asset
	mu   sync.RWMutex
}

// NewRegistry creates a new empty asset registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[string]*Asset),
	}
}

// Register adds an asset to the registry.
func (r *Registry) Register(a *Asset) error {
	if a == nil {
		return apperror.Validation(apperror.CodeInvalidInput, "nil asset")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := a.id.String()
	if _, exists := r.byID[key]; exists {
		return apperror.Validation(apperror.CodeDuplicateAssetID, key)
	}

	r.byID[key] = a
	return nil
}

// Get retrieves an asset by its id.
func (r *Registry) Get(id *big.Int) (*Asset, bool) {
	if id == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id.String()]
	return a, ok
}

// Has returns true if an asset with the given id is registered.
func (r *Registry) Has(id *big.Int) bool {
	_, ok := r.Get(id)
	return ok
}

// IDs returns the registered ids in ascending order.
func (r *Registry) IDs() []*big.Int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]*big.Int, 0, len(r.byID))
	for _, a := range r.byID {
		ids = append(ids, a.ID())
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Cmp(ids[j]) < 0 })
	return ids
}

// All returns the registered assets ordered by id.
func (r *Registry) All() []*Asset {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Asset, 0, len(r.byID))
	for _, a := range r.byID {
		result = append(result, a)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].id.Cmp(result[j].id) < 0 })
	return result
}

// Count returns the number of registered assets.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// NextID returns one past the highest registered id, or 1 when empty.
func (r *Registry) NextID() *big.Int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	next := big.NewInt(1)
	for _, a := range r.byID {
		if a.id.Cmp(next) >= 0 {
			next = new(big.Int).Add(a.id, big.NewInt(1))
		}
	}
	return next
}

// Replace swaps the registered assets for those in other.
func (r *Registry) Replace(other *Registry) {
	other.mu.RLock()
	byID := make(map[string]*Asset, len(other.byID))
	for k, a := range other.byID {
		byID[k] = a
	}
	other.mu.RUnlock()

	r.mu.Lock()
	r.byID = byID
	r.mu.Unlock()
}
