// Package directory provides the in-memory identity directory used
// in-process: membership management publishes validator identities
// into it and consensus/network components look them up by address.
package directory

import (
	"context"
	"sort"
	"sync"

	"github.com/blockberries/identiberry"
	"github.com/blockberries/identiberry/keys"
	"github.com/blockberries/identiberry/types"
)

// Compile-time interface check.
var _ identiberry.Directory = (*Directory)(nil)

// Directory is an in-memory identiberry.Directory. Safe for
// concurrent use; stored identities are immutable values, so reads
// never observe partial updates.
type Directory struct {
	mu         sync.RWMutex
	identities map[keys.AccountAddress]types.ValidatorIdentity
}

// New creates an empty directory.
func New() *Directory {
	return &Directory{
		identities: make(map[keys.AccountAddress]types.ValidatorIdentity),
	}
}

// Publish stores an identity under its account address, replacing
// any identity previously published for that address.
func (d *Directory) Publish(_ context.Context, identity types.ValidatorIdentity) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.identities[identity.AccountAddress()] = identity
	return nil
}

// Lookup returns the identity published for addr, or
// identiberry.ErrNotFound.
func (d *Directory) Lookup(_ context.Context, addr keys.AccountAddress) (types.ValidatorIdentity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	identity, ok := d.identities[addr]
	if !ok {
		return types.ValidatorIdentity{}, identiberry.ErrNotFound
	}
	return identity, nil
}

// List returns all published identities ordered by account address,
// so repeated listings of the same directory are byte-stable.
func (d *Directory) List(_ context.Context) ([]types.ValidatorIdentity, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]types.ValidatorIdentity, 0, len(d.identities))
	for _, identity := range d.identities {
		out = append(out, identity)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AccountAddress().Compare(out[j].AccountAddress()) < 0
	})
	return out, nil
}

// Len returns the number of published identities.
func (d *Directory) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.identities)
}

// Close is a no-op; the directory holds no external resources.
func (d *Directory) Close() error { return nil }
