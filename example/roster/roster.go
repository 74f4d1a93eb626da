// Package roster is an example consumer of the identity directory:
// an epoch roster that loads all published validator identities and
// answers key lookups by account address, the way a consensus or
// network component would at the start of an epoch.
package roster

import (
	"context"
	"fmt"

	"github.com/blockberries/identiberry"
	"github.com/blockberries/identiberry/keys"
	"github.com/blockberries/identiberry/types"
)

// Roster is a point-in-time snapshot of the directory. It is built
// once per epoch and read concurrently without locking: identities
// are immutable values.
type Roster struct {
	identities map[keys.AccountAddress]types.ValidatorIdentity
	ordered    []types.ValidatorIdentity
}

// Load snapshots the current contents of a directory.
func Load(ctx context.Context, dir identiberry.Directory) (*Roster, error) {
	listed, err := dir.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load roster: %w", err)
	}
	r := &Roster{
		identities: make(map[keys.AccountAddress]types.ValidatorIdentity, len(listed)),
		ordered:    listed,
	}
	for _, identity := range listed {
		r.identities[identity.AccountAddress()] = identity
	}
	return r, nil
}

// Size returns the number of validators in the roster.
func (r *Roster) Size() int { return len(r.ordered) }

// Validators returns the roster in address order.
func (r *Roster) Validators() []types.ValidatorIdentity {
	return append([]types.ValidatorIdentity(nil), r.ordered...)
}

// ConsensusKey returns the consensus public key for addr.
func (r *Roster) ConsensusKey(addr keys.AccountAddress) (keys.Ed25519PublicKey, error) {
	identity, ok := r.identities[addr]
	if !ok {
		return keys.Ed25519PublicKey{}, fmt.Errorf("roster: %s: %w", addr.ShortString(), identiberry.ErrNotFound)
	}
	return identity.ConsensusPublicKey(), nil
}

// PeerKeys returns the network signing and network identity keys for
// addr, the pair the transport layer needs to authenticate and open
// a channel to the validator.
func (r *Roster) PeerKeys(addr keys.AccountAddress) (keys.Ed25519PublicKey, keys.X25519PublicKey, error) {
	identity, ok := r.identities[addr]
	if !ok {
		return keys.Ed25519PublicKey{}, keys.X25519PublicKey{}, fmt.Errorf("roster: %s: %w", addr.ShortString(), identiberry.ErrNotFound)
	}
	return identity.NetworkSigningPublicKey(), identity.NetworkIdentityPublicKey(), nil
}
