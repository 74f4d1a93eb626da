// Package identiberry defines the validator identity record shared by
// the consensus engine and the network layer: one account address plus
// the validator's consensus, network signing, and network identity
// public keys.
//
// The record in [types.ValidatorIdentity] is an immutable value with
// two codecs: a canonical binary encoding (byte-stable, used wherever
// the record is hashed or signed over) and an interchange message
// (used to move records between processes, e.g. over the gRPC
// transport in the grpc subpackage).
//
// This package carries key material as opaque validated bytes only.
// It never signs, verifies, or performs key exchange.
package identiberry

import (
	"context"

	"github.com/blockberries/identiberry/keys"
	"github.com/blockberries/identiberry/types"
)

// Directory is a registry of validator identities keyed by account
// address. Implementations must be safe for concurrent use.
//
// Publishing an identity for an address that already has one replaces
// the previous record: identities are never mutated in place, an
// epoch change simply publishes the new record.
type Directory interface {
	// Publish stores an identity, replacing any previous identity
	// published for the same account address.
	Publish(ctx context.Context, identity types.ValidatorIdentity) error

	// Lookup returns the identity published for the given address,
	// or ErrNotFound.
	Lookup(ctx context.Context, addr keys.AccountAddress) (types.ValidatorIdentity, error)

	// List returns all published identities, ordered by account
	// address.
	List(ctx context.Context) ([]types.ValidatorIdentity, error)

	// Close releases any resources held by the directory.
	Close() error
}
