// Package types defines the validator identity record and its two
// codecs: the canonical binary encoding used wherever the record is
// hashed or signed over, and the interchange message used to move it
// between processes.
//
// Records are immutable values. All fields are set at construction
// and only exposed through copying accessors, so a record may be
// shared freely across goroutines.
package types

import (
	"fmt"

	"github.com/blockberries/identiberry/keys"
)

// ValidatorIdentity describes one network participant: the account
// address it is known by, the key that signs its consensus messages,
// the key that signs its network-layer messages, and the key-exchange
// key that admits it to encrypted peer-to-peer channels.
//
// Two identities are equal iff every field is byte-equal.
type ValidatorIdentity struct {
	accountAddress           keys.AccountAddress
	consensusPublicKey       keys.Ed25519PublicKey
	networkSigningPublicKey  keys.Ed25519PublicKey
	networkIdentityPublicKey keys.X25519PublicKey
}

// New assembles an identity from already-validated components. It is
// a pure aggregation and always succeeds; all byte-level validation
// belongs to the keys package constructors.
func New(
	accountAddress keys.AccountAddress,
	consensusPublicKey keys.Ed25519PublicKey,
	networkSigningPublicKey keys.Ed25519PublicKey,
	networkIdentityPublicKey keys.X25519PublicKey,
) ValidatorIdentity {
	return ValidatorIdentity{
		accountAddress:           accountAddress,
		consensusPublicKey:       consensusPublicKey,
		networkSigningPublicKey:  networkSigningPublicKey,
		networkIdentityPublicKey: networkIdentityPublicKey,
	}
}

// AccountAddress returns the address this identity describes.
func (v ValidatorIdentity) AccountAddress() keys.AccountAddress {
	return v.accountAddress
}

// ConsensusPublicKey returns the key that verifies this validator's
// consensus protocol messages.
func (v ValidatorIdentity) ConsensusPublicKey() keys.Ed25519PublicKey {
	return v.consensusPublicKey
}

// NetworkSigningPublicKey returns the key that verifies this
// validator's network-layer messages.
func (v ValidatorIdentity) NetworkSigningPublicKey() keys.Ed25519PublicKey {
	return v.networkSigningPublicKey
}

// NetworkIdentityPublicKey returns the key-exchange key proving this
// validator's eligibility to form encrypted peer-to-peer channels.
func (v ValidatorIdentity) NetworkIdentityPublicKey() keys.X25519PublicKey {
	return v.networkIdentityPublicKey
}

// Equal reports structural equality over all four fields.
func (v ValidatorIdentity) Equal(o ValidatorIdentity) bool {
	return v == o
}

// String renders a short diagnostic form. Only the shortened address
// appears; key bytes are never included in diagnostics.
func (v ValidatorIdentity) String() string {
	return fmt.Sprintf("validator identity %s", v.accountAddress.ShortString())
}
