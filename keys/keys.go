// Package keys defines the opaque byte-level types a validator
// identity is assembled from: the fixed-length account address and
// the two public key kinds (Ed25519 for signatures, X25519 for key
// exchange).
//
// Each type validates its own byte representation on construction.
// No cryptographic operation beyond decoding is performed here.
package keys

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"filippo.io/edwards25519"
)

// AddressLength is the byte length of an account address.
const AddressLength = 16

// Ed25519PublicKeySize is the byte length of an Ed25519 public key.
const Ed25519PublicKeySize = 32

// X25519PublicKeySize is the byte length of an X25519 public key.
const X25519PublicKeySize = 32

// AccountAddress identifies the on-chain account of a validator. It
// is derived elsewhere (from a key hash); this type only carries it.
type AccountAddress [AddressLength]byte

// AddressFromBytes constructs an address from its raw bytes. It fails
// if b is not exactly AddressLength bytes.
func AddressFromBytes(b []byte) (AccountAddress, error) {
	var a AccountAddress
	if len(b) != AddressLength {
		return a, fmt.Errorf("account address: got %d bytes, want %d", len(b), AddressLength)
	}
	copy(a[:], b)
	return a, nil
}

// Bytes returns a copy of the raw address bytes.
func (a AccountAddress) Bytes() []byte {
	return append([]byte(nil), a[:]...)
}

// String renders the full address as lowercase hex.
func (a AccountAddress) String() string {
	return hex.EncodeToString(a[:])
}

// ShortString renders the first four address bytes as hex. This is
// the form used in diagnostics, where the full address is noise.
func (a AccountAddress) ShortString() string {
	return hex.EncodeToString(a[:4])
}

// Compare orders two addresses bytewise. It returns -1, 0, or 1.
func (a AccountAddress) Compare(b AccountAddress) int {
	return bytes.Compare(a[:], b[:])
}

// Ed25519PublicKey is a validated Ed25519 public key. Both the
// consensus key and the network signing key are of this kind.
type Ed25519PublicKey [Ed25519PublicKeySize]byte

// Ed25519FromBytes constructs a public key from its canonical 32-byte
// encoding. It fails if the length is wrong or the bytes are not a
// canonical encoding of a curve point.
func Ed25519FromBytes(b []byte) (Ed25519PublicKey, error) {
	var k Ed25519PublicKey
	if len(b) != Ed25519PublicKeySize {
		return k, fmt.Errorf("ed25519 public key: got %d bytes, want %d", len(b), Ed25519PublicKeySize)
	}
	if _, err := new(edwards25519.Point).SetBytes(b); err != nil {
		return k, fmt.Errorf("ed25519 public key: %w", err)
	}
	copy(k[:], b)
	return k, nil
}

// Bytes returns a copy of the canonical key encoding.
func (k Ed25519PublicKey) Bytes() []byte {
	return append([]byte(nil), k[:]...)
}

// X25519PublicKey is a validated X25519 public key, used to establish
// encrypted peer-to-peer channels.
type X25519PublicKey [X25519PublicKeySize]byte

// X25519FromBytes constructs a public key from its 32-byte encoding.
// It fails if the length is wrong or the key is all zero (the zero
// key can never produce a usable shared secret).
func X25519FromBytes(b []byte) (X25519PublicKey, error) {
	var k X25519PublicKey
	if len(b) != X25519PublicKeySize {
		return k, fmt.Errorf("x25519 public key: got %d bytes, want %d", len(b), X25519PublicKeySize)
	}
	if bytes.Equal(b, k[:]) {
		return k, fmt.Errorf("x25519 public key: all-zero key")
	}
	copy(k[:], b)
	return k, nil
}

// Bytes returns a copy of the key encoding.
func (k X25519PublicKey) Bytes() []byte {
	return append([]byte(nil), k[:]...)
}
