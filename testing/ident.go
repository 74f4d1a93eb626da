// Package identtest provides deterministic validator identity
// fixtures for tests: patterned addresses, real Ed25519 public keys
// derived from patterned seeds, and byte strings that are guaranteed
// to fail key validation.
package identtest

import (
	"bytes"
	"crypto/ed25519"

	"github.com/blockberries/identiberry/keys"
	"github.com/blockberries/identiberry/types"
)

// Address returns the address whose every byte is seed.
func Address(seed byte) keys.AccountAddress {
	var a keys.AccountAddress
	for i := range a {
		a[i] = seed
	}
	return a
}

// Ed25519Key returns the public key of the Ed25519 private key whose
// seed is the given byte repeated. Arbitrary patterned bytes are
// generally not curve points, so fixtures derive real keys instead.
func Ed25519Key(seed byte) keys.Ed25519PublicKey {
	s := bytes.Repeat([]byte{seed}, ed25519.SeedSize)
	pub := ed25519.NewKeyFromSeed(s).Public().(ed25519.PublicKey)
	k, err := keys.Ed25519FromBytes(pub)
	if err != nil {
		panic("identtest: derived ed25519 key failed validation: " + err.Error())
	}
	return k
}

// X25519Key returns the key whose every byte is seed. Any non-zero
// 32-byte string is a valid X25519 public key encoding.
func X25519Key(seed byte) keys.X25519PublicKey {
	if seed == 0 {
		panic("identtest: zero seed would produce the all-zero x25519 key")
	}
	var k keys.X25519PublicKey
	for i := range k {
		k[i] = seed
	}
	return k
}

// Identity returns a complete identity derived from seed, with each
// field built from a distinct per-field pattern so no two fields
// share bytes.
func Identity(seed byte) types.ValidatorIdentity {
	return types.New(
		Address(seed),
		Ed25519Key(seed+1),
		Ed25519Key(seed+2),
		X25519Key(seed|0x80),
	)
}

// InvalidEd25519Bytes returns 32 bytes that every canonical Ed25519
// decoder rejects: all-0xFF encodes a y coordinate >= the field
// prime.
func InvalidEd25519Bytes() []byte {
	return bytes.Repeat([]byte{0xFF}, keys.Ed25519PublicKeySize)
}
