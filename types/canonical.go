package types

import (
	"bytes"
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"

	"github.com/blockberries/identiberry/keys"
)

// identityWire is the canonical wire shape of a validator identity:
// four length-prefixed byte fields in fixed tag order. The tag order
// is part of the wire contract and must never change; there is no
// version byte, the record has exactly one canonical shape.
type identityWire struct {
	AccountAddress           []byte `cramberry:"1"`
	ConsensusPublicKey       []byte `cramberry:"2"`
	NetworkSigningPublicKey  []byte `cramberry:"3"`
	NetworkIdentityPublicKey []byte `cramberry:"4"`
}

// EncodeCanonical returns the canonical binary encoding of the
// identity. The output is byte-stable: the same record always
// encodes to the same bytes, and the length depends only on the
// field lengths.
func (v ValidatorIdentity) EncodeCanonical() ([]byte, error) {
	data, err := cramberry.Marshal(v.wire())
	if err != nil {
		return nil, fmt.Errorf("encode validator identity: %w", err)
	}
	return data, nil
}

// DecodeCanonical parses a canonical identity encoding. Each field is
// revalidated through its own constructor, and any failure is
// reported as a FieldError naming the field. The input must be the
// exact canonical form: truncated input, trailing bytes, or any
// non-canonical layout yields ErrNonCanonical. On error no record is
// returned.
func DecodeCanonical(data []byte) (ValidatorIdentity, error) {
	var w identityWire
	if err := cramberry.Unmarshal(data, &w); err != nil {
		return ValidatorIdentity{}, fmt.Errorf("%w: %v", ErrNonCanonical, err)
	}

	v, err := fromWire(w)
	if err != nil {
		return ValidatorIdentity{}, err
	}

	// Exact-consumption check: the canonical re-encoding of the
	// decoded record must reproduce the input byte for byte.
	canonical, err := v.EncodeCanonical()
	if err != nil {
		return ValidatorIdentity{}, err
	}
	if !bytes.Equal(canonical, data) {
		return ValidatorIdentity{}, ErrNonCanonical
	}
	return v, nil
}

func (v ValidatorIdentity) wire() identityWire {
	return identityWire{
		AccountAddress:           v.accountAddress.Bytes(),
		ConsensusPublicKey:       v.consensusPublicKey.Bytes(),
		NetworkSigningPublicKey:  v.networkSigningPublicKey.Bytes(),
		NetworkIdentityPublicKey: v.networkIdentityPublicKey.Bytes(),
	}
}

// fromWire validates the four raw byte fields through their typed
// constructors, in wire order, failing on the first invalid field.
func fromWire(w identityWire) (ValidatorIdentity, error) {
	addr, err := keys.AddressFromBytes(w.AccountAddress)
	if err != nil {
		return ValidatorIdentity{}, fieldError(FieldAccountAddress, err)
	}
	consensus, err := keys.Ed25519FromBytes(w.ConsensusPublicKey)
	if err != nil {
		return ValidatorIdentity{}, fieldError(FieldConsensusPublicKey, err)
	}
	netSigning, err := keys.Ed25519FromBytes(w.NetworkSigningPublicKey)
	if err != nil {
		return ValidatorIdentity{}, fieldError(FieldNetworkSigningPublicKey, err)
	}
	netIdentity, err := keys.X25519FromBytes(w.NetworkIdentityPublicKey)
	if err != nil {
		return ValidatorIdentity{}, fieldError(FieldNetworkIdentityPublicKey, err)
	}
	return New(addr, consensus, netSigning, netIdentity), nil
}
