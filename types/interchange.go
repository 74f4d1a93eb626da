package types

// ValidatorIdentityMessage is the interchange representation of a
// validator identity: four raw byte-array fields, one per record
// field, in the same order as the canonical encoding. This is the
// shape that crosses process boundaries (see the grpc subpackage);
// nothing about it is validated until it is converted back into a
// ValidatorIdentity.
type ValidatorIdentityMessage struct {
	AccountAddress           []byte `cramberry:"1"`
	ConsensusPublicKey       []byte `cramberry:"2"`
	NetworkSigningPublicKey  []byte `cramberry:"3"`
	NetworkIdentityPublicKey []byte `cramberry:"4"`
}

// Message projects the identity into its interchange form. The
// conversion only copies already-valid bytes and always succeeds.
func (v ValidatorIdentity) Message() ValidatorIdentityMessage {
	return ValidatorIdentityMessage(v.wire())
}

// IdentityFromMessage reconstructs a typed identity from a received
// interchange message. Each field is validated by its own
// constructor; the first failure is returned as a FieldError naming
// the field and no record is produced. This is the trust boundary: a
// malformed message never becomes a ValidatorIdentity value.
func IdentityFromMessage(m ValidatorIdentityMessage) (ValidatorIdentity, error) {
	return fromWire(identityWire(m))
}
