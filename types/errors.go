package types

import (
	"errors"
	"fmt"
)

// Field names used in decode errors. They match the interchange wire
// contract so a caller can report exactly which field of a received
// message was rejected.
const (
	FieldAccountAddress           = "account_address"
	FieldConsensusPublicKey       = "consensus_public_key"
	FieldNetworkSigningPublicKey  = "network_signing_public_key"
	FieldNetworkIdentityPublicKey = "network_identity_public_key"
)

// ErrNonCanonical is returned by DecodeCanonical when the input is
// not the exact canonical encoding of the decoded record — truncated
// input, trailing bytes, or a non-canonical field layout.
var ErrNonCanonical = errors.New("input is not a canonical identity encoding")

// FieldError reports which identity field failed to decode. The
// underlying cause is available via Unwrap.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// AsFieldError checks whether an error carries a field attribution
// and returns it.
func AsFieldError(err error) (*FieldError, bool) {
	var fe *FieldError
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

func fieldError(field string, err error) error {
	return &FieldError{Field: field, Err: err}
}
