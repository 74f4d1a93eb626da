package types

import (
	"errors"
	"fmt"
	"testing"
)

func TestFieldError(t *testing.T) {
	cause := errors.New("got 31 bytes, want 32")
	err := fieldError(FieldConsensusPublicKey, cause)

	expected := "field consensus_public_key: got 31 bytes, want 32"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("FieldError must unwrap to its cause")
	}
}

func TestAsFieldError(t *testing.T) {
	fe := fieldError(FieldAccountAddress, errors.New("bad length"))

	// Direct.
	got, ok := AsFieldError(fe)
	if !ok {
		t.Fatal("expected AsFieldError to return true")
	}
	if got.Field != FieldAccountAddress {
		t.Errorf("expected field %q, got %q", FieldAccountAddress, got.Field)
	}

	// Wrapped.
	wrapped := fmt.Errorf("decode message: %w", fe)
	got2, ok2 := AsFieldError(wrapped)
	if !ok2 {
		t.Fatal("expected AsFieldError to unwrap wrapped error")
	}
	if got2.Field != FieldAccountAddress {
		t.Errorf("expected field %q, got %q", FieldAccountAddress, got2.Field)
	}

	// Unrelated error.
	if _, ok3 := AsFieldError(errors.New("just a regular error")); ok3 {
		t.Fatal("expected AsFieldError to return false for unrelated error")
	}

	// Nil.
	if _, ok4 := AsFieldError(nil); ok4 {
		t.Fatal("expected AsFieldError to return false for nil")
	}
}
