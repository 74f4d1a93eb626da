package keys

import (
	"bytes"
	"crypto/ed25519"
	"testing"
)

// validEd25519 derives a real public key from a fixed seed, so the
// bytes are guaranteed to decode as a curve point.
func validEd25519(t *testing.T, seed byte) []byte {
	t.Helper()
	s := bytes.Repeat([]byte{seed}, ed25519.SeedSize)
	return []byte(ed25519.NewKeyFromSeed(s).Public().(ed25519.PublicKey))
}

func TestAddressFromBytes(t *testing.T) {
	raw := bytes.Repeat([]byte{0xAA}, AddressLength)
	a, err := AddressFromBytes(raw)
	if err != nil {
		t.Fatalf("AddressFromBytes: %v", err)
	}
	if !bytes.Equal(a.Bytes(), raw) {
		t.Fatalf("Bytes round-trip mismatch: %x", a.Bytes())
	}
}

func TestAddressFromBytes_WrongLength(t *testing.T) {
	for _, n := range []int{0, 15, 17, 32} {
		if _, err := AddressFromBytes(make([]byte, n)); err == nil {
			t.Errorf("expected error for %d-byte address", n)
		}
	}
}

func TestAddressStrings(t *testing.T) {
	raw := []byte{0xDE, 0xAD, 0xBE, 0xEF, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	a, err := AddressFromBytes(raw)
	if err != nil {
		t.Fatal(err)
	}
	if a.ShortString() != "deadbeef" {
		t.Errorf("ShortString: got %q", a.ShortString())
	}
	if len(a.String()) != 2*AddressLength {
		t.Errorf("String length: got %d", len(a.String()))
	}
}

func TestAddressCompare(t *testing.T) {
	lo, _ := AddressFromBytes(bytes.Repeat([]byte{0x01}, AddressLength))
	hi, _ := AddressFromBytes(bytes.Repeat([]byte{0x02}, AddressLength))
	if lo.Compare(hi) != -1 || hi.Compare(lo) != 1 || lo.Compare(lo) != 0 {
		t.Fatal("Compare ordering wrong")
	}
}

func TestEd25519FromBytes(t *testing.T) {
	raw := validEd25519(t, 0xBB)
	k, err := Ed25519FromBytes(raw)
	if err != nil {
		t.Fatalf("Ed25519FromBytes: %v", err)
	}
	if !bytes.Equal(k.Bytes(), raw) {
		t.Fatal("Bytes round-trip mismatch")
	}
}

func TestEd25519FromBytes_WrongLength(t *testing.T) {
	for _, n := range []int{0, 31, 33, 64} {
		if _, err := Ed25519FromBytes(make([]byte, n)); err == nil {
			t.Errorf("expected error for %d-byte key", n)
		}
	}
}

func TestEd25519FromBytes_NotAPoint(t *testing.T) {
	// All-0xFF encodes y >= p, which no canonical point encoding uses.
	raw := bytes.Repeat([]byte{0xFF}, Ed25519PublicKeySize)
	if _, err := Ed25519FromBytes(raw); err == nil {
		t.Fatal("expected error for non-canonical point bytes")
	}
}

func TestX25519FromBytes(t *testing.T) {
	raw := bytes.Repeat([]byte{0xCC}, X25519PublicKeySize)
	k, err := X25519FromBytes(raw)
	if err != nil {
		t.Fatalf("X25519FromBytes: %v", err)
	}
	if !bytes.Equal(k.Bytes(), raw) {
		t.Fatal("Bytes round-trip mismatch")
	}
}

func TestX25519FromBytes_Invalid(t *testing.T) {
	if _, err := X25519FromBytes(make([]byte, 31)); err == nil {
		t.Error("expected error for short key")
	}
	if _, err := X25519FromBytes(make([]byte, X25519PublicKeySize)); err == nil {
		t.Error("expected error for all-zero key")
	}
}

func TestBytesReturnsCopy(t *testing.T) {
	a, _ := AddressFromBytes(bytes.Repeat([]byte{0xAA}, AddressLength))
	b := a.Bytes()
	b[0] = 0x00
	if a[0] != 0xAA {
		t.Fatal("Bytes must return a copy, not a view")
	}
}
