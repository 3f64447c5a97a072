package hivetest

import (
	"testing"

	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/crypto"
)

// NewKey returns a fresh random signing key.
func NewKey() *crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a fresh random key.
func NewCondition() beehive.Condition {
	return NewKey().PublicKey().Condition()
}

// ParseAddress takes an address in a human readable format and returns
// its binary representation, failing the test on error.
func ParseAddress(t testing.TB, encodedAddress string) beehive.Address {
	t.Helper()

	addr, err := beehive.ParseAddress(encodedAddress)
	if err != nil {
		t.Fatalf("cannot parse %q address: %s", encodedAddress, err)
	}
	return addr
}
