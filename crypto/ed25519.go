/*
Package crypto holds the keys used to sign transactions.

Only ed25519 is supported. Every public key maps to a condition of the form
sigs/ed25519/<pubkey> and therefore to an address.
*/
package crypto

import (
	"github.com/beehive-network/beehive"
	"github.com/beehive-network/beehive/errors"
	"github.com/gogo/protobuf/proto"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we get from signatures
const ExtensionName = "sigs"

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// PublicKey is the verifying half of a key pair.
type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

var _ beehive.Persistent = (*PublicKey)(nil)

// Verify verifies the signature was created with this message and public key
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	if p == nil || sig == nil {
		return false
	}
	if len(p.Ed25519) != ed25519.PublicKeySize || len(sig.Ed25519) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig.Ed25519)
}

// Condition encodes the public key into a beehive condition
func (p *PublicKey) Condition() beehive.Condition {
	if p == nil || len(p.Ed25519) == 0 {
		return nil
	}
	return beehive.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address is the address controlled by this key.
func (p *PublicKey) Address() beehive.Address {
	c := p.Condition()
	if c == nil {
		return nil
	}
	return c.Address()
}

func (p *PublicKey) Marshal() ([]byte, error) {
	return proto.Marshal((*publicKeyMsg)(p))
}

func (p *PublicKey) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*publicKeyMsg)(p))
}

type publicKeyMsg PublicKey

func (m *publicKeyMsg) Reset()         { *m = publicKeyMsg{} }
func (m *publicKeyMsg) String() string { return proto.CompactTextString(m) }
func (*publicKeyMsg) ProtoMessage()    {}

// PrivateKey is the signing half of a key pair. It holds the 64 byte
// expanded ed25519 key.
type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

var _ Signer = (*PrivateKey)(nil)

// Sign returns a matching signature for this private key
func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	if p == nil || len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInput, "invalid ed25519 private key")
	}
	bz := ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message)
	return &Signature{Ed25519: bz}, nil
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() *PublicKey {
	if p == nil || len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil
	}
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

func (p *PrivateKey) Marshal() ([]byte, error) {
	return proto.Marshal((*privateKeyMsg)(p))
}

func (p *PrivateKey) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*privateKeyMsg)(p))
}

type privateKeyMsg PrivateKey

func (m *privateKeyMsg) Reset()         { *m = privateKeyMsg{} }
func (m *privateKeyMsg) String() string { return proto.CompactTextString(m) }
func (*privateKeyMsg) ProtoMessage()    {}

// Signature is a detached ed25519 signature.
type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

func (s *Signature) Marshal() ([]byte, error) {
	return proto.Marshal((*signatureMsg)(s))
}

func (s *Signature) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*signatureMsg)(s))
}

type signatureMsg Signature

func (m *signatureMsg) Reset()         { *m = signatureMsg{} }
func (m *signatureMsg) String() string { return proto.CompactTextString(m) }
func (*signatureMsg) ProtoMessage()    {}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases. Panics unless the seed is 32
// bytes long.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	return &PrivateKey{Ed25519: ed25519.NewKeyFromSeed(seed)}
}
