package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Signer signs access tokens with an Ed25519 key. The service runs a single
// key, so tokens do not outlive a restart.
type Signer struct {
	kid string
	key ed25519.PrivateKey
	pub ed25519.PublicKey
}

// NewSigner wraps an existing Ed25519 private key.
func NewSigner(kid string, key ed25519.PrivateKey) (*Signer, error) {
	if len(key) != ed25519.PrivateKeySize {
		return nil, errors.New("jwtx: invalid Ed25519 private key size")
	}
	return &Signer{
		kid: kid,
		key: key,
		pub: key.Public().(ed25519.PublicKey),
	}, nil
}

// GenerateSigner creates a signer with a fresh ephemeral keypair.
func GenerateSigner(kid string) (*Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate key: %w", err)
	}
	return NewSigner(kid, priv)
}

func (s *Signer) KID() string { return s.kid }
func (s *Signer) Alg() string { return jwt.SigningMethodEdDSA.Alg() }

// Sign turns claims into a signed JWT string.
func (s *Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	t.Header["kid"] = s.kid
	return t.SignedString(s.key)
}

// Verifier returns a verifier holding this signer's public key.
func (s *Signer) Verifier(issuer string) *Verifier {
	return &Verifier{
		keys:   map[string]ed25519.PublicKey{s.kid: s.pub},
		issuer: issuer,
	}
}
