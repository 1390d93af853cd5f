package signer

import "crypto/rsa"

// Signer signs canonical envelope strings.
type Signer interface {
	// Sign returns the base64 (standard encoding) signature of canonical.
	// Failures are reported as *protocol.CryptoError.
	Sign(canonical string, key *rsa.PrivateKey) (string, error)
}
