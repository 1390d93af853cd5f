// Package signer signs canonical envelope strings for the Shucang open API.
//
// The protocol fixes the scheme to RSASSA-PKCS1-v1_5 with SHA-256. The
// signature is computed over the UTF-8 bytes of the canonical signing string
// (see protocol.Canonicalize) and travels base64-encoded in the sign field.
//
// # Signing an Envelope
//
//	env := protocol.Envelope{
//	    "app_id":    "10001",
//	    "timestamp": "1717171717",
//	    "nonce":     nonce,
//	    "method":    "order.create",
//	    "data":      data,
//	}
//
//	s := signer.NewRSASigner()
//	sig, err := s.Sign(protocol.Canonicalize(env), privateKey)
//	if err != nil {
//	    return err // *protocol.CryptoError
//	}
//	env["sign"] = sig
//
// The recipient checks the signature with the verifier package.
//
// # Error Handling
//
// Sign fails only when the key is nil or the RSA primitive rejects it, for
// example when the modulus is too small to hold a SHA-256 DigestInfo. Both
// cases return *protocol.CryptoError.
//
// # Thread Safety
//
// RSASigner holds no state and is safe for concurrent use.
package signer
