// Package protocol defines the wire-level vocabulary of the Shucang open API
// envelope: field names, the Envelope type, the canonical signing string and
// the error taxonomy shared by every other package in this module.
//
// # Envelope
//
// An Envelope is a flat JSON object whose values are all strings. Requests
// carry app_id, timestamp, nonce, method, data and sign:
//
//	{
//	    "app_id":    "10001",
//	    "timestamp": "1717171717",
//	    "nonce":     "5f0c3f1e9a5b4c1f8e2d7a6b3c4d5e6f",
//	    "method":    "order.create",
//	    "data":      "<base64 RSA ciphertext of the JSON params>",
//	    "sign":      "<base64 RSA-SHA256 signature>"
//	}
//
// Responses replace method with code and message. A code of "200" means
// success; anything else is surfaced as an *APIError.
//
// # Canonical Signing String
//
// The signature covers every field except sign, sorted by key in byte
// order and joined as key=value pairs separated by '&':
//
//	app_id=10001&data=...&method=order.create&nonce=...&timestamp=1717171717
//
// Canonicalize is a pure function of the map contents, so insertion order
// never changes the result.
//
// # Non-string Values
//
// Envelopes produced by this module only hold strings. When an inbound JSON
// object carries other value kinds, ParseEnvelope converts them with
// Stringify: numbers keep their literal text, booleans become "true" or
// "false", null becomes the empty string and objects or arrays become their
// compact JSON encoding.
//
// # Errors
//
// Four error types cover the failure classes:
//
//   - *ConfigurationError: unusable key material at construction time
//   - *CryptoError: signing, encryption or decryption primitive failure
//   - *ProtocolError: malformed envelope, stale timestamp, bad signature
//   - *APIError: remote side answered with a non-success code
//
// ProtocolError values carry a fixed Reason() and compare with errors.Is:
//
//	if errors.Is(err, protocol.ErrRequestExpired) {
//	    // ask the caller to resync its clock
//	}
package protocol
