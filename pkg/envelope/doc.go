// Package envelope builds and validates signed, encrypted envelopes for the
// Shucang open API.
//
// A Builder produces envelopes on the sending side:
//
//	b, err := envelope.NewBuilder("10001", ring)
//	env, err := b.BuildRequest("order.create", map[string]string{"id": "A1"})
//	body, err := env.Marshal()
//
// A Validator checks them on the receiving side:
//
//	v, err := envelope.NewValidator("10001", ring)
//	req, err := v.ValidateRequest(body)
//	// req.Method == "order.create", req.Payload == {"id":"A1"}
//
// # Request Validation
//
// ValidateRequest stops at the first failing step:
//
//  1. body parses as a non-empty JSON object (ErrEmptyBody)
//  2. app_id equals the configured identity (ErrAppIDMismatch); no
//     signature work happens before this check
//  3. sign, nonce, timestamp and method are non-empty and data is present
//     (one error per field)
//  4. timestamp is at most DefaultReplayWindow old (ErrRequestExpired)
//  5. the signature verifies with the peer key (ErrSignatureInvalid)
//  6. data decrypts with the own key, unless it is empty
//
// # Responses
//
// Responses are signed exactly like requests, over the canonical string of
// all fields except sign. ValidateResponse returns *protocol.APIError for
// any code other than "200" without verifying or decrypting anything.
//
// # Replay Protection
//
// Freshness is the only replay defence. Nonces are random (see NewNonce)
// but are not remembered.
package envelope
