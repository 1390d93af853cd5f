// Package client provides the open API client.
//
// A Client wraps every call in a signed request envelope, hands it to a
// transport.Sender and validates the signed response:
//
//	ring, err := keys.LoadKeyringFiles("app-private.pem", "today-public.pem")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sender, err := transport.NewSender(transport.Production, "", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, err := client.NewClient("10001", ring, sender)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var result struct {
//	    OrderNo string `json:"order_no"`
//	}
//	err = c.Do(ctx, "order.create", map[string]string{"id": "A1"}, &result)
//
// # Errors
//
// Do and Call never retry. The caller sees:
//
//   - the Sender's own error for transport failures (timeouts, refused
//     connections, *transport.StatusError)
//   - *protocol.APIError when the platform answers with a non-200 code
//   - *protocol.ProtocolError when the reply is malformed or its signature
//     does not verify
//   - *protocol.CryptoError when the reply cannot be decrypted, or the
//     request params exceed the RSA plaintext limit
//
// # Thread Safety
//
// A Client is immutable after construction and safe for concurrent use.
package client
