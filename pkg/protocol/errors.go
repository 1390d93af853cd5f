// Copyright (C) 2025 SAGE-X Project
//
// This file is part of shucang-go.
//
// shucang-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// shucang-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with shucang-go.  If not, see <https://www.gnu.org/licenses/>.

package protocol

import "fmt"

// Reason is a stable, machine-readable protocol failure code.
type Reason string

const (
	ReasonEmptyBody        Reason = "empty_body"
	ReasonAppIDMismatch    Reason = "app_id_mismatch"
	ReasonMissingSign      Reason = "missing_sign"
	ReasonMissingNonce     Reason = "missing_nonce"
	ReasonMissingTimestamp Reason = "missing_timestamp"
	ReasonMissingMethod    Reason = "missing_method"
	ReasonMissingData      Reason = "missing_data"
	ReasonMissingCode      Reason = "missing_code"
	ReasonMissingMessage   Reason = "missing_message"
	ReasonInvalidTimestamp Reason = "invalid_timestamp"
	ReasonRequestExpired   Reason = "request_expired"
	ReasonSignatureInvalid Reason = "signature_invalid"
)

var reasonText = map[Reason]string{
	ReasonEmptyBody:        "empty body",
	ReasonAppIDMismatch:    "missing/mismatched app_id",
	ReasonMissingSign:      "missing sign",
	ReasonMissingNonce:     "missing nonce",
	ReasonMissingTimestamp: "missing timestamp",
	ReasonMissingMethod:    "missing method",
	ReasonMissingData:      "missing data",
	ReasonMissingCode:      "missing code",
	ReasonMissingMessage:   "missing message",
	ReasonInvalidTimestamp: "timestamp is not an integer",
	ReasonRequestExpired:   "request expired",
	ReasonSignatureInvalid: "signature invalid",
}

// ProtocolError reports a malformed or untrusted envelope. Its reason is
// fixed at construction, so the shared sentinels below cannot be altered.
type ProtocolError struct {
	reason Reason
}

// NewProtocolError returns a ProtocolError for reason.
func NewProtocolError(reason Reason) *ProtocolError {
	return &ProtocolError{reason: reason}
}

// Reason returns the machine-readable failure code.
func (e *ProtocolError) Reason() Reason {
	return e.reason
}

func (e *ProtocolError) Error() string {
	if text, ok := reasonText[e.reason]; ok {
		return "protocol error: " + text
	}
	return "protocol error: " + string(e.reason)
}

// Is matches any *ProtocolError with the same reason.
func (e *ProtocolError) Is(target error) bool {
	t, ok := target.(*ProtocolError)
	return ok && t.reason == e.reason
}

var (
	ErrEmptyBody        = NewProtocolError(ReasonEmptyBody)
	ErrAppIDMismatch    = NewProtocolError(ReasonAppIDMismatch)
	ErrMissingSign      = NewProtocolError(ReasonMissingSign)
	ErrMissingNonce     = NewProtocolError(ReasonMissingNonce)
	ErrMissingTimestamp = NewProtocolError(ReasonMissingTimestamp)
	ErrMissingMethod    = NewProtocolError(ReasonMissingMethod)
	ErrMissingData      = NewProtocolError(ReasonMissingData)
	ErrMissingCode      = NewProtocolError(ReasonMissingCode)
	ErrMissingMessage   = NewProtocolError(ReasonMissingMessage)
	ErrInvalidTimestamp = NewProtocolError(ReasonInvalidTimestamp)
	ErrRequestExpired   = NewProtocolError(ReasonRequestExpired)
	ErrSignatureInvalid = NewProtocolError(ReasonSignatureInvalid)
)

var missingFieldErrors = map[string]*ProtocolError{
	FieldSign:      ErrMissingSign,
	FieldNonce:     ErrMissingNonce,
	FieldTimestamp: ErrMissingTimestamp,
	FieldMethod:    ErrMissingMethod,
	FieldData:      ErrMissingData,
	FieldCode:      ErrMissingCode,
	FieldMessage:   ErrMissingMessage,
}

// MissingFieldError returns the error identifying an absent field.
func MissingFieldError(field string) *ProtocolError {
	if err, ok := missingFieldErrors[field]; ok {
		return err
	}
	return NewProtocolError(Reason("missing_" + field))
}

// ConfigurationError reports unusable key material or settings. It is fatal
// and never retryable.
type ConfigurationError struct {
	Reason string
	Err    error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Reason, e.Err)
	}
	return "configuration error: " + e.Reason
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// CryptoError reports a failure of a signing, encryption or decryption
// primitive.
type CryptoError struct {
	Op  string
	Err error
}

func (e *CryptoError) Error() string {
	return fmt.Sprintf("crypto error: %s: %v", e.Op, e.Err)
}

func (e *CryptoError) Unwrap() error {
	return e.Err
}

// APIError carries a non-success code and message returned by the remote
// side, verbatim.
type APIError struct {
	Code    string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: code=%s message=%s", e.Code, e.Message)
}
