/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package encoding canonicalizes human-readable credential attribute values into
// the numeric form required by anonymous-credential signature schemes.
//
// Both parties of an exchange encode attribute values independently; the
// resulting credential is unverifiable unless the encodings match bit-for-bit,
// so EncodeValue must stay deterministic and stable across releases.
package encoding

import (
	"crypto/sha256"
	"fmt"
	"math/big"
)

// maxRawValue is the largest value (2^32-1) encoded as the integer itself.
var maxRawValue = new(big.Int).SetUint64(1<<32 - 1)

// PreviewAttribute is a single (name, raw value) pair of a credential preview.
type PreviewAttribute struct {
	Name     string `json:"name"`
	MimeType string `json:"mime-type,omitempty"`
	Value    string `json:"value"`
}

// CredentialValue holds the raw attribute value together with its canonical encoding.
type CredentialValue struct {
	Raw     string `json:"raw"`
	Encoded string `json:"encoded"`
}

// CredentialValues maps attribute names to their raw and encoded values.
type CredentialValues map[string]CredentialValue

// EncodeValue returns the canonical large-integer representation of a raw
// attribute value, as a base-10 string.
//
// A raw value that parses as a base-10 unsigned integer within [0, 2^32-1]
// encodes to that integer's canonical decimal form, so "007" and "7" collapse
// to the same encoding on both sides of an exchange. Any other value,
// including negative numbers and the empty string, is hashed with SHA-256
// over its UTF-8 bytes and the 256-bit digest is read as an unsigned
// big-endian integer.
func EncodeValue(raw string) string {
	if n, ok := parseRawUint32(raw); ok {
		return n.String()
	}

	digest := sha256.Sum256([]byte(raw))

	return new(big.Int).SetBytes(digest[:]).String()
}

// parseRawUint32 parses raw as a base-10 integer in [0, 2^32-1].
func parseRawUint32(raw string) (*big.Int, bool) {
	n, ok := new(big.Int).SetString(raw, 10)
	if !ok {
		return nil, false
	}

	if n.Sign() < 0 || n.Cmp(maxRawValue) > 0 {
		return nil, false
	}

	return n, true
}

// ConvertPreviewAttributes encodes every preview attribute and returns the
// resulting credential values keyed by attribute name.
func ConvertPreviewAttributes(attributes []PreviewAttribute) CredentialValues {
	values := make(CredentialValues, len(attributes))

	for _, attr := range attributes {
		values[attr.Name] = CredentialValue{
			Raw:     attr.Value,
			Encoded: EncodeValue(attr.Value),
		}
	}

	return values
}

// AssertValuesMatch validates that the credential values received from the
// issuer are exactly the ones the holder expects: same attribute set, same
// raw values and encodings consistent with EncodeValue.
func AssertValuesMatch(expected CredentialValues, actual CredentialValues) error {
	for name, want := range expected {
		got, ok := actual[name]
		if !ok {
			return fmt.Errorf("credential is missing expected attribute %q", name)
		}

		if got.Raw != want.Raw {
			return fmt.Errorf("attribute %q raw value mismatch: expected %q, got %q", name, want.Raw, got.Raw)
		}

		if got.Encoded != want.Encoded {
			return fmt.Errorf("attribute %q encoded value mismatch: expected %q, got %q",
				name, want.Encoded, got.Encoded)
		}
	}

	for name := range actual {
		if _, ok := expected[name]; !ok {
			return fmt.Errorf("credential contains unexpected attribute %q", name)
		}
	}

	return nil
}

// CheckValuesMatch is the non-throwing form of AssertValuesMatch.
func CheckValuesMatch(expected, actual CredentialValues) bool {
	return AssertValuesMatch(expected, actual) == nil
}
