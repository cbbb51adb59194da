/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package credential provides in-memory issuer and holder doubles producing
// structurally valid anoncreds payloads without any real cryptography.
package credential

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/hyperledger/credential-exchange-go/pkg/credential/encoding"
)

// MockIssuer produces fake offer and credential payloads.
type MockIssuer struct {
	// CreateOfferErr and IssueCredentialErr force the respective call to fail.
	CreateOfferErr     error
	IssueCredentialErr error
	// TamperValues, when set, rewrites issued values after encoding, producing
	// a credential whose encodings no longer match.
	TamperValues func(values encoding.CredentialValues)
}

// CreateOffer returns a fake offer payload for the given credential definition.
func (m *MockIssuer) CreateOffer(credentialDefinitionID string) (json.RawMessage, error) {
	if m.CreateOfferErr != nil {
		return nil, m.CreateOfferErr
	}

	offer := map[string]interface{}{
		"schema_id":             "schema:" + credentialDefinitionID,
		"cred_def_id":           credentialDefinitionID,
		"nonce":                 uuid.New().String(),
		"key_correctness_proof": map[string]interface{}{},
	}

	return json.Marshal(offer)
}

// IssueCredential returns a fake credential payload carrying the given values.
func (m *MockIssuer) IssueCredential(credentialDefinitionID string, request json.RawMessage,
	values encoding.CredentialValues) (json.RawMessage, error) {
	if m.IssueCredentialErr != nil {
		return nil, m.IssueCredentialErr
	}

	var req struct {
		CredDefID string `json:"cred_def_id"`
	}

	if err := json.Unmarshal(request, &req); err != nil {
		return nil, fmt.Errorf("unmarshal request: %w", err)
	}

	if req.CredDefID != credentialDefinitionID {
		return nil, fmt.Errorf("request is for %q, not %q", req.CredDefID, credentialDefinitionID)
	}

	if m.TamperValues != nil {
		m.TamperValues(values)
	}

	credential := map[string]interface{}{
		"schema_id":   "schema:" + credentialDefinitionID,
		"cred_def_id": credentialDefinitionID,
		"values":      values,
		"signature":   map[string]interface{}{},
	}

	return json.Marshal(credential)
}

// MockHolder produces fake request payloads and records stored credentials.
type MockHolder struct {
	// CreateRequestErr and StoreCredentialErr force the respective call to fail.
	CreateRequestErr   error
	StoreCredentialErr error

	mu     sync.Mutex
	stored []json.RawMessage
}

// CreateRequest returns a fake request payload answering the given offer.
func (m *MockHolder) CreateRequest(offer json.RawMessage) (json.RawMessage, error) {
	if m.CreateRequestErr != nil {
		return nil, m.CreateRequestErr
	}

	var off struct {
		CredDefID string `json:"cred_def_id"`
	}

	if err := json.Unmarshal(offer, &off); err != nil {
		return nil, fmt.Errorf("unmarshal offer: %w", err)
	}

	request := map[string]interface{}{
		"cred_def_id": off.CredDefID,
		"nonce":       uuid.New().String(),
		"blinded_ms":  map[string]interface{}{},
	}

	return json.Marshal(request)
}

// StoreCredential records the credential payload.
func (m *MockHolder) StoreCredential(credential json.RawMessage) error {
	if m.StoreCredentialErr != nil {
		return m.StoreCredentialErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.stored = append(m.stored, credential)

	return nil
}

// StoredCredentials returns all credentials stored so far.
func (m *MockHolder) StoredCredentials() []json.RawMessage {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]json.RawMessage, len(m.stored))
	copy(out, m.stored)

	return out
}
