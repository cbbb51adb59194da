/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package anoncreds implements the hlindy credential-format handler. Payloads
// are the opaque indy/anoncreds offer, request and credential JSON objects
// produced by the external anonymous-credential crypto; the handler only
// checks their structure and the attribute value encodings, never the
// cryptographic material itself.
package anoncreds

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"

	"github.com/hyperledger/credential-exchange-go/pkg/credential/encoding"
	"github.com/hyperledger/credential-exchange-go/pkg/credential/format"
	"github.com/hyperledger/credential-exchange-go/pkg/didcomm/protocol/decorator"
)

const (
	// Family identifies the hlindy format family on exchange records.
	Family = "hlindy"

	// FormatOffer is the format identifier for credential offer attachments.
	FormatOffer = "hlindy/cred-abstract@v2.0"
	// FormatRequest is the format identifier for credential request attachments.
	FormatRequest = "hlindy/cred-req@v2.0"
	// FormatCredential is the format identifier for issued credential attachments.
	FormatCredential = "hlindy/cred@v2.0"

	// OfferAttachmentID is the attachment @id carrying the credential offer.
	OfferAttachmentID = "libindy-cred-offer-0"
	// RequestAttachmentID is the attachment @id carrying the credential request.
	RequestAttachmentID = "libindy-cred-request-0"
	// CredentialAttachmentID is the attachment @id carrying the issued credential.
	CredentialAttachmentID = "libindy-cred-0"
)

const offerSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["schema_id", "cred_def_id", "nonce", "key_correctness_proof"],
	"properties": {
		"schema_id": {"type": "string", "minLength": 1},
		"cred_def_id": {"type": "string", "minLength": 1},
		"nonce": {"type": "string", "minLength": 1},
		"key_correctness_proof": {"type": "object"}
	}
}`

const requestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["cred_def_id", "nonce", "blinded_ms"],
	"properties": {
		"cred_def_id": {"type": "string", "minLength": 1},
		"nonce": {"type": "string", "minLength": 1},
		"blinded_ms": {"type": "object"},
		"blinded_ms_correctness_proof": {"type": "object"},
		"prover_did": {"type": "string"}
	}
}`

const credentialSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["schema_id", "cred_def_id", "values", "signature"],
	"properties": {
		"schema_id": {"type": "string", "minLength": 1},
		"cred_def_id": {"type": "string", "minLength": 1},
		"values": {"type": "object", "minProperties": 1},
		"signature": {"type": "object"},
		"signature_correctness_proof": {"type": "object"}
	}
}`

// Handler is the hlindy implementation of format.Handler.
type Handler struct{}

// New returns the hlindy format handler.
func New() *Handler {
	return &Handler{}
}

// Family returns the hlindy family identifier.
func (h *Handler) Family() string { return Family }

// OfferFormat returns the offer attachment format identifier.
func (h *Handler) OfferFormat() string { return FormatOffer }

// RequestFormat returns the request attachment format identifier.
func (h *Handler) RequestFormat() string { return FormatRequest }

// CredentialFormat returns the credential attachment format identifier.
func (h *Handler) CredentialFormat() string { return FormatCredential }

// OfferAttachID returns the offer attachment id.
func (h *Handler) OfferAttachID() string { return OfferAttachmentID }

// RequestAttachID returns the request attachment id.
func (h *Handler) RequestAttachID() string { return RequestAttachmentID }

// CredentialAttachID returns the credential attachment id.
func (h *Handler) CredentialAttachID() string { return CredentialAttachmentID }

// ValidateOffer checks the structure of a credential offer attachment.
func (h *Handler) ValidateOffer(att *decorator.Attachment) error {
	return validateAgainstSchema(att, offerSchema, "offer")
}

// ValidateRequest checks the structure of a credential request attachment.
func (h *Handler) ValidateRequest(att *decorator.Attachment) error {
	return validateAgainstSchema(att, requestSchema, "request")
}

// ValidateCredential checks the structure of an issued credential attachment.
// Every declared attribute must carry a {raw, encoded} pair whose encoding is
// the canonical one; a credential failing this check is unverifiable and must
// never be accepted.
func (h *Handler) ValidateCredential(att *decorator.Attachment, attributes []encoding.PreviewAttribute) error {
	if err := validateAgainstSchema(att, credentialSchema, "credential"); err != nil {
		return err
	}

	values, err := credentialValues(att)
	if err != nil {
		return err
	}

	for name, value := range values {
		if value.Encoded != encoding.EncodeValue(value.Raw) {
			return fmt.Errorf("%w: credential attribute %q has non-canonical encoding",
				format.ErrMalformedAttachment, name)
		}
	}

	for _, attr := range attributes {
		if _, ok := values[attr.Name]; !ok {
			return fmt.Errorf("%w: credential is missing declared attribute %q",
				format.ErrMalformedAttachment, attr.Name)
		}
	}

	return nil
}

// CredentialValuesMatch reports whether the credential carries exactly the
// previewed attribute values.
func (h *Handler) CredentialValuesMatch(att *decorator.Attachment, attributes []encoding.PreviewAttribute) bool {
	values, err := credentialValues(att)
	if err != nil {
		return false
	}

	return encoding.CheckValuesMatch(encoding.ConvertPreviewAttributes(attributes), values)
}

// RequestMatchesOffer reports whether request and offer refer to the same
// credential definition.
func (h *Handler) RequestMatchesOffer(offer, request *decorator.Attachment) bool {
	offerCredDefID, err := credDefID(offer)
	if err != nil {
		return false
	}

	requestCredDefID, err := credDefID(request)
	if err != nil {
		return false
	}

	return offerCredDefID != "" && offerCredDefID == requestCredDefID
}

// CredentialDefinitionID extracts the credential definition id from an
// offer, request or credential payload.
func CredentialDefinitionID(att *decorator.Attachment) (string, error) {
	return credDefID(att)
}

func credDefID(att *decorator.Attachment) (string, error) {
	payload, err := decodePayload(att)
	if err != nil {
		return "", err
	}

	id, _ := payload["cred_def_id"].(string)

	return id, nil
}

func credentialValues(att *decorator.Attachment) (encoding.CredentialValues, error) {
	payload, err := decodePayload(att)
	if err != nil {
		return nil, err
	}

	var cred struct {
		Values encoding.CredentialValues `mapstructure:"values"`
	}

	if err := mapstructure.Decode(payload, &cred); err != nil {
		return nil, fmt.Errorf("%w: decode credential values: %s", format.ErrMalformedAttachment, err)
	}

	return cred.Values, nil
}

func decodePayload(att *decorator.Attachment) (map[string]interface{}, error) {
	if att == nil {
		return nil, fmt.Errorf("%w: attachment is missing", format.ErrMalformedAttachment)
	}

	bits, err := att.Data.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", format.ErrMalformedAttachment, err)
	}

	var payload map[string]interface{}
	if err := json.Unmarshal(bits, &payload); err != nil {
		return nil, fmt.Errorf("%w: attachment is not a JSON object: %s", format.ErrMalformedAttachment, err)
	}

	return payload, nil
}

func validateAgainstSchema(att *decorator.Attachment, schema, kind string) error {
	payload, err := decodePayload(att)
	if err != nil {
		return err
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schema),
		gojsonschema.NewGoLoader(payload),
	)
	if err != nil {
		return fmt.Errorf("validate %s attachment: %w", kind, err)
	}

	if !result.Valid() {
		return fmt.Errorf("%w: %s payload: %s", format.ErrMalformedAttachment, kind, result.Errors())
	}

	return nil
}
