/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package format maps credential-format identifiers to the validation rules
// for that format's offer, request and issue payloads. The registry is the
// only place format knowledge lives; the protocol state machine stays
// format-agnostic so new credential formats can be added without touching it.
package format

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hyperledger/credential-exchange-go/pkg/credential/encoding"
	"github.com/hyperledger/credential-exchange-go/pkg/didcomm/protocol/decorator"
)

var (
	// ErrUnsupportedFormat is returned when no handler is registered for a format identifier.
	ErrUnsupportedFormat = errors.New("unsupported credential format")
	// ErrMalformedAttachment is returned when an attachment does not match its format's expected structure.
	ErrMalformedAttachment = errors.New("malformed attachment")
)

// Handler validates the attachments of a single credential format family.
type Handler interface {
	// Family is the stable identifier for the format family, recorded on the
	// exchange record once the format is negotiated.
	Family() string

	// OfferFormat, RequestFormat and CredentialFormat are the format
	// identifiers declared in the message `formats` entries.
	OfferFormat() string
	RequestFormat() string
	CredentialFormat() string

	// OfferAttachID, RequestAttachID and CredentialAttachID are the
	// format-defined attachment ids payloads are addressed by.
	OfferAttachID() string
	RequestAttachID() string
	CredentialAttachID() string

	// ValidateOffer, ValidateRequest and ValidateCredential check that an
	// attachment's decoded payload has the structure the format requires,
	// returning an error wrapping ErrMalformedAttachment otherwise.
	ValidateOffer(att *decorator.Attachment) error
	ValidateRequest(att *decorator.Attachment) error
	ValidateCredential(att *decorator.Attachment, attributes []encoding.PreviewAttribute) error

	// CredentialValuesMatch reports whether the credential attachment carries
	// exactly the attribute values previously previewed to the holder. Used
	// for auto-accept content approval, not for validation.
	CredentialValuesMatch(att *decorator.Attachment, attributes []encoding.PreviewAttribute) bool

	// RequestMatchesOffer reports whether a request attachment refers to the
	// same credential content as the offer attachment it answers.
	RequestMatchesOffer(offer, request *decorator.Attachment) bool
}

// Registry resolves format identifiers to their handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
	families map[string]Handler
}

// NewRegistry returns a registry with the given handlers registered.
func NewRegistry(handlers ...Handler) *Registry {
	r := &Registry{
		handlers: make(map[string]Handler),
		families: make(map[string]Handler),
	}

	for _, h := range handlers {
		r.Register(h)
	}

	return r
}

// Register adds a handler under all of its declared format identifiers.
func (r *Registry) Register(h Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.families[h.Family()] = h

	for _, id := range []string{h.OfferFormat(), h.RequestFormat(), h.CredentialFormat()} {
		r.handlers[id] = h
	}
}

// Resolve returns the handler registered for the given format identifier.
func (r *Registry) Resolve(formatID string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[formatID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, formatID)
	}

	return h, nil
}

// ResolveFamily returns the handler for a negotiated format family.
func (r *Registry) ResolveFamily(family string) (Handler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.families[family]
	if !ok {
		return nil, fmt.Errorf("%w: family %q", ErrUnsupportedFormat, family)
	}

	return h, nil
}
