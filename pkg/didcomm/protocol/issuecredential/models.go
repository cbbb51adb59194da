/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"github.com/hyperledger/credential-exchange-go/pkg/credential/encoding"
	"github.com/hyperledger/credential-exchange-go/pkg/store/exchange"
)

// OfferCredentialOptions carries the issuer's parameters for starting an exchange.
type OfferCredentialOptions struct {
	// ConnectionID references the peer relationship the offer is delivered over.
	ConnectionID string
	// CredentialDefinitionID identifies the credential definition to issue against.
	CredentialDefinitionID string
	// Attributes is the ordered credential preview. Must be non-empty; immutable once offered.
	Attributes []encoding.PreviewAttribute
	// Format is a format identifier resolving to the credential format to
	// offer. Any of the family's identifiers is accepted.
	Format string
	// Comment is optional display-only text.
	Comment string
	// AutoAccept overrides the process-wide auto-accept policy for this exchange.
	AutoAccept exchange.AutoAccept
}

// AcceptOfferOptions carries the holder's parameters for accepting an offer.
type AcceptOfferOptions struct {
	Comment string
	// AutoAccept overrides the process-wide auto-accept policy for this exchange.
	AutoAccept exchange.AutoAccept
}

// AcceptRequestOptions carries the issuer's parameters for accepting a request.
type AcceptRequestOptions struct {
	Comment string
	// AutoAccept overrides the process-wide auto-accept policy for this exchange.
	AutoAccept exchange.AutoAccept
}

// AcceptCredentialOptions carries the holder's parameters for accepting an
// issued credential.
type AcceptCredentialOptions struct {
	Comment string
}
