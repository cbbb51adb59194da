/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package exchange

import (
	"time"

	"github.com/hyperledger/credential-exchange-go/pkg/credential/encoding"
)

// Role is the local party's side of a credential exchange, fixed at creation.
type Role string

// Exchange roles.
const (
	RoleIssuer Role = "issuer"
	RoleHolder Role = "holder"
)

// State is a credential exchange protocol state. It is mutated only by the
// protocol state machine, never assigned directly.
type State string

// Issuer states, holder states and the common terminal states.
const (
	StateNone               State = ""
	StateOfferSent          State = "offer-sent"
	StateOfferReceived      State = "offer-received"
	StateRequestSent        State = "request-sent"
	StateRequestReceived    State = "request-received"
	StateCredentialIssued   State = "credential-issued"
	StateCredentialReceived State = "credential-received"
	StateDone               State = "done"
	StateDeclined           State = "declined"
	StateAbandoned          State = "abandoned"
)

// Terminal reports whether no further transitions are accepted from s.
func (s State) Terminal() bool {
	return s == StateDone || s == StateDeclined || s == StateAbandoned
}

// AutoAccept controls whether an exchange advances without an explicit caller
// action. The zero value defers to the process-wide default.
type AutoAccept string

// Auto-accept policy values.
const (
	// AutoAcceptNever always waits for an explicit caller action.
	AutoAcceptNever AutoAccept = "never"
	// AutoAcceptAlways advances automatically on every inbound transition.
	AutoAcceptAlways AutoAccept = "always"
	// AutoAcceptContentApproved advances automatically only when the inbound
	// content is identical to what the local party proposed or was shown.
	AutoAcceptContentApproved AutoAccept = "contentApproved"
)

// Record tracks one credential exchange between an issuer and a holder.
//
// ThreadID correlates all messages of the exchange and is the sole lookup key
// for inbound routing; exactly one record exists per thread id per agent.
// CredentialAttributes is set when the offer is sent or received and is
// immutable afterwards.
type Record struct {
	ID                     string                      `json:"id"`
	ThreadID               string                      `json:"threadId"`
	ConnectionID           string                      `json:"connectionId,omitempty"`
	Role                   Role                        `json:"role"`
	State                  State                       `json:"state"`
	FormatID               string                      `json:"formatId,omitempty"`
	AttachmentFormat       string                      `json:"attachmentFormat,omitempty"`
	CredentialDefinitionID string                      `json:"credentialDefinitionId,omitempty"`
	CredentialAttributes   []encoding.PreviewAttribute `json:"credentialAttributes,omitempty"`
	AutoAccept             AutoAccept                  `json:"autoAccept,omitempty"`
	ErrorMessage           string                      `json:"errorMessage,omitempty"`
	CreatedAt              time.Time                   `json:"createdAt"`
	UpdatedAt              time.Time                   `json:"updatedAt"`
}
