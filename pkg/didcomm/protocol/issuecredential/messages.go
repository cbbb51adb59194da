/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package issuecredential

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/credential-exchange-go/pkg/credential/encoding"
	"github.com/hyperledger/credential-exchange-go/pkg/didcomm/protocol/decorator"
)

const (
	// Name defines the protocol name.
	Name = "issue-credential"
	// Spec defines the protocol spec.
	Spec = "https://didcomm.org/issue-credential/2.0/"
	// OfferCredentialMsgType defines the protocol offer-credential message type.
	OfferCredentialMsgType = Spec + "offer-credential"
	// RequestCredentialMsgType defines the protocol request-credential message type.
	RequestCredentialMsgType = Spec + "request-credential"
	// IssueCredentialMsgType defines the protocol issue-credential message type.
	IssueCredentialMsgType = Spec + "issue-credential"
	// AckMsgType defines the protocol ack message type.
	AckMsgType = Spec + "ack"
	// ProblemReportMsgType defines the protocol problem-report message type.
	ProblemReportMsgType = Spec + "problem-report"
	// CredentialPreviewMsgType defines the protocol credential-preview inner object type.
	CredentialPreviewMsgType = Spec + "credential-preview"
)

// MessageKind tags the members of the protocol's closed message set.
type MessageKind string

// The protocol's message kinds. This set is closed: HandleInbound dispatches
// over it exhaustively and a new kind cannot be added without extending the
// Message interface implementations below.
const (
	KindOffer         MessageKind = "offer-credential"
	KindRequest       MessageKind = "request-credential"
	KindIssue         MessageKind = "issue-credential"
	KindAck           MessageKind = "ack"
	KindProblemReport MessageKind = "problem-report"
)

// Message is implemented by all issue-credential protocol messages. The
// interface is sealed: only the five message types of this package satisfy it.
type Message interface {
	// Kind returns the message kind tag.
	Kind() MessageKind
	// MessageID returns the message's own id.
	MessageID() string
	// ThreadID returns the correlation thread id, falling back to the
	// message id for thread-starting messages.
	ThreadID() string

	protocolMessage()
}

// Format contains the value of the attachment @id and the credential format of the attachment.
type Format struct {
	AttachID string `json:"attach_id,omitempty"`
	Format   string `json:"format,omitempty"`
}

// PreviewCredential is a preview of the data for the credential that is to be issued.
type PreviewCredential struct {
	Type       string                      `json:"@type,omitempty"`
	Attributes []encoding.PreviewAttribute `json:"attributes,omitempty"`
}

// OfferCredential is a message sent by the Issuer to the potential Holder,
// describing the credential they intend to offer.
type OfferCredential struct {
	Type    string            `json:"@type,omitempty"`
	ID      string            `json:"@id,omitempty"`
	Thread  *decorator.Thread `json:"~thread,omitempty"`
	Comment string            `json:"comment,omitempty"`
	// CredentialPreview is the credential data the Issuer is willing to issue.
	CredentialPreview PreviewCredential `json:"credential_preview,omitempty"`
	// Formats contains an entry for each offers~attach array entry, providing the value
	// of the attachment @id and the credential format of the attachment.
	Formats []Format `json:"formats,omitempty"`
	// OffersAttach is a slice of attachments that further define the credential being offered.
	OffersAttach []decorator.Attachment `json:"offers~attach,omitempty"`
}

// Kind returns the message kind tag.
func (m *OfferCredential) Kind() MessageKind { return KindOffer }

// MessageID returns the message id.
func (m *OfferCredential) MessageID() string { return m.ID }

// ThreadID returns the correlation thread id.
func (m *OfferCredential) ThreadID() string { return threadID(m.Thread, m.ID) }

func (m *OfferCredential) protocolMessage() {}

// RequestCredential is a message sent by the potential Holder to the Issuer
// to request the issuance of a credential.
type RequestCredential struct {
	Type    string            `json:"@type,omitempty"`
	ID      string            `json:"@id,omitempty"`
	Thread  *decorator.Thread `json:"~thread,omitempty"`
	Comment string            `json:"comment,omitempty"`
	// Formats contains an entry for each requests~attach array entry.
	Formats []Format `json:"formats,omitempty"`
	// RequestsAttach is a slice of attachments defining the requested credential.
	RequestsAttach []decorator.Attachment `json:"requests~attach,omitempty"`
}

// Kind returns the message kind tag.
func (m *RequestCredential) Kind() MessageKind { return KindRequest }

// MessageID returns the message id.
func (m *RequestCredential) MessageID() string { return m.ID }

// ThreadID returns the correlation thread id.
func (m *RequestCredential) ThreadID() string { return threadID(m.Thread, m.ID) }

func (m *RequestCredential) protocolMessage() {}

// IssueCredential contains as attached payload the credential being issued and
// is sent in response to a valid Request Credential message.
type IssueCredential struct {
	Type    string            `json:"@type,omitempty"`
	ID      string            `json:"@id,omitempty"`
	Thread  *decorator.Thread `json:"~thread,omitempty"`
	Comment string            `json:"comment,omitempty"`
	// Formats contains an entry for each credentials~attach array entry.
	Formats []Format `json:"formats,omitempty"`
	// CredentialsAttach is a slice of attachments containing the issued credentials.
	CredentialsAttach []decorator.Attachment `json:"credentials~attach,omitempty"`
}

// Kind returns the message kind tag.
func (m *IssueCredential) Kind() MessageKind { return KindIssue }

// MessageID returns the message id.
func (m *IssueCredential) MessageID() string { return m.ID }

// ThreadID returns the correlation thread id.
func (m *IssueCredential) ThreadID() string { return threadID(m.Thread, m.ID) }

func (m *IssueCredential) protocolMessage() {}

// CredentialAttachment returns the credential attachment with the given @id, or nil.
func (m *IssueCredential) CredentialAttachment(id string) *decorator.Attachment {
	return decorator.FindAttachment(m.CredentialsAttach, id)
}

// Ack acknowledges receipt and acceptance of an issued credential.
type Ack struct {
	Type   string            `json:"@type,omitempty"`
	ID     string            `json:"@id,omitempty"`
	Thread *decorator.Thread `json:"~thread,omitempty"`
	Status string            `json:"status,omitempty"`
}

// Kind returns the message kind tag.
func (m *Ack) Kind() MessageKind { return KindAck }

// MessageID returns the message id.
func (m *Ack) MessageID() string { return m.ID }

// ThreadID returns the correlation thread id.
func (m *Ack) ThreadID() string { return threadID(m.Thread, m.ID) }

func (m *Ack) protocolMessage() {}

// Code represents a problem report code.
type Code struct {
	Code string `json:"code,omitempty"`
}

// ProblemReport reports a protocol-level failure or an explicit decline. It is
// a normal transition to the declined state for the receiving party, not an
// engine error.
type ProblemReport struct {
	Type        string            `json:"@type,omitempty"`
	ID          string            `json:"@id,omitempty"`
	Thread      *decorator.Thread `json:"~thread,omitempty"`
	Description Code              `json:"description,omitempty"`
	Comment     string            `json:"comment,omitempty"`
}

// Kind returns the message kind tag.
func (m *ProblemReport) Kind() MessageKind { return KindProblemReport }

// MessageID returns the message id.
func (m *ProblemReport) MessageID() string { return m.ID }

// ThreadID returns the correlation thread id.
func (m *ProblemReport) ThreadID() string { return threadID(m.Thread, m.ID) }

func (m *ProblemReport) protocolMessage() {}

func threadID(thread *decorator.Thread, msgID string) string {
	if thread != nil && thread.ID != "" {
		return thread.ID
	}

	return msgID
}

// ParseMessage decodes a raw protocol message into its typed form. It is the
// constructor transports use before calling HandleInbound.
func ParseMessage(raw []byte) (Message, error) {
	var envelope struct {
		Type string `json:"@type"`
	}

	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("unmarshal message envelope: %w", err)
	}

	var msg Message

	switch envelope.Type {
	case OfferCredentialMsgType:
		msg = &OfferCredential{}
	case RequestCredentialMsgType:
		msg = &RequestCredential{}
	case IssueCredentialMsgType:
		msg = &IssueCredential{}
	case AckMsgType:
		msg = &Ack{}
	case ProblemReportMsgType:
		msg = &ProblemReport{}
	default:
		return nil, fmt.Errorf("unrecognized msgType: %s", envelope.Type)
	}

	if err := json.Unmarshal(raw, msg); err != nil {
		return nil, fmt.Errorf("unmarshal %s: %w", envelope.Type, err)
	}

	return msg, nil
}
