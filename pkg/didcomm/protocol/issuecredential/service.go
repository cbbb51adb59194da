/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

// Package issuecredential implements the issue-credential protocol engine: a
// per-exchange state machine driving offer, request, issue and ack messages
// between an issuer and a holder, with pluggable credential formats and an
// auto-accept policy.
package issuecredential

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hyperledger/aries-framework-go/component/log"
	"github.com/hyperledger/aries-framework-go/spi/storage"

	"github.com/hyperledger/credential-exchange-go/pkg/credential/encoding"
	"github.com/hyperledger/credential-exchange-go/pkg/credential/format"
	"github.com/hyperledger/credential-exchange-go/pkg/didcomm/protocol/decorator"
	"github.com/hyperledger/credential-exchange-go/pkg/store/exchange"
)

// ErrInvalidState is returned when a caller action does not apply to the
// record's current state or role.
var ErrInvalidState = errors.New("invalid state for this action")

var logger = log.New("credential-exchange/issuecredential")

// Messenger delivers outbound protocol messages over a connection.
type Messenger interface {
	Send(msg Message, connectionID string) error
}

// CredentialIssuer produces the cryptographic payloads of the issuer side.
// Payloads are opaque to the engine; the format handlers validate their
// structure.
type CredentialIssuer interface {
	CreateOffer(credentialDefinitionID string) (json.RawMessage, error)
	IssueCredential(credentialDefinitionID string, request json.RawMessage, values encoding.CredentialValues) (json.RawMessage, error)
}

// CredentialHolder produces the cryptographic payloads of the holder side and
// stores issued credentials in the wallet.
type CredentialHolder interface {
	CreateRequest(offer json.RawMessage) (json.RawMessage, error)
	StoreCredential(credential json.RawMessage) error
}

// Provider contains dependencies for the protocol service.
type Provider interface {
	StorageProvider() storage.Provider
	Messenger() Messenger
	FormatRegistry() *format.Registry
	CredentialIssuer() CredentialIssuer
	CredentialHolder() CredentialHolder
}

// Service drives credential exchanges. All state lives in the exchange store;
// the service itself holds no per-exchange state and is safe for concurrent
// use. Work is serialized per thread id.
type Service struct {
	store      *exchange.Store
	messenger  Messenger
	registry   *format.Registry
	issuer     CredentialIssuer
	holder     CredentialHolder
	autoAccept exchange.AutoAccept
	middleware Handler
	locks      *threadLocks
}

// Option modifies the service during construction.
type Option func(*Service)

// WithAutoAccept sets the process-wide auto-accept policy. Individual
// exchanges may override it.
func WithAutoAccept(policy exchange.AutoAccept) Option {
	return func(s *Service) {
		s.autoAccept = policy
	}
}

// New returns a credential exchange service.
func New(p Provider, opts ...Option) (*Service, error) {
	store, err := exchange.NewStore(p.StorageProvider())
	if err != nil {
		return nil, fmt.Errorf("open exchange store: %w", err)
	}

	svc := &Service{
		store:      store,
		messenger:  p.Messenger(),
		registry:   p.FormatRegistry(),
		issuer:     p.CredentialIssuer(),
		holder:     p.CredentialHolder(),
		middleware: HandlerFunc(func(Metadata) error { return nil }),
		locks:      newThreadLocks(),
	}

	for _, opt := range opts {
		opt(svc)
	}

	return svc, nil
}

// Use allows providing middlewares. Each middleware runs on every state
// transition, after the transition is computed and before it is persisted.
func (s *Service) Use(items ...Middleware) {
	var handler Handler = HandlerFunc(func(Metadata) error { return nil })
	for i := len(items) - 1; i >= 0; i-- {
		handler = items[i](handler)
	}

	s.middleware = handler
}

// OfferCredential starts a new exchange as issuer by sending an offer. The
// offer's message id becomes the exchange thread id.
func (s *Service) OfferCredential(opts OfferCredentialOptions) (*exchange.Record, error) {
	if opts.ConnectionID == "" {
		return nil, errors.New("connection id is required")
	}

	if len(opts.Attributes) == 0 {
		return nil, errors.New("at least one credential attribute is required")
	}

	if s.issuer == nil {
		return nil, errors.New("credential issuer is not configured")
	}

	handler, err := s.registry.Resolve(opts.Format)
	if err != nil {
		return nil, err
	}

	payload, err := s.issuer.CreateOffer(opts.CredentialDefinitionID)
	if err != nil {
		return nil, fmt.Errorf("create offer payload: %w", err)
	}

	attachment := decorator.NewBase64Attachment(handler.OfferAttachID(), "application/json", payload)
	if err := handler.ValidateOffer(&attachment); err != nil {
		return nil, err
	}

	msg := &OfferCredential{
		Type:    OfferCredentialMsgType,
		ID:      uuid.New().String(),
		Comment: opts.Comment,
		CredentialPreview: PreviewCredential{
			Type:       CredentialPreviewMsgType,
			Attributes: opts.Attributes,
		},
		Formats:      []Format{{AttachID: handler.OfferAttachID(), Format: handler.OfferFormat()}},
		OffersAttach: []decorator.Attachment{attachment},
	}

	threadID := msg.ThreadID()

	s.locks.Lock(threadID)
	defer s.locks.Unlock(threadID)

	now := time.Now()

	record := &exchange.Record{
		ID:                     uuid.New().String(),
		ThreadID:               threadID,
		ConnectionID:           opts.ConnectionID,
		Role:                   exchange.RoleIssuer,
		FormatID:               handler.Family(),
		AttachmentFormat:       handler.OfferFormat(),
		CredentialDefinitionID: opts.CredentialDefinitionID,
		CredentialAttributes:   opts.Attributes,
		AutoAccept:             opts.AutoAccept,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	updated, err := transition(record, exchange.StateOfferSent)
	if err != nil {
		return nil, err
	}

	if err := s.middleware.Handle(&metadata{record: updated, msg: msg}); err != nil {
		return nil, fmt.Errorf("middleware: %w", err)
	}

	if err := s.store.Save(updated); err != nil {
		return nil, err
	}

	if err := s.saveMessage(updated.ID, msg); err != nil {
		return nil, err
	}

	if err := s.messenger.Send(msg, updated.ConnectionID); err != nil {
		return nil, fmt.Errorf("send offer: %w", err)
	}

	return updated, nil
}

// AcceptOffer responds to a received offer as holder by sending a request.
func (s *Service) AcceptOffer(exchangeID string, opts AcceptOfferOptions) (*exchange.Record, error) {
	record, unlock, err := s.lockRecord(exchangeID)
	if err != nil {
		return nil, err
	}

	defer unlock()

	return s.acceptOffer(record, opts)
}

func (s *Service) acceptOffer(record *exchange.Record, opts AcceptOfferOptions) (*exchange.Record, error) {
	if record.Role != exchange.RoleHolder || record.State != exchange.StateOfferReceived {
		return nil, fmt.Errorf("%w: accept offer as %s in state %s", ErrInvalidState, record.Role, stateName(record.State))
	}

	if s.holder == nil {
		return nil, errors.New("credential holder is not configured")
	}

	// The override is recorded once; later calls cannot rewrite it.
	if opts.AutoAccept != "" && record.AutoAccept == "" {
		record.AutoAccept = opts.AutoAccept
	}

	handler, err := s.registry.ResolveFamily(record.FormatID)
	if err != nil {
		return nil, err
	}

	offerMsg, err := s.storedOffer(record.ID)
	if err != nil {
		return nil, err
	}

	if offerMsg == nil {
		return nil, fmt.Errorf("no stored offer for exchange %q", record.ID)
	}

	offerPayload, err := attachmentPayload(offerMsg.OffersAttach, handler.OfferAttachID())
	if err != nil {
		return nil, err
	}

	requestPayload, err := s.holder.CreateRequest(offerPayload)
	if err != nil {
		return nil, fmt.Errorf("create request payload: %w", err)
	}

	attachment := decorator.NewBase64Attachment(handler.RequestAttachID(), "application/json", requestPayload)
	if err := handler.ValidateRequest(&attachment); err != nil {
		return nil, err
	}

	msg := &RequestCredential{
		Type:           RequestCredentialMsgType,
		ID:             uuid.New().String(),
		Thread:         &decorator.Thread{ID: record.ThreadID},
		Comment:        opts.Comment,
		Formats:        []Format{{AttachID: handler.RequestAttachID(), Format: handler.RequestFormat()}},
		RequestsAttach: []decorator.Attachment{attachment},
	}

	updated, err := transition(record, exchange.StateRequestSent)
	if err != nil {
		return nil, err
	}

	if err := s.middleware.Handle(&metadata{record: updated, msg: msg}); err != nil {
		return nil, fmt.Errorf("middleware: %w", err)
	}

	if err := s.store.Update(updated); err != nil {
		return nil, err
	}

	if err := s.saveMessage(updated.ID, msg); err != nil {
		return nil, err
	}

	if err := s.messenger.Send(msg, updated.ConnectionID); err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	return updated, nil
}

// AcceptRequest responds to a received request as issuer by issuing the
// credential. Values are taken from the record's immutable attribute preview
// and encoded canonically.
func (s *Service) AcceptRequest(exchangeID string, opts AcceptRequestOptions) (*exchange.Record, error) {
	record, unlock, err := s.lockRecord(exchangeID)
	if err != nil {
		return nil, err
	}

	defer unlock()

	return s.acceptRequest(record, opts)
}

func (s *Service) acceptRequest(record *exchange.Record, opts AcceptRequestOptions) (*exchange.Record, error) {
	if record.Role != exchange.RoleIssuer || record.State != exchange.StateRequestReceived {
		return nil, fmt.Errorf("%w: accept request as %s in state %s", ErrInvalidState, record.Role, stateName(record.State))
	}

	if s.issuer == nil {
		return nil, errors.New("credential issuer is not configured")
	}

	// The override is recorded once; later calls cannot rewrite it.
	if opts.AutoAccept != "" && record.AutoAccept == "" {
		record.AutoAccept = opts.AutoAccept
	}

	handler, err := s.registry.ResolveFamily(record.FormatID)
	if err != nil {
		return nil, err
	}

	requestMsg, err := s.storedRequest(record.ID)
	if err != nil {
		return nil, err
	}

	if requestMsg == nil {
		return nil, fmt.Errorf("no stored request for exchange %q", record.ID)
	}

	requestPayload, err := attachmentPayload(requestMsg.RequestsAttach, handler.RequestAttachID())
	if err != nil {
		return nil, err
	}

	values := encoding.ConvertPreviewAttributes(record.CredentialAttributes)

	credentialPayload, err := s.issuer.IssueCredential(record.CredentialDefinitionID, requestPayload, values)
	if err != nil {
		return nil, fmt.Errorf("issue credential payload: %w", err)
	}

	attachment := decorator.NewBase64Attachment(handler.CredentialAttachID(), "application/json", credentialPayload)
	if err := handler.ValidateCredential(&attachment, record.CredentialAttributes); err != nil {
		return nil, err
	}

	msg := &IssueCredential{
		Type:              IssueCredentialMsgType,
		ID:                uuid.New().String(),
		Thread:            &decorator.Thread{ID: record.ThreadID},
		Comment:           opts.Comment,
		Formats:           []Format{{AttachID: handler.CredentialAttachID(), Format: handler.CredentialFormat()}},
		CredentialsAttach: []decorator.Attachment{attachment},
	}

	updated, err := transition(record, exchange.StateCredentialIssued)
	if err != nil {
		return nil, err
	}

	if err := s.middleware.Handle(&metadata{record: updated, msg: msg}); err != nil {
		return nil, fmt.Errorf("middleware: %w", err)
	}

	if err := s.store.Update(updated); err != nil {
		return nil, err
	}

	if err := s.saveMessage(updated.ID, msg); err != nil {
		return nil, err
	}

	if err := s.messenger.Send(msg, updated.ConnectionID); err != nil {
		return nil, fmt.Errorf("send credential: %w", err)
	}

	return updated, nil
}

// AcceptCredential stores a received credential as holder and acknowledges it.
func (s *Service) AcceptCredential(exchangeID string, opts AcceptCredentialOptions) (*exchange.Record, error) {
	record, unlock, err := s.lockRecord(exchangeID)
	if err != nil {
		return nil, err
	}

	defer unlock()

	return s.acceptCredential(record, opts)
}

func (s *Service) acceptCredential(record *exchange.Record, opts AcceptCredentialOptions) (*exchange.Record, error) {
	if record.Role != exchange.RoleHolder || record.State != exchange.StateCredentialReceived {
		return nil, fmt.Errorf("%w: accept credential as %s in state %s", ErrInvalidState, record.Role, stateName(record.State))
	}

	if s.holder == nil {
		return nil, errors.New("credential holder is not configured")
	}

	handler, err := s.registry.ResolveFamily(record.FormatID)
	if err != nil {
		return nil, err
	}

	issueMsg, err := s.storedIssueCredential(record.ID)
	if err != nil {
		return nil, err
	}

	if issueMsg == nil {
		return nil, fmt.Errorf("no stored credential message for exchange %q", record.ID)
	}

	credentialPayload, err := attachmentPayload(issueMsg.CredentialsAttach, handler.CredentialAttachID())
	if err != nil {
		return nil, err
	}

	if err := s.holder.StoreCredential(credentialPayload); err != nil {
		return nil, fmt.Errorf("store credential: %w", err)
	}

	msg := &Ack{
		Type:   AckMsgType,
		ID:     uuid.New().String(),
		Thread: &decorator.Thread{ID: record.ThreadID},
		Status: "OK",
	}

	updated, err := transition(record, exchange.StateDone)
	if err != nil {
		return nil, err
	}

	if err := s.middleware.Handle(&metadata{record: updated, msg: msg}); err != nil {
		return nil, fmt.Errorf("middleware: %w", err)
	}

	if err := s.store.Update(updated); err != nil {
		return nil, err
	}

	if err := s.messenger.Send(msg, updated.ConnectionID); err != nil {
		return nil, fmt.Errorf("send ack: %w", err)
	}

	return updated, nil
}

// Decline rejects a non-terminal exchange and notifies the peer with a
// problem report carrying the reason. Either role may decline at any
// non-terminal state.
func (s *Service) Decline(exchangeID, reason string) (*exchange.Record, error) {
	record, unlock, err := s.lockRecord(exchangeID)
	if err != nil {
		return nil, err
	}

	defer unlock()

	if record.State.Terminal() {
		return nil, fmt.Errorf("%w: decline in state %s", ErrInvalidState, stateName(record.State))
	}

	msg := &ProblemReport{
		Type:        ProblemReportMsgType,
		ID:          uuid.New().String(),
		Thread:      &decorator.Thread{ID: record.ThreadID},
		Description: Code{Code: "issuance-abandoned"},
		Comment:     reason,
	}

	record.ErrorMessage = reason

	updated, err := transition(record, exchange.StateDeclined)
	if err != nil {
		return nil, err
	}

	if err := s.middleware.Handle(&metadata{record: updated, msg: msg}); err != nil {
		return nil, fmt.Errorf("middleware: %w", err)
	}

	if err := s.store.Update(updated); err != nil {
		return nil, err
	}

	if err := s.messenger.Send(msg, updated.ConnectionID); err != nil {
		return nil, fmt.Errorf("send problem report: %w", err)
	}

	return updated, nil
}

// GetExchange returns the exchange record with the given id.
func (s *Service) GetExchange(exchangeID string) (*exchange.Record, error) {
	return s.store.Get(exchangeID)
}

// GetExchangeByThreadID returns the exchange record correlated with the given
// thread id.
func (s *Service) GetExchangeByThreadID(threadID string) (*exchange.Record, error) {
	return s.store.GetByThreadID(threadID)
}

// FindCredentialMessage returns the stored issue-credential message of an
// exchange, or nil if no credential was received or issued yet.
func (s *Service) FindCredentialMessage(exchangeID string) (*IssueCredential, error) {
	if _, err := s.store.Get(exchangeID); err != nil {
		return nil, err
	}

	return s.storedIssueCredential(exchangeID)
}

// HandleInbound routes a received protocol message to its handler. The Message
// set is closed, so the dispatch is exhaustive. Duplicate messages for a
// terminal exchange are logged and dropped; the record is returned unchanged.
func (s *Service) HandleInbound(msg Message, connectionID string) (*exchange.Record, error) {
	switch m := msg.(type) {
	case *OfferCredential:
		return s.handleOffer(m, connectionID)
	case *RequestCredential:
		return s.handleRequest(m)
	case *IssueCredential:
		return s.handleIssueCredential(m)
	case *Ack:
		return s.handleAck(m)
	case *ProblemReport:
		return s.handleProblemReport(m)
	default:
		return nil, fmt.Errorf("unrecognized message kind: %s", msg.Kind())
	}
}

func (s *Service) handleOffer(msg *OfferCredential, connectionID string) (*exchange.Record, error) {
	threadID := msg.ThreadID()

	s.locks.Lock(threadID)
	defer s.locks.Unlock(threadID)

	existing, err := s.store.GetByThreadID(threadID)
	if err == nil {
		if existing.State.Terminal() {
			logger.Infof("dropping offer %s for terminal exchange %s", msg.MessageID(), existing.ID)
			return existing, nil
		}

		return nil, fmt.Errorf("%w: offer for existing exchange in state %s", ErrInvalidTransition, stateName(existing.State))
	}

	if !errors.Is(err, exchange.ErrRecordNotFound) {
		return nil, err
	}

	if len(msg.CredentialPreview.Attributes) == 0 {
		return nil, fmt.Errorf("%w: offer carries no credential preview attributes", format.ErrMalformedAttachment)
	}

	handler, entry, err := s.selectOfferFormat(msg)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	record := &exchange.Record{
		ID:                   uuid.New().String(),
		ThreadID:             threadID,
		ConnectionID:         connectionID,
		Role:                 exchange.RoleHolder,
		FormatID:             handler.Family(),
		AttachmentFormat:     entry.Format,
		CredentialAttributes: msg.CredentialPreview.Attributes,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	updated, err := transition(record, exchange.StateOfferReceived)
	if err != nil {
		return nil, err
	}

	if err := s.middleware.Handle(&metadata{record: updated, msg: msg}); err != nil {
		return nil, fmt.Errorf("middleware: %w", err)
	}

	if err := s.store.Save(updated); err != nil {
		return nil, err
	}

	if err := s.saveMessage(updated.ID, msg); err != nil {
		return nil, err
	}

	// An unsolicited offer has no locally approved content to compare against.
	if shouldAutoRespond(updated.AutoAccept, s.autoAccept, true) {
		return s.acceptOffer(updated, AcceptOfferOptions{})
	}

	return updated, nil
}

func (s *Service) handleRequest(msg *RequestCredential) (*exchange.Record, error) {
	threadID := msg.ThreadID()

	s.locks.Lock(threadID)
	defer s.locks.Unlock(threadID)

	record, err := s.store.GetByThreadID(threadID)
	if err != nil {
		return nil, err
	}

	if record.State.Terminal() {
		logger.Infof("dropping request %s for terminal exchange %s", msg.MessageID(), record.ID)
		return record, nil
	}

	if !canTransitionTo(record.Role, record.State, exchange.StateRequestReceived) {
		return nil, fmt.Errorf("%w: request as %s in state %s", ErrInvalidTransition, record.Role, stateName(record.State))
	}

	handler, attachment, err := s.selectBoundFormat(record, msg.Formats, msg.RequestsAttach, format.Handler.ValidateRequest)
	if err != nil {
		return nil, err
	}

	updated, err := transition(record, exchange.StateRequestReceived)
	if err != nil {
		return nil, err
	}

	if err := s.middleware.Handle(&metadata{record: updated, msg: msg}); err != nil {
		return nil, fmt.Errorf("middleware: %w", err)
	}

	if err := s.store.Update(updated); err != nil {
		return nil, err
	}

	if err := s.saveMessage(updated.ID, msg); err != nil {
		return nil, err
	}

	contentChanged := true

	offerMsg, err := s.storedOffer(updated.ID)
	if err != nil {
		return nil, err
	}

	if offerMsg != nil {
		offerAttachment := decorator.FindAttachment(offerMsg.OffersAttach, handler.OfferAttachID())
		contentChanged = !handler.RequestMatchesOffer(offerAttachment, attachment)
	}

	if shouldAutoRespond(updated.AutoAccept, s.autoAccept, contentChanged) {
		return s.acceptRequest(updated, AcceptRequestOptions{})
	}

	return updated, nil
}

func (s *Service) handleIssueCredential(msg *IssueCredential) (*exchange.Record, error) {
	threadID := msg.ThreadID()

	s.locks.Lock(threadID)
	defer s.locks.Unlock(threadID)

	record, err := s.store.GetByThreadID(threadID)
	if err != nil {
		return nil, err
	}

	if record.State.Terminal() {
		logger.Infof("dropping credential %s for terminal exchange %s", msg.MessageID(), record.ID)
		return record, nil
	}

	if !canTransitionTo(record.Role, record.State, exchange.StateCredentialReceived) {
		return nil, fmt.Errorf("%w: credential as %s in state %s", ErrInvalidTransition, record.Role, stateName(record.State))
	}

	validate := func(h format.Handler, att *decorator.Attachment) error {
		return h.ValidateCredential(att, record.CredentialAttributes)
	}

	handler, attachment, err := s.selectBoundFormat(record, msg.Formats, msg.CredentialsAttach, validate)
	if err != nil {
		return nil, err
	}

	updated, err := transition(record, exchange.StateCredentialReceived)
	if err != nil {
		return nil, err
	}

	if err := s.middleware.Handle(&metadata{record: updated, msg: msg}); err != nil {
		return nil, fmt.Errorf("middleware: %w", err)
	}

	if err := s.store.Update(updated); err != nil {
		return nil, err
	}

	if err := s.saveMessage(updated.ID, msg); err != nil {
		return nil, err
	}

	contentChanged := !handler.CredentialValuesMatch(attachment, updated.CredentialAttributes)

	if shouldAutoRespond(updated.AutoAccept, s.autoAccept, contentChanged) {
		return s.acceptCredential(updated, AcceptCredentialOptions{})
	}

	return updated, nil
}

func (s *Service) handleAck(msg *Ack) (*exchange.Record, error) {
	threadID := msg.ThreadID()

	s.locks.Lock(threadID)
	defer s.locks.Unlock(threadID)

	record, err := s.store.GetByThreadID(threadID)
	if err != nil {
		return nil, err
	}

	if record.State.Terminal() {
		logger.Infof("dropping ack %s for terminal exchange %s", msg.MessageID(), record.ID)
		return record, nil
	}

	// Only the issuer is acknowledged; the holder's edge into done is its own ack.
	if record.Role != exchange.RoleIssuer {
		return nil, fmt.Errorf("%w: ack as %s in state %s", ErrInvalidTransition, record.Role, stateName(record.State))
	}

	updated, err := transition(record, exchange.StateDone)
	if err != nil {
		return nil, err
	}

	if err := s.middleware.Handle(&metadata{record: updated, msg: msg}); err != nil {
		return nil, fmt.Errorf("middleware: %w", err)
	}

	if err := s.store.Update(updated); err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) handleProblemReport(msg *ProblemReport) (*exchange.Record, error) {
	threadID := msg.ThreadID()

	s.locks.Lock(threadID)
	defer s.locks.Unlock(threadID)

	record, err := s.store.GetByThreadID(threadID)
	if err != nil {
		return nil, err
	}

	if record.State.Terminal() {
		logger.Infof("dropping problem report %s for terminal exchange %s", msg.MessageID(), record.ID)
		return record, nil
	}

	record.ErrorMessage = msg.Description.Code
	if msg.Comment != "" {
		record.ErrorMessage = msg.Comment
	}

	updated, err := transition(record, exchange.StateDeclined)
	if err != nil {
		return nil, err
	}

	if err := s.middleware.Handle(&metadata{record: updated, msg: msg}); err != nil {
		return nil, fmt.Errorf("middleware: %w", err)
	}

	if err := s.store.Update(updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// selectOfferFormat picks the first offer format entry with a registered
// handler and a structurally valid attachment.
func (s *Service) selectOfferFormat(msg *OfferCredential) (format.Handler, *Format, error) {
	if len(msg.Formats) == 0 {
		return nil, nil, fmt.Errorf("%w: offer declares no formats", format.ErrMalformedAttachment)
	}

	var lastErr error

	for i := range msg.Formats {
		handler, err := s.registry.Resolve(msg.Formats[i].Format)
		if err != nil {
			lastErr = err
			continue
		}

		attachment := decorator.FindAttachment(msg.OffersAttach, msg.Formats[i].AttachID)
		if attachment == nil {
			lastErr = fmt.Errorf("%w: no attachment with id %q", format.ErrMalformedAttachment, msg.Formats[i].AttachID)
			continue
		}

		if err := handler.ValidateOffer(attachment); err != nil {
			lastErr = err
			continue
		}

		return handler, &msg.Formats[i], nil
	}

	return nil, nil, lastErr
}

// selectBoundFormat resolves a message's format entry against the family
// already negotiated for the exchange. A message that only declares other
// families is an invalid transition, not a malformed attachment.
func (s *Service) selectBoundFormat(record *exchange.Record, formats []Format, attachments []decorator.Attachment,
	validate func(format.Handler, *decorator.Attachment) error) (format.Handler, *decorator.Attachment, error) {
	if len(formats) == 0 {
		return nil, nil, fmt.Errorf("%w: message declares no formats", format.ErrMalformedAttachment)
	}

	var lastErr error

	for i := range formats {
		handler, err := s.registry.Resolve(formats[i].Format)
		if err != nil {
			lastErr = err
			continue
		}

		if handler.Family() != record.FormatID {
			lastErr = fmt.Errorf("%w: format %q was not negotiated for this exchange",
				ErrInvalidTransition, formats[i].Format)
			continue
		}

		attachment := decorator.FindAttachment(attachments, formats[i].AttachID)
		if attachment == nil {
			lastErr = fmt.Errorf("%w: no attachment with id %q", format.ErrMalformedAttachment, formats[i].AttachID)
			continue
		}

		if err := validate(handler, attachment); err != nil {
			lastErr = err
			continue
		}

		return handler, attachment, nil
	}

	return nil, nil, lastErr
}

// lockRecord loads a record, acquires its thread lock and re-reads it under
// the lock. The returned unlock must be called once the caller is done.
func (s *Service) lockRecord(exchangeID string) (*exchange.Record, func(), error) {
	record, err := s.store.Get(exchangeID)
	if err != nil {
		return nil, nil, err
	}

	threadID := record.ThreadID

	s.locks.Lock(threadID)

	record, err = s.store.Get(exchangeID)
	if err != nil {
		s.locks.Unlock(threadID)
		return nil, nil, err
	}

	return record, func() { s.locks.Unlock(threadID) }, nil
}

func (s *Service) saveMessage(recordID string, msg Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", msg.Kind(), err)
	}

	return s.store.SaveMessage(recordID, string(msg.Kind()), raw)
}

func (s *Service) storedOffer(recordID string) (*OfferCredential, error) {
	raw, err := s.store.GetMessage(recordID, string(KindOffer))
	if err != nil || raw == nil {
		return nil, err
	}

	msg := &OfferCredential{}
	if err := json.Unmarshal(raw, msg); err != nil {
		return nil, fmt.Errorf("unmarshal stored offer: %w", err)
	}

	return msg, nil
}

func (s *Service) storedRequest(recordID string) (*RequestCredential, error) {
	raw, err := s.store.GetMessage(recordID, string(KindRequest))
	if err != nil || raw == nil {
		return nil, err
	}

	msg := &RequestCredential{}
	if err := json.Unmarshal(raw, msg); err != nil {
		return nil, fmt.Errorf("unmarshal stored request: %w", err)
	}

	return msg, nil
}

func (s *Service) storedIssueCredential(recordID string) (*IssueCredential, error) {
	raw, err := s.store.GetMessage(recordID, string(KindIssue))
	if err != nil || raw == nil {
		return nil, err
	}

	msg := &IssueCredential{}
	if err := json.Unmarshal(raw, msg); err != nil {
		return nil, fmt.Errorf("unmarshal stored credential message: %w", err)
	}

	return msg, nil
}

func attachmentPayload(attachments []decorator.Attachment, id string) (json.RawMessage, error) {
	attachment := decorator.FindAttachment(attachments, id)
	if attachment == nil {
		return nil, fmt.Errorf("%w: no attachment with id %q", format.ErrMalformedAttachment, id)
	}

	payload, err := attachment.Data.Fetch()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", format.ErrMalformedAttachment, err)
	}

	return payload, nil
}
